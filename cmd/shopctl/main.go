// Command shopctl reads the shop REST API and prints the dashboard figures
// computed locally, the way the browser dashboard does.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shopmonitor/apiclient"
	"shopmonitor/config"
	"shopmonitor/logger"
)

const usage = `usage: shopctl [-api URL] [-token JWT] [-user NAME -password PASS] <command> [flags]

commands:
  login                       check credentials and print the session token
  summary                     dashboard totals, low stock alert and recent sales
  inventory [-search] [-category]
  sales [-search]             sales with totals, average and completion rate
  customers
  employees
  invoices
  add-item -name -quantity -price [-category] [-expiration]
  export [-o file|s3://bucket/key]
`

// errUsage makes run print the usage text.
var errUsage = errors.New("invalid usage")

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Error loading .env file:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	// stdout carries command output
	if cfg.Log.Output == "stdout" {
		cfg.Log.Output = "stderr"
	}
	logg := logger.New(cfg.Log)
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout, logg); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "shopctl:", err)
		os.Exit(1)
	}
}

// run parses the global flags, logs in when credentials are given and
// dispatches to the command.
func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer, logg *zap.Logger) error {
	fs := flag.NewFlagSet("shopctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	apiURL := fs.String("api", cfg.Client.APIURL, "base URL of the shop API")
	token := fs.String("token", os.Getenv("SHOP_TOKEN"), "session token sent as a Bearer header")
	user := fs.String("user", "", "log in with this username before running the command")
	password := fs.String("password", "", "password for -user")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cli := &cli{
		client:  apiclient.New(*apiURL, cfg.Client.Timeout),
		out:     out,
		log:     logg,
		storage: cfg.Storage,
	}
	if *token != "" {
		cli.client.SetToken(*token)
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "login" {
		return cli.login(ctx, *user, *password)
	}
	if *user != "" {
		if _, err := cli.client.Login(ctx, *user, *password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	logg.Debug("Running command", zap.String("command", name), zap.String("api", *apiURL))
	return cmd(cli, ctx, rest)
}

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"shopmonitor/apiclient"
	"shopmonitor/config"
	"shopmonitor/dashboard"
	"shopmonitor/storage"
)

type cli struct {
	client  *apiclient.Client
	out     io.Writer
	log     *zap.Logger
	storage config.StorageConfig
}

var commands = map[string]func(*cli, context.Context, []string) error{
	"summary":   (*cli).summary,
	"inventory": (*cli).inventory,
	"sales":     (*cli).sales,
	"customers": (*cli).customers,
	"employees": (*cli).employees,
	"invoices":  (*cli).invoices,
	"add-item":  (*cli).addItem,
	"export":    (*cli).export,
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	return nil
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *cli) login(ctx context.Context, user, password string) error {
	if user == "" {
		return fmt.Errorf("%w: login needs -user and -password", errUsage)
	}
	res, err := c.client.Login(ctx, user, password)
	if errors.Is(err, apiclient.ErrInvalidCredentials) {
		return errors.New("login failed: invalid username or password")
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Logged in as %s (role %s)\n", user, res.Role)
	if res.Token != "" {
		fmt.Fprintln(c.out, res.Token)
	}
	return nil
}

func (c *cli) summary(ctx context.Context, args []string) error {
	if err := parse(newFlagSet("summary"), args); err != nil {
		return err
	}
	s, err := dashboard.LoadSummary(ctx, c.client)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Total sales:     $%s\n", s.TotalSales)
	fmt.Fprintf(c.out, "Total inventory: %d\n", s.TotalInventory)
	fmt.Fprintf(c.out, "Total customers: %d\n", s.TotalCustomers)
	if s.ShowStockAlert() {
		fmt.Fprintln(c.out, s.StockAlert())
	}
	fmt.Fprintln(c.out)

	tw := c.table()
	fmt.Fprintln(tw, "PRODUCT\tQTY\tAMOUNT\tDATE")
	for _, r := range s.RecentSales {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.ProductName, r.Quantity, r.Amount, r.SaleDate)
	}
	return tw.Flush()
}

func (c *cli) inventory(ctx context.Context, args []string) error {
	fs := newFlagSet("inventory")
	search := fs.String("search", "", "filter by product name")
	category := fs.String("category", "", "filter by category")
	if err := parse(fs, args); err != nil {
		return err
	}
	rows, err := dashboard.LoadInventory(ctx, c.client, *search, *category)
	if err != nil {
		return err
	}

	tw := c.table()
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tQTY\tPRICE\tEXPIRES\tSTATUS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			r.ID, r.Name, orNA(r.Category), r.Quantity, dashboard.Dollars(r.Price), orNA(r.ExpirationDate), r.Status)
	}
	return tw.Flush()
}

func (c *cli) sales(ctx context.Context, args []string) error {
	fs := newFlagSet("sales")
	search := fs.String("search", "", "filter by order id or customer")
	if err := parse(fs, args); err != nil {
		return err
	}
	report, err := dashboard.LoadSales(ctx, c.client, *search)
	if err != nil {
		return err
	}

	m := report.Metrics
	fmt.Fprintf(c.out, "Total sales: $%s  Orders: %d  Average: $%s  Completed: %s%%\n\n",
		m.TotalSales, m.TotalOrders, m.AverageOrder, m.CompletionRate)
	tw := c.table()
	fmt.Fprintln(tw, "ORDER\tCUSTOMER\tDATE\tAMOUNT\tITEMS\tSTATUS")
	for _, r := range report.Sales {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", r.OrderID, r.Customer, r.SaleDate, r.Amount, r.Items, r.Status)
	}
	return tw.Flush()
}

func (c *cli) customers(ctx context.Context, args []string) error {
	if err := parse(newFlagSet("customers"), args); err != nil {
		return err
	}
	customers, err := c.client.ListCustomers(ctx)
	if err != nil {
		return err
	}
	tw := c.table()
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tHISTORY")
	for _, cu := range customers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", cu.ID, cu.Name, orNA(cu.Email), orNA(cu.Phone), orNA(cu.PurchaseHistory))
	}
	return tw.Flush()
}

func (c *cli) employees(ctx context.Context, args []string) error {
	if err := parse(newFlagSet("employees"), args); err != nil {
		return err
	}
	employees, err := c.client.ListEmployees(ctx)
	if err != nil {
		return err
	}
	tw := c.table()
	fmt.Fprintln(tw, "ID\tNAME\tROLE\tPERFORMANCE")
	for _, e := range employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.Role, orNA(e.Performance))
	}
	return tw.Flush()
}

func (c *cli) invoices(ctx context.Context, args []string) error {
	if err := parse(newFlagSet("invoices"), args); err != nil {
		return err
	}
	invoices, err := c.client.ListInvoices(ctx)
	if err != nil {
		return err
	}
	tw := c.table()
	fmt.Fprintln(tw, "ID\tCUSTOMER\tTOTAL\tDISCOUNT\tDATE")
	for _, inv := range invoices {
		fmt.Fprintf(tw, "%d\t%d\t%s\t$%v\t%s\n",
			inv.ID, inv.CustomerID, dashboard.Dollars(inv.Total), inv.DiscountOrZero(), inv.InvoiceDate)
	}
	return tw.Flush()
}

// addItem applies the same required-field rules as the dashboard form.
func (c *cli) addItem(ctx context.Context, args []string) error {
	fs := newFlagSet("add-item")
	var form dashboard.ProductForm
	fs.StringVar(&form.Name, "name", "", "product name")
	fs.StringVar(&form.Category, "category", "", "category")
	fs.StringVar(&form.Quantity, "quantity", "", "units in stock")
	fs.StringVar(&form.Price, "price", "", "unit price")
	fs.StringVar(&form.ExpirationDate, "expiration", "", "expiration date, YYYY-MM-DD")
	if err := parse(fs, args); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		for _, msg := range dashboard.FieldErrors(err) {
			fmt.Fprintln(c.out, msg)
		}
		return fmt.Errorf("%w: add-item: missing or invalid fields", errUsage)
	}
	item, err := form.Item()
	if err != nil {
		return err
	}
	id, err := c.client.AddInventoryItem(ctx, item)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Added inventory item %d\n", id)
	return nil
}

// export writes the sales CSV to a file, or uploads it when -o is an s3 URL.
func (c *cli) export(ctx context.Context, args []string) error {
	fs := newFlagSet("export")
	target := fs.String("o", dashboard.ExportFilename, "output file or s3://bucket/key")
	if err := parse(fs, args); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := dashboard.ExportSales(ctx, c.client, &buf); err != nil {
		return err
	}

	if !storage.IsS3URL(*target) {
		if err := os.WriteFile(*target, buf.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Wrote %s\n", *target)
		return nil
	}

	loc, err := storage.ParseS3URL(*target)
	if err != nil {
		return err
	}
	uploader, err := storage.NewUploader(ctx, c.storage, storage.WithLogger(c.log))
	if err != nil {
		return err
	}
	if err := uploader.Upload(ctx, loc, buf.Bytes(), "text/csv"); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Uploaded %s\n", loc)
	return nil
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

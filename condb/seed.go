package condb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"shopmonitor/config"
	"shopmonitor/models"
	"shopmonitor/utils"
)

var saleStatuses = []string{models.SaleStatusCompleted, models.SaleStatusPending, models.SaleStatusRefunded}

var employeeRoles = []string{"Cashier", "Stock Clerk", "Manager", "Sales Associate"}

// SeedAdmin creates the bootstrap user unless the username already exists.
// When no password is configured one is generated and logged once.
func SeedAdmin(ctx context.Context, store *Store, cfg config.SeedConfig, log *zap.Logger) error {
	_, err := store.FindUserByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		log.Info("Admin user already present", zap.String("username", cfg.AdminUsername))
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	password := cfg.AdminPassword
	generated := password == ""
	if generated {
		password = gofakeit.New(0).Password(true, true, true, false, false, 16)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := store.CreateUser(ctx, models.User{
		Username: cfg.AdminUsername,
		Password: hash,
		Role:     cfg.AdminRole,
	}); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	fields := []zap.Field{zap.String("username", cfg.AdminUsername), zap.String("role", cfg.AdminRole)}
	if generated {
		fields = append(fields, zap.String("password", password))
	}
	log.Info("Admin user created", fields...)
	return nil
}

// SeedDemo fills an empty database with random inventory, customers,
// employees, sales and invoices. It does nothing when inventory has rows.
func SeedDemo(ctx context.Context, store *Store, rows int, log *zap.Logger) error {
	if rows <= 0 {
		return nil
	}
	n, err := store.CountInventory(ctx)
	if err != nil {
		return fmt.Errorf("count inventory: %w", err)
	}
	if n > 0 {
		log.Info("Demo data skipped, inventory is not empty", zap.Int("items", n))
		return nil
	}

	f := gofakeit.New(0)
	now := time.Now()

	productIDs := make([]int64, 0, rows)
	prices := make(map[int64]float64, rows)
	for i := 0; i < rows; i++ {
		name := f.ProductName()
		category := f.ProductCategory()
		price := f.Price(1, 200)
		qty := f.Number(0, 40)
		item := models.NewInventoryItem{
			Name:     &name,
			Category: &category,
			Quantity: &qty,
			Price:    &price,
		}
		if f.Bool() {
			exp := now.AddDate(0, 0, f.Number(7, 365)).Format("2006-01-02")
			item.ExpirationDate = &exp
		}
		id, err := store.CreateInventoryItem(ctx, item)
		if err != nil {
			return fmt.Errorf("insert inventory item: %w", err)
		}
		productIDs = append(productIDs, id)
		prices[id] = price
	}

	customerIDs := make([]int64, 0, rows)
	for i := 0; i < rows; i++ {
		email := f.Email()
		phone := f.Phone()
		history := fmt.Sprintf("%d previous orders", f.Number(0, 25))
		id, err := store.CreateCustomer(ctx, models.Customer{
			Name:            f.Name(),
			Email:           &email,
			Phone:           &phone,
			PurchaseHistory: &history,
		})
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		customerIDs = append(customerIDs, id)
	}

	for i := 0; i < rows/4+1; i++ {
		perf := fmt.Sprintf("%d/5", f.Number(1, 5))
		if _, err := store.CreateEmployee(ctx, models.Employee{
			Name:        f.Name(),
			Role:        employeeRoles[f.Number(0, len(employeeRoles)-1)],
			Performance: &perf,
		}); err != nil {
			return fmt.Errorf("insert employee: %w", err)
		}
	}

	for i := 0; i < rows*2; i++ {
		productID := productIDs[f.Number(0, len(productIDs)-1)]
		customerID := customerIDs[f.Number(0, len(customerIDs)-1)]
		qty := f.Number(1, 5)
		status := saleStatuses[f.Number(0, len(saleStatuses)-1)]
		date := now.Add(-time.Duration(f.Number(0, 60*24)) * time.Hour).Format(time.RFC3339)
		total := float64(qty) * prices[productID]

		if _, err := store.CreateSale(ctx, models.Sale{
			ProductID:  productID,
			CustomerID: customerID,
			Quantity:   qty,
			Total:      total,
			SaleDate:   date,
			Status:     &status,
		}); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		if status == models.SaleStatusCompleted {
			inv := models.Invoice{CustomerID: customerID, Total: total, InvoiceDate: date}
			if f.Bool() {
				d := float64(f.Number(1, 15))
				inv.Discount = &d
			}
			if _, err := store.CreateInvoice(ctx, inv); err != nil {
				return fmt.Errorf("insert invoice: %w", err)
			}
		}
	}

	log.Info("Demo data created", zap.Int("items", rows), zap.Int("customers", rows), zap.Int("sales", rows*2))
	return nil
}

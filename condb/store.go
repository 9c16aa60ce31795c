package condb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"shopmonitor/models"
)

// ErrUserNotFound is returned by FindUserByUsername when no row matches.
var ErrUserNotFound = errors.New("user not found")

// Store runs the shop queries against either SQLite or PostgreSQL.
// Queries are written with ? placeholders and rebound for the driver.
// Query errors are returned as the driver reported them.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	items := []models.InventoryItem{}
	err := s.db.SelectContext(ctx, &items,
		`SELECT id, name, category, quantity, price, expiration_date FROM inventory`)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountInventory(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM inventory`); err != nil {
		return 0, err
	}
	return n, nil
}

// CreateInventoryItem inserts the item and returns the generated id.
// Nil fields are stored as NULL.
func (s *Store) CreateInventoryItem(ctx context.Context, in models.NewInventoryItem) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO inventory (name, category, quantity, price, expiration_date) VALUES (?, ?, ?, ?, ?) RETURNING id`,
		in.Name, in.Category, in.Quantity, in.Price, in.ExpirationDate)
}

func (s *Store) ListSales(ctx context.Context) ([]models.Sale, error) {
	sales := []models.Sale{}
	err := s.db.SelectContext(ctx, &sales,
		`SELECT id, product_id, customer_id, quantity, total, sale_date, status FROM sales`)
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *Store) CreateSale(ctx context.Context, sale models.Sale) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO sales (product_id, customer_id, quantity, total, sale_date, status) VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		sale.ProductID, sale.CustomerID, sale.Quantity, sale.Total, sale.SaleDate, sale.Status)
}

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.db.SelectContext(ctx, &customers,
		`SELECT id, name, email, phone, purchase_history FROM customers`)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c models.Customer) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO customers (name, email, phone, purchase_history) VALUES (?, ?, ?, ?) RETURNING id`,
		c.Name, c.Email, c.Phone, c.PurchaseHistory)
}

func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := s.db.SelectContext(ctx, &employees,
		`SELECT id, name, role, performance FROM employees`)
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e models.Employee) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO employees (name, role, performance) VALUES (?, ?, ?) RETURNING id`,
		e.Name, e.Role, e.Performance)
}

func (s *Store) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := s.db.SelectContext(ctx, &invoices,
		`SELECT id, customer_id, total, discount, invoice_date FROM invoices`)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv models.Invoice) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO invoices (customer_id, total, discount, invoice_date) VALUES (?, ?, ?, ?) RETURNING id`,
		inv.CustomerID, inv.Total, inv.Discount, inv.InvoiceDate)
}

// FindUserByUsername returns ErrUserNotFound when the username is unknown.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u,
		s.db.Rebind(`SELECT id, username, password, role FROM users WHERE username = ?`), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u models.User) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO users (username, password, role) VALUES (?, ?, ?) RETURNING id`,
		u.Username, u.Password, u.Role)
}

func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := s.db.QueryRowxContext(ctx, s.db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

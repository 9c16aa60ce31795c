package dashboard

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"shopmonitor/models"
)

// ExportFilename is the download name of the sales export.
const ExportFilename = "sales_export.csv"

var exportHeader = []string{"Order #", "Customer", "Date", "Amount", "Items", "Status"}

// WriteSalesCSV writes one header row and one row per sale, in input order.
func WriteSalesCSV(w io.Writer, sales []models.Sale, customers []models.Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, row := range JoinSales(sales, customers) {
		record := []string{
			row.OrderID,
			row.Customer,
			row.SaleDate,
			row.Amount,
			strconv.Itoa(row.Items),
			row.Status,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSales fetches sales and customers and writes the CSV export.
func ExportSales(ctx context.Context, src Source, w io.Writer) error {
	sales, err := src.ListSales(ctx)
	if err != nil {
		return err
	}
	customers, err := src.ListCustomers(ctx)
	if err != nil {
		return err
	}
	return WriteSalesCSV(w, sales, customers)
}

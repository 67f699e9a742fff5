package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductsTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tPRICE\tMANUFACTURER\tSTOCK\n")
	for i := range products {
		p := &products[i]
		stock := fmt.Sprintf("%d", p.Stock)
		if !p.InStock {
			stock = "out"
		}
		tw.writef("%s\t%s\t%.0f ₽\t%s\t%s\n",
			p.ID,
			truncate(p.Name, 40),
			p.Price,
			p.Manufacturer,
			stock,
		)
	}
	return tw.finish()
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Category:\t%s\n", p.Category)
	tw.writef("Price:\t%.0f ₽\n", p.Price)
	tw.writef("Manufacturer:\t%s\n", p.Manufacturer)
	if p.Model != "" {
		tw.writef("Model:\t%s\n", p.Model)
	}
	if p.Series != "" {
		tw.writef("Series:\t%s\n", p.Series)
	}
	tw.writef("Stock:\t%d\n", p.Stock)
	if p.Description != "" {
		tw.writef("Description:\t%s\n", truncate(p.Description, 80))
	}

	keys := make([]string, 0, len(p.Specs))
	for k := range p.Specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tw.writef("%s:\t%s\n", k, p.Specs[k])
	}

	return tw.finish()
}

func printFiltersTable(filters []domain.FilterOption) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("KEY\tNAME\tVALUES\n")
	for i := range filters {
		values := ""
		for j, v := range filters[i].Values {
			if j > 0 {
				values += ", "
			}
			values += v
		}
		tw.writef("%s\t%s\t%s\n",
			filters[i].Key,
			filters[i].DisplayName,
			truncate(values, 60),
		)
	}
	return tw.finish()
}

func printCartTable(items []domain.CartItem, total float64) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ITEM\tPRODUCT\tPRICE\tQTY\tSUBTOTAL\n")
	for i := range items {
		tw.writef("%s\t%s\t%.0f ₽\t%d\t%.0f ₽\n",
			items[i].ID,
			truncate(items[i].ProductName, 40),
			items[i].ProductPrice,
			items[i].Quantity,
			items[i].Subtotal(),
		)
	}
	tw.writef("\tTotal:\t\t\t%.0f ₽\n", total)
	return tw.finish()
}

func printOrdersTable(orders []domain.Order) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSTATUS\tITEMS\tTOTAL\tCREATED\n")
	for i := range orders {
		tw.writef("%s\t%s\t%d\t%.0f ₽\t%s\n",
			orders[i].ID,
			orders[i].Status,
			len(orders[i].Items),
			orders[i].Total,
			orders[i].CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printOrderDetail(o *domain.Order) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", o.ID)
	tw.writef("Status:\t%s\n", o.Status)
	tw.writef("Total:\t%.0f ₽\n", o.Total)
	tw.writef("Address:\t%s\n", o.Address)
	if o.Phone != "" {
		tw.writef("Phone:\t%s\n", o.Phone)
	}
	tw.writef("Created:\t%s\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
	tw.writef("\n")
	tw.writef("PRODUCT\tPRICE\tQTY\n")
	for i := range o.Items {
		tw.writef("%s\t%.0f ₽\t%d\n",
			truncate(o.Items[i].ProductName, 40),
			o.Items[i].Price,
			o.Items[i].Quantity,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

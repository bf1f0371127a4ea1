package terminal

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rl1809/cafe-pos/internal/core/domain"
)

// Color palette for the café's console output. fatih/color disables every
// style automatically when stdout is not a terminal, so logic never depends
// on styling being visible.
var (
	styleTitle   = color.New(color.FgHiCyan, color.Bold)
	styleSubtle  = color.New(color.FgCyan)
	styleHighl   = color.New(color.FgHiGreen, color.Bold)
	styleAccent  = color.New(color.FgYellow)
	styleErr     = color.New(color.FgHiRed, color.Bold)
	styleMuted   = color.New(color.FgWhite)
	styleSoldOut = color.New(color.FgRed)
)

const currency = "₱"

// Display renders menus, receipts, and the daily summary to a writer.
type Display struct {
	writer io.Writer
}

func NewDisplay(w io.Writer) *Display {
	return &Display{writer: w}
}

func (d *Display) Greeting() {
	styleTitle.Fprintln(d.writer, "Welcome to James' Café — A cozy corner for your calm mornings.")
	styleMuted.Fprintln(d.writer, "Here we brew slow, chat quietly, and make every cup with care.")
	fmt.Fprintln(d.writer)
}

func (d *Display) NewCustomer() {
	styleAccent.Fprintln(d.writer, "---- New Customer ----")
}

func (d *Display) Categories(catalog *domain.Catalog) {
	styleSubtle.Fprintln(d.writer, "Menu categories:")
	for i, cat := range domain.AllCategories {
		fmt.Fprintf(d.writer, "%d) %s", i+1, cat)
		if catalog.IsCategorySoldOut(cat) {
			styleSoldOut.Fprint(d.writer, " [SOLD OUT]")
		}
		fmt.Fprintln(d.writer)
	}
	fmt.Fprintln(d.writer, "0) Finish order")
}

func (d *Display) AvailableItems(catalog *domain.Catalog, cat domain.Category, idxs []int) {
	if len(idxs) == 0 {
		styleMuted.Fprintf(d.writer, "(No available items in %s)\n", cat)
		return
	}
	for n, idx := range idxs {
		item := catalog.Item(idx)
		fmt.Fprintf(d.writer, "%d) %s  %s %s  (%d left)\n",
			n+1, item.Name, currency, item.Price.StringFixed(2), item.Stock)
	}
	fmt.Fprintln(d.writer, "0) Back to categories")
}

func (d *Display) LineAdded(item domain.MenuItem, qty int) {
	styleHighl.Fprintf(d.writer, "%d x %s added to order.\n", qty, item.Name)
}

func (d *Display) Receipt(order *domain.Order) {
	styleTitle.Fprintln(d.writer, "\n=== James' Café Receipt ===")
	styleSubtle.Fprintf(d.writer, "Receipt# %d     %s\n",
		order.ReceiptNo, order.CreatedAt.Format("2006-01-02 15:04:05"))
	styleMuted.Fprintf(d.writer, "Customer: %s     (%s)\n\n", order.CustomerName, order.DineOption)

	fmt.Fprintf(d.writer, "%-30s%-6s%-12s\n", "Item", "Qty", "Subtotal")
	fmt.Fprintln(d.writer, "-----------------------------------------------")
	for _, line := range order.Lines {
		fmt.Fprintf(d.writer, "%-30s%-6d%s %s\n",
			line.Name, line.Quantity, currency, line.Subtotal().StringFixed(2))
	}
	fmt.Fprintln(d.writer, "-----------------------------------------------")
	styleHighl.Fprintf(d.writer, "TOTAL: %s %s\n", currency, order.Total().StringFixed(2))
	styleTitle.Fprintln(d.writer, "Thank you for choosing James' Café — come back soon! ☕")
	fmt.Fprintln(d.writer)
}

func (d *Display) Cancelled() {
	styleMuted.Fprintln(d.writer, "No items ordered. Cancelling this transaction.")
}

func (d *Display) Summary(s domain.DaySummary) {
	styleTitle.Fprintln(d.writer, "\n=== Daily Summary ===")
	fmt.Fprintf(d.writer, "Customers served: %d\n", s.CustomersServed)
	fmt.Fprintf(d.writer, "Total revenue: %s %s\n", currency, s.TotalRevenue.StringFixed(2))
	fmt.Fprintf(d.writer, "Total items sold: %d\n", s.TotalItemsSold)
	if s.HasBestSeller {
		fmt.Fprintf(d.writer, "Best seller: %s (%d sold)\n", s.BestSeller.Name, s.BestSeller.Sold)
	} else {
		fmt.Fprintln(d.writer, "No sales recorded.")
	}

	fmt.Fprintln(d.writer, "\nRemaining inventory:")
	for _, item := range s.Remaining {
		fmt.Fprintf(d.writer, "- %s : %d left\n", item.Name, item.Stock)
	}
	styleTitle.Fprintln(d.writer, "\nThank you for running James' Café today. Good job! ☕")
}

func (d *Display) Errorf(format string, args ...any) {
	styleErr.Fprintf(d.writer, format+"\n", args...)
}

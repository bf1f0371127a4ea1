package domain

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DineOption records where the customer takes the order.
type DineOption string

const (
	DineOptionEatIn   DineOption = "Eat-In"
	DineOptionTakeOut DineOption = "Take-Out"
)

// OrderLine is one committed item selection. Name and UnitPrice are
// snapshotted at commit time so the line stays valid regardless of any
// later catalog change; ItemIndex keeps the link back to the catalog.
type OrderLine struct {
	ItemIndex int
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order accumulates one customer's selections. Lines are append-only;
// an order that ends with zero lines is a cancelled transaction and never
// reaches the day's history.
type Order struct {
	ID           string
	ReceiptNo    uint64
	CustomerName string
	DineOption   DineOption
	Lines        []OrderLine
	CreatedAt    time.Time
}

func NewOrder(customerName string, dine DineOption) *Order {
	return &Order{
		ID:           uuid.NewString(),
		ReceiptNo:    NextReceiptNo(),
		CustomerName: customerName,
		DineOption:   dine,
		CreatedAt:    time.Now(),
	}
}

// AddLine appends a committed line. Pure append: stock accounting is the
// catalog's job, not the order's.
func (o *Order) AddLine(itemIndex int, item MenuItem, qty int) {
	o.Lines = append(o.Lines, OrderLine{
		ItemIndex: itemIndex,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  qty,
	})
}

// Total sums the line subtotals. Recomputed on demand; lines are immutable
// once added so there is nothing to cache.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

var receiptCounter atomic.Uint64

// NextReceiptNo generates a receipt number unique within the run. The
// millisecond component keeps numbers roughly chronological; the counter
// keeps them distinct even when several orders finalize in the same
// millisecond.
func NextReceiptNo() uint64 {
	millis := uint64(time.Now().UnixMilli())
	return millis%1_000_000_000 + receiptCounter.Add(1)
}

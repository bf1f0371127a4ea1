package port

import (
	"errors"

	"github.com/rl1809/cafe-pos/internal/core/domain"
)

// ErrInputClosed is returned by a Prompter once the input stream is
// genuinely closed and no further answer can be obtained.
var ErrInputClosed = errors.New("input stream closed")

type Prompter interface {
	// ReadName reads a free-text name, trimmed; re-prompts while empty
	ReadName(prompt string) (string, error)

	// ReadIntInRange reads an integer in [min, max]; re-prompts on
	// non-numeric, trailing-garbage, or out-of-range input
	ReadIntInRange(prompt string, min, max int) (int, error)

	// ReadYesNo accepts y/yes/n/no case-insensitively; re-prompts otherwise
	ReadYesNo(prompt string) (bool, error)
}

type Display interface {
	// Greeting prints the opening banner shown once at startup
	Greeting()

	// NewCustomer prints the separator shown before each customer
	NewCustomer()

	// Categories lists every category with its menu number and a sold-out
	// marker where the whole category is out of stock
	Categories(catalog *domain.Catalog)

	// AvailableItems lists the in-stock items of one category with price
	// and remaining stock; idxs are catalog indexes as returned by
	// Catalog.ListAvailable
	AvailableItems(catalog *domain.Catalog, cat domain.Category, idxs []int)

	// LineAdded confirms a committed selection
	LineAdded(item domain.MenuItem, qty int)

	// Receipt prints the itemized receipt for a finalized order
	Receipt(order *domain.Order)

	// Cancelled prints the notice for an order discarded with no lines
	Cancelled()

	// Summary prints the end-of-day aggregate
	Summary(s domain.DaySummary)

	// Errorf prints a recoverable input or validation message
	Errorf(format string, args ...any)
}

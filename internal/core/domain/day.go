package domain

import "github.com/shopspring/decimal"

// DaySummary is the end-of-day aggregate over every finalized order and the
// final catalog state.
type DaySummary struct {
	CustomersServed int
	TotalRevenue    decimal.Decimal
	TotalItemsSold  int
	BestSeller      MenuItem
	HasBestSeller   bool
	Remaining       []MenuItem
}

// Summarize aggregates the finalized orders and the catalog into the day's
// closing figures.
func Summarize(orders []*Order, catalog *Catalog) DaySummary {
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total())
	}
	best, ok := catalog.BestSeller()
	return DaySummary{
		CustomersServed: len(orders),
		TotalRevenue:    revenue,
		TotalItemsSold:  catalog.TotalSold(),
		BestSeller:      best,
		HasBestSeller:   ok,
		Remaining:       catalog.Items(),
	}
}

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// Category is one of the fixed menu sections shown to the customer.
type Category int

const (
	CategoryBeverages Category = iota
	CategorySnacks
	CategoryMeals
	CategoryDesserts
)

// AllCategories lists every category in menu display order.
var AllCategories = []Category{
	CategoryBeverages,
	CategorySnacks,
	CategoryMeals,
	CategoryDesserts,
}

func (c Category) String() string {
	switch c {
	case CategoryBeverages:
		return "Beverages"
	case CategorySnacks:
		return "Snacks"
	case CategoryMeals:
		return "Meals"
	case CategoryDesserts:
		return "Desserts"
	default:
		return "Unknown"
	}
}

// MenuItem is a sellable item with live stock and a running sold counter.
// Stock + Sold stays equal to the initial stock for the whole run: the only
// mutation path is Catalog.Commit.
type MenuItem struct {
	Name     string
	Price    decimal.Decimal
	Category Category
	Stock    int
	Sold     int
}

// Catalog owns every MenuItem for the run. Items are addressed by their index
// in definition order; the collection never grows or shrinks after creation.
type Catalog struct {
	items []MenuItem
}

func NewCatalog(items []MenuItem) *Catalog {
	owned := make([]MenuItem, len(items))
	copy(owned, items)
	return &Catalog{items: owned}
}

// DefaultMenu returns the café's fixed menu.
func DefaultMenu() *Catalog {
	price := decimal.NewFromFloat
	return NewCatalog([]MenuItem{
		{Name: "Cappuccino", Price: price(140.00), Category: CategoryBeverages, Stock: 20},
		{Name: "Latte", Price: price(150.00), Category: CategoryBeverages, Stock: 20},
		{Name: "Iced Americano", Price: price(120.00), Category: CategoryBeverages, Stock: 20},
		{Name: "Chocolate Milkshake", Price: price(190.00), Category: CategoryBeverages, Stock: 20},
		{Name: "Blueberry Muffin", Price: price(75.00), Category: CategorySnacks, Stock: 20},
		{Name: "Garlic Parmesan Toast", Price: price(95.00), Category: CategorySnacks, Stock: 20},
		{Name: "Glazed Donut Holes", Price: price(100.00), Category: CategorySnacks, Stock: 20},
		{Name: "Chicken Wrap", Price: price(180.00), Category: CategoryMeals, Stock: 20},
		{Name: "Garlic Rice + Burger", Price: price(220.00), Category: CategoryMeals, Stock: 20},
		{Name: "Chicken Alfredo Pasta", Price: price(275.00), Category: CategoryMeals, Stock: 20},
		{Name: "Chocolate Cake Slice", Price: price(130.00), Category: CategoryDesserts, Stock: 20},
		{Name: "Fruit Parfait", Price: price(110.00), Category: CategoryDesserts, Stock: 20},
		{Name: "Tiramisu", Price: price(270.00), Category: CategoryDesserts, Stock: 20},
	})
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the item at idx. The returned copy is a read-only view;
// mutations go through Commit.
func (c *Catalog) Item(idx int) MenuItem {
	return c.items[idx]
}

// Items returns a copy of every item in definition order.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsCategorySoldOut reports whether every item in cat is out of stock.
// A category with no items is vacuously sold out.
func (c *Catalog) IsCategorySoldOut(cat Category) bool {
	for i := range c.items {
		if c.items[i].Category == cat && c.items[i].Stock > 0 {
			return false
		}
	}
	return true
}

// ListAvailable returns the catalog indexes of in-stock items in cat,
// in definition order. An empty result is valid, not an error.
func (c *Catalog) ListAvailable(cat Category) []int {
	var idxs []int
	for i := range c.items {
		if c.items[i].Category == cat && c.items[i].Stock > 0 {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Commit performs the check-and-decrement for a confirmed quantity: stock
// goes down by qty, the sold counter goes up by qty. Returns
// ErrInsufficientStock when qty is not in [1, stock]; the catalog is left
// untouched on failure.
func (c *Catalog) Commit(idx, qty int) error {
	if qty < 1 || qty > c.items[idx].Stock {
		return ErrInsufficientStock
	}
	c.items[idx].Stock -= qty
	c.items[idx].Sold += qty
	return nil
}

// TotalSold returns the number of units sold across the whole menu.
func (c *Catalog) TotalSold() int {
	total := 0
	for i := range c.items {
		total += c.items[i].Sold
	}
	return total
}

// BestSeller returns the item with the highest sold count. Ties keep the
// earlier item in definition order. ok is false when nothing has sold.
func (c *Catalog) BestSeller() (item MenuItem, ok bool) {
	best := -1
	for i := range c.items {
		if best < 0 || c.items[i].Sold > c.items[best].Sold {
			best = i
		}
	}
	if best < 0 || c.items[best].Sold == 0 {
		return MenuItem{}, false
	}
	return c.items[best], true
}

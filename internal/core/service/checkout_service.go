package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rl1809/cafe-pos/internal/core/domain"
	"github.com/rl1809/cafe-pos/internal/port"
)

// CheckoutService walks one customer through the selection flow: category,
// item, quantity, add-more. It is the only writer of the catalog; every
// quantity is bounded by live stock before Commit is called.
type CheckoutService struct {
	catalog *domain.Catalog
	in      port.Prompter
	out     port.Display
	logger  *zap.Logger
}

func NewCheckoutService(catalog *domain.Catalog, in port.Prompter, out port.Display, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		catalog: catalog,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// TakeOrder runs the selection loop until the customer finishes, appending
// committed lines to order. Returns an error only when the input stream
// closes mid-flow; lines committed before that point stay on the order.
func (s *CheckoutService) TakeOrder(order *domain.Order) error {
	for {
		s.out.Categories(s.catalog)

		choice, err := s.in.ReadIntInRange(fmt.Sprintf("Choose category (0-%d): ", len(domain.AllCategories)), 0, len(domain.AllCategories))
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		cat := domain.AllCategories[choice-1]

		if s.catalog.IsCategorySoldOut(cat) {
			s.out.Errorf("Sorry, %s is completely sold out for today.", cat)
			continue
		}

		idxs := s.catalog.ListAvailable(cat)
		if len(idxs) == 0 {
			// unreachable while the flow is single-threaded; treated as
			// sold out rather than trusted
			s.out.Errorf("Sorry, %s is completely sold out for today.", cat)
			continue
		}
		s.out.AvailableItems(s.catalog, cat, idxs)

		itemChoice, err := s.in.ReadIntInRange("Select item number (0 to go back): ", 0, len(idxs))
		if err != nil {
			return err
		}
		if itemChoice == 0 {
			continue
		}
		idx := idxs[itemChoice-1]
		item := s.catalog.Item(idx)

		qty, err := s.in.ReadIntInRange("Enter quantity: ", 1, item.Stock)
		if err != nil {
			return err
		}

		if err := s.catalog.Commit(idx, qty); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				s.out.Errorf("Sorry, %s just ran low on stock. Please pick again.", item.Name)
				continue
			}
			return fmt.Errorf("commit %q x%d: %w", item.Name, qty, err)
		}

		order.AddLine(idx, item, qty)
		s.out.LineAdded(item, qty)
		s.logger.Debug("line added",
			zap.String("order_id", order.ID),
			zap.String("item", item.Name),
			zap.Int("quantity", qty),
		)

		more, err := s.in.ReadYesNo("Add more items? (Y/N): ")
		if err != nil {
			return err
		}
		if more {
			continue
		}
		another, err := s.in.ReadYesNo("Continue ordering (another category)? (Y/N): ")
		if err != nil {
			return err
		}
		if !another {
			return nil
		}
	}
}

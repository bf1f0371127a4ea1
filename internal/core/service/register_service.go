package service

import (
	"go.uber.org/zap"

	"github.com/rl1809/cafe-pos/internal/core/domain"
	"github.com/rl1809/cafe-pos/internal/port"
)

// RegisterService runs the day: one checkout per customer, finalized orders
// collected into the history, summary at close. Orders with no lines are
// cancelled transactions and never enter the history.
type RegisterService struct {
	catalog  *domain.Catalog
	checkout *CheckoutService
	in       port.Prompter
	out      port.Display
	logger   *zap.Logger
	history  []*domain.Order
}

func NewRegisterService(catalog *domain.Catalog, checkout *CheckoutService, in port.Prompter, out port.Display, logger *zap.Logger) *RegisterService {
	return &RegisterService{
		catalog:  catalog,
		checkout: checkout,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run serves customers until the operator declines the next one, then prints
// and returns the day summary. A closed input stream at any prompt ends the
// day cleanly instead of looping on the dead reader.
func (s *RegisterService) Run() domain.DaySummary {
	s.out.Greeting()

	for {
		s.out.NewCustomer()

		name, err := s.in.ReadName("Enter customer name: ")
		if err != nil {
			break
		}

		eatIn, err := s.in.ReadYesNo("Dine option - Eat in? or Take-Out (Y/N): ")
		if err != nil {
			break
		}
		dine := domain.DineOptionTakeOut
		if eatIn {
			dine = domain.DineOptionEatIn
		}

		order := domain.NewOrder(name, dine)
		flowErr := s.checkout.TakeOrder(order)

		// Committed lines have already depleted stock, so an order that
		// holds any is finalized even when the stream closed mid-flow.
		if len(order.Lines) == 0 {
			s.out.Cancelled()
			s.logger.Info("order cancelled",
				zap.String("order_id", order.ID),
				zap.String("customer", order.CustomerName),
			)
		} else {
			s.history = append(s.history, order)
			s.out.Receipt(order)
			s.logger.Info("order finalized",
				zap.String("order_id", order.ID),
				zap.Uint64("receipt_no", order.ReceiptNo),
				zap.Int("lines", len(order.Lines)),
				zap.String("total", order.Total().StringFixed(2)),
			)
		}

		if flowErr != nil {
			break
		}

		next, err := s.in.ReadYesNo("Serve next customer? (Y/N): ")
		if err != nil || !next {
			break
		}
	}

	summary := domain.Summarize(s.history, s.catalog)
	s.out.Summary(summary)
	s.logger.Info("day closed",
		zap.Int("customers_served", summary.CustomersServed),
		zap.String("total_revenue", summary.TotalRevenue.StringFixed(2)),
		zap.Int("items_sold", summary.TotalItemsSold),
	)
	return summary
}

// Orders returns the finalized order history in service order.
func (s *RegisterService) Orders() []*domain.Order {
	return s.history
}

package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/client"
	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/money"
)

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=report
type InvoiceSource interface {
	ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
}

type ClientSource interface {
	ListClients(ctx context.Context, filter client.ListFilter) ([]*client.Client, error)
}

type ProductSource interface {
	CountProducts(ctx context.Context) (int64, error)
}

// Service assembles the dashboard from the other domains' repositories. All
// aggregation happens in the pure functions of this package; the service only
// fetches and wires.
type Service struct {
	invoices InvoiceSource
	clients  ClientSource
	products ProductSource
}

func NewService(invoices InvoiceSource, clients ClientSource, products ProductSource) *Service {
	return &Service{
		invoices: invoices,
		clients:  clients,
		products: products,
	}
}

// RecentSalesLimit is how many sales the dashboard shows.
const RecentSalesLimit = 5

type Dashboard struct {
	Totals        Totals
	ClientCount   int
	ProductCount  int64
	InvoiceCount  int
	StatusCounts  map[invoice.Status]int
	MonthlyPaid   [12]money.Cents
	MonthlyByYear []MonthTotal
	RecentSales   []Sale
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	invs, err := s.invoices.ListInvoices(ctx, invoice.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	clients, err := s.clients.ListClients(ctx, client.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	productCount, err := s.products.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting products: %w", err)
	}

	summaries := Summarize(invs)

	names := make(map[uuid.UUID]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Username
	}

	return &Dashboard{
		Totals:        Aggregate(summaries),
		ClientCount:   len(clients),
		ProductCount:  productCount,
		InvoiceCount:  len(summaries),
		StatusCounts:  CountByStatus(summaries),
		MonthlyPaid:   MonthlyPaidTotals(summaries),
		MonthlyByYear: MonthlyPaidTotalsByYear(summaries),
		RecentSales:   RecentSales(summaries, names, RecentSalesLimit),
	}, nil
}

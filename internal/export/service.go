package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/tajerhq/tajer/internal/client"
	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/report"
)

// Item is a single exported invoice resolved to its client name.
type Item struct {
	Invoice    *invoice.Invoice
	ClientName string
}

// Service builds accountant-facing exports of the invoice book.
type Service struct {
	invoices *invoice.Service
	clients  *client.Service
}

func NewService(invoiceSvc *invoice.Service, clientSvc *client.Service) *Service {
	return &Service{
		invoices: invoiceSvc,
		clients:  clientSvc,
	}
}

// Export collects invoices matching the filter and resolves each to its
// client's display name.
func (s *Service) Export(ctx context.Context, filter invoice.ListFilter) ([]Item, error) {
	invs, err := s.invoices.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	clients, err := s.clients.List(ctx, client.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID.String()] = c.Username
	}

	items := make([]Item, 0, len(invs))

	for _, inv := range invs {
		name, ok := names[inv.ClientID.String()]
		if !ok || name == "" {
			name = report.UnknownClient
		}

		items = append(items, Item{Invoice: inv, ClientName: name})
	}

	return items, nil
}

// WriteCSV renders the items as a CSV statement, one row per invoice.
// Amounts are formatted in currency units with two decimals.
func (s *Service) WriteCSV(items []Item) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	header := []string{"date", "invoice_id", "client", "total_price", "total_paid", "outstanding", "status"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, item := range items {
		inv := item.Invoice

		row := []string{
			inv.CreatedAt.Format("2006-01-02"),
			inv.ID.String(),
			item.ClientName,
			inv.TotalPrice.String(),
			inv.TotalPaid.String(),
			(inv.TotalPrice - inv.TotalPaid).String(),
			string(inv.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// GenerateSummary creates a short plain-text summary of the exported items,
// one line per invoice plus a totals footer.
func (s *Service) GenerateSummary(items []Item) string {
	var sb strings.Builder

	var summaries []report.Summary

	for _, item := range items {
		inv := item.Invoice

		sb.WriteString(fmt.Sprintf("* %s | %s | %s | paid %s | %s\n",
			inv.CreatedAt.Format("2006-01-02"), item.ClientName,
			inv.TotalPrice, inv.TotalPaid, inv.Status))

		summaries = append(summaries, report.Summary{
			TotalPrice: inv.TotalPrice,
			TotalPaid:  inv.TotalPaid,
		})
	}

	totals := report.Aggregate(summaries)
	sb.WriteString(fmt.Sprintf("Total: %s | collected %s | outstanding %s\n",
		totals.Revenue, totals.Collected, totals.Outstanding))

	return sb.String()
}

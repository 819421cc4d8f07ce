package export_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tajerhq/tajer/internal/client"
	"github.com/tajerhq/tajer/internal/export"
	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/report"
)

func newService(t *testing.T, invs []*invoice.Invoice, clients []*client.Client) *export.Service {
	t.Helper()

	ctrl := gomock.NewController(t)

	invoiceRepo := invoice.NewMockRepository(ctrl)
	invoiceRepo.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return(invs, nil).AnyTimes()

	clientRepo := client.NewMockRepository(ctrl)
	clientRepo.EXPECT().ListClients(gomock.Any(), gomock.Any()).Return(clients, nil).AnyTimes()

	return export.NewService(invoice.NewService(invoiceRepo), client.NewService(clientRepo))
}

func TestService_Export(t *testing.T) {
	clientID := uuid.New()
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	invs := []*invoice.Invoice{
		{
			ID:         uuid.New(),
			ClientID:   clientID,
			TotalPrice: 36500,
			TotalPaid:  20000,
			Status:     invoice.StatusPartialPaid,
			CreatedAt:  date,
		},
		{
			ID:         uuid.New(),
			ClientID:   uuid.New(), // no matching client
			TotalPrice: 5000,
			TotalPaid:  5000,
			Status:     invoice.StatusPaid,
			CreatedAt:  date,
		},
	}

	clients := []*client.Client{
		{ID: clientID, Username: "Ahmed Hassan"},
	}

	svc := newService(t, invs, clients)

	items, err := svc.Export(context.Background(), invoice.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Ahmed Hassan", items[0].ClientName)
	assert.Equal(t, report.UnknownClient, items[1].ClientName)
}

func TestService_WriteCSV(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	id := uuid.New()

	items := []export.Item{
		{
			Invoice: &invoice.Invoice{
				ID:         id,
				TotalPrice: 36500,
				TotalPaid:  20000,
				Status:     invoice.StatusPartialPaid,
				CreatedAt:  date,
			},
			ClientName: "Ahmed Hassan",
		},
	}

	svc := newService(t, nil, nil)

	data, err := svc.WriteCSV(items)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "date,invoice_id,client,total_price,total_paid,outstanding,status", lines[0])
	assert.Equal(t, "2024-03-10,"+id.String()+",Ahmed Hassan,365.00,200.00,165.00,PartialPaid", lines[1])
}

func TestService_GenerateSummary(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	items := []export.Item{
		{
			Invoice: &invoice.Invoice{
				TotalPrice: 1250,
				TotalPaid:  1250,
				Status:     invoice.StatusPaid,
				CreatedAt:  date,
			},
			ClientName: "Ahmed Hassan",
		},
		{
			Invoice: &invoice.Invoice{
				TotalPrice: 500,
				TotalPaid:  0,
				Status:     invoice.StatusUnPaid,
				CreatedAt:  date,
			},
			ClientName: "Mona Ali",
		},
	}

	svc := newService(t, nil, nil)

	body := svc.GenerateSummary(items)

	expectedSubstrings := []string{
		"2024-03-10 | Ahmed Hassan | 12.50 | paid 12.50 | Paid",
		"2024-03-10 | Mona Ali | 5.00 | paid 0.00 | UnPaid",
		"Total: 17.50 | collected 12.50 | outstanding 5.00",
	}

	for _, sub := range expectedSubstrings {
		assert.Contains(t, body, sub)
	}
}

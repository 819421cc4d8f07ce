package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tajerhq/tajer/internal/client"
	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/money"
	"github.com/tajerhq/tajer/internal/report"
)

func TestService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()

	invs := []*invoice.Invoice{
		{
			ID:         uuid.New(),
			ClientID:   clientID,
			TotalPrice: 10000,
			TotalPaid:  10000,
			Status:     invoice.StatusPaid,
			CreatedAt:  time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.New(),
			ClientID:   uuid.New(), // no matching client
			TotalPrice: 20000,
			TotalPaid:  5000,
			Status:     invoice.StatusPartialPaid,
			CreatedAt:  time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	clients := []*client.Client{
		{ID: clientID, Username: "Ahmed Hassan", Status: client.StatusActive},
	}

	invoices := report.NewMockInvoiceSource(ctrl)
	invoices.EXPECT().ListInvoices(gomock.Any(), invoice.ListFilter{}).Return(invs, nil)

	clientSrc := report.NewMockClientSource(ctrl)
	clientSrc.EXPECT().ListClients(gomock.Any(), client.ListFilter{}).Return(clients, nil)

	products := report.NewMockProductSource(ctrl)
	products.EXPECT().CountProducts(gomock.Any()).Return(int64(12), nil)

	svc := report.NewService(invoices, clientSrc, products)

	got, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, money.Cents(30000), got.Totals.Revenue)
	assert.Equal(t, money.Cents(15000), got.Totals.Collected)
	assert.Equal(t, money.Cents(15000), got.Totals.Outstanding)
	assert.Equal(t, 1, got.ClientCount)
	assert.Equal(t, int64(12), got.ProductCount)
	assert.Equal(t, 2, got.InvoiceCount)
	assert.Equal(t, 1, got.StatusCounts[invoice.StatusPaid])
	assert.Equal(t, 1, got.StatusCounts[invoice.StatusPartialPaid])
	assert.Equal(t, money.Cents(10000), got.MonthlyPaid[0])
	assert.Equal(t, money.Cents(5000), got.MonthlyPaid[1])

	require.Len(t, got.RecentSales, 2)
	assert.Equal(t, report.UnknownClient, got.RecentSales[0].ClientName)
	assert.Equal(t, "Ahmed Hassan", got.RecentSales[1].ClientName)
}

func TestService_Dashboard_InvoiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoices := report.NewMockInvoiceSource(ctrl)
	invoices.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	svc := report.NewService(invoices, report.NewMockClientSource(ctrl), report.NewMockProductSource(ctrl))

	_, err := svc.Dashboard(context.Background())
	assert.Error(t, err)
}

package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/money"
	"github.com/tajerhq/tajer/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.dashboard)
}

type saleResponse struct {
	InvoiceID  uuid.UUID   `json:"invoice_id"`
	ClientID   uuid.UUID   `json:"client_id"`
	ClientName string      `json:"client_name"`
	TotalPrice money.Cents `json:"total_price"`
	CreatedAt  time.Time   `json:"created_at"`
}

type monthTotalResponse struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Total money.Cents `json:"total"`
}

type dashboardResponse struct {
	Revenue       money.Cents            `json:"revenue"`
	Collected     money.Cents            `json:"collected"`
	Outstanding   money.Cents            `json:"outstanding"`
	ClientCount   int                    `json:"client_count"`
	ProductCount  int64                  `json:"product_count"`
	InvoiceCount  int                    `json:"invoice_count"`
	StatusCounts  map[invoice.Status]int `json:"status_counts"`
	MonthlyPaid   [12]money.Cents        `json:"monthly_paid"`
	MonthlyByYear []monthTotalResponse   `json:"monthly_by_year"`
	RecentSales   []saleResponse         `json:"recent_sales"`
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(d *report.Dashboard) dashboardResponse {
	byYear := make([]monthTotalResponse, len(d.MonthlyByYear))
	for i, mt := range d.MonthlyByYear {
		byYear[i] = monthTotalResponse{
			Year:  mt.Year,
			Month: int(mt.Month),
			Total: mt.Total,
		}
	}

	sales := make([]saleResponse, len(d.RecentSales))
	for i, s := range d.RecentSales {
		sales[i] = saleResponse{
			InvoiceID:  s.InvoiceID,
			ClientID:   s.ClientID,
			ClientName: s.ClientName,
			TotalPrice: s.TotalPrice,
			CreatedAt:  s.CreatedAt,
		}
	}

	return dashboardResponse{
		Revenue:       d.Totals.Revenue,
		Collected:     d.Totals.Collected,
		Outstanding:   d.Totals.Outstanding,
		ClientCount:   d.ClientCount,
		ProductCount:  d.ProductCount,
		InvoiceCount:  d.InvoiceCount,
		StatusCounts:  d.StatusCounts,
		MonthlyPaid:   d.MonthlyPaid,
		MonthlyByYear: byYear,
		RecentSales:   sales,
	}
}

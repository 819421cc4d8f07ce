package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/export"
	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/money"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.metadata)
	r.Post("/download", h.download)
}

type exportRequest struct {
	ClientID  *uuid.UUID `json:"client_id,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (r exportRequest) filter() invoice.ListFilter {
	return invoice.ListFilter{
		ClientID:  r.ClientID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type itemResponse struct {
	InvoiceID  uuid.UUID      `json:"invoice_id"`
	ClientName string         `json:"client_name"`
	TotalPrice money.Cents    `json:"total_price"`
	TotalPaid  money.Cents    `json:"total_paid"`
	Status     invoice.Status `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

type exportMetadataResponse struct {
	Invoices []itemResponse `json:"invoices"`
	Summary  string         `json:"summary"`
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.svc.Export(r.Context(), req.filter())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	responses := make([]itemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemResponse{
			InvoiceID:  item.Invoice.ID,
			ClientName: item.ClientName,
			TotalPrice: item.Invoice.TotalPrice,
			TotalPaid:  item.Invoice.TotalPaid,
			Status:     item.Invoice.Status,
			CreatedAt:  item.Invoice.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(exportMetadataResponse{
		Invoices: responses,
		Summary:  h.svc.GenerateSummary(items),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.svc.Export(r.Context(), req.filter())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := h.svc.WriteCSV(items)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"invoices_%s.csv\"", time.Now().Format("20060102")))

	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write csv", "error", err)
	}
}

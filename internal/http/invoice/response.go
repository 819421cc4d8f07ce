package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/money"
)

type goodsResponse struct {
	Name      string      `json:"name"`
	Price     money.Cents `json:"price"`
	Quantity  int64       `json:"quantity"`
	LineTotal money.Cents `json:"line_total"`
	ProductID uuid.UUID   `json:"product_id,omitempty"`
}

type invoiceResponse struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"client_id"`
	Goods      []goodsResponse `json:"goods"`
	TotalPrice money.Cents     `json:"total_price"`
	TotalPaid  money.Cents     `json:"total_paid"`
	Status     invoice.Status  `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	goods := make([]goodsResponse, len(inv.Goods))
	for i, g := range inv.Goods {
		goods[i] = goodsResponse{
			Name:      g.Name,
			Price:     g.Price,
			Quantity:  g.Quantity,
			LineTotal: g.LineTotal(),
			ProductID: g.ProductID,
		}
	}

	return invoiceResponse{
		ID:         inv.ID,
		ClientID:   inv.ClientID,
		Goods:      goods,
		TotalPrice: inv.TotalPrice,
		TotalPaid:  inv.TotalPaid,
		Status:     inv.Status,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func toResponseList(invs []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invs))
	for i, inv := range invs {
		resp[i] = toResponse(inv)
	}

	return resp
}

package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/client"
	"github.com/tajerhq/tajer/internal/money"
)

type clientResponse struct {
	ID          uuid.UUID     `json:"id"`
	Username    string        `json:"username"`
	Email       string        `json:"email,omitempty"`
	Phone       string        `json:"phone,omitempty"`
	CompanyName string        `json:"company_name,omitempty"`
	City        string        `json:"city,omitempty"`
	Address     string        `json:"address,omitempty"`
	Status      client.Status `json:"status"`
	TotalOwed   money.Cents   `json:"total_owed"`
	TotalPaid   money.Cents   `json:"total_paid"`
	Outstanding money.Cents   `json:"outstanding"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:          c.ID,
		Username:    c.Username,
		Email:       c.Email,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		City:        c.City,
		Address:     c.Address,
		Status:      c.Status,
		TotalOwed:   c.TotalOwed,
		TotalPaid:   c.TotalPaid,
		Outstanding: c.Outstanding,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toResponseList(clients []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	return resp
}

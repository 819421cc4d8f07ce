package client

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/money"
)

// Status represents whether a client account is open for new invoices.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

var (
	ErrNotFound      = errors.New("client not found")
	ErrInvalidStatus = errors.New("invalid client status")
)

// Client represents a customer account. TotalOwed, TotalPaid and Outstanding
// are derived from the client's invoices at read time and never stored.
type Client struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Phone       string
	CompanyName string
	City        string
	Address     string
	Status      Status

	TotalOwed   money.Cents
	TotalPaid   money.Cents
	Outstanding money.Cents

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	return s == StatusActive || s == StatusInactive
}

package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/money"
)

// UnknownClient is shown when a sale references a client that cannot be
// resolved; a broken reference never fails the whole view.
const UnknownClient = "Unknown Client"

// Summary is the slice of an invoice the reporting functions need.
type Summary struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	TotalPrice money.Cents
	TotalPaid  money.Cents
	Status     invoice.Status
	CreatedAt  time.Time
}

// Summarize projects full invoices into report summaries.
func Summarize(invs []*invoice.Invoice) []Summary {
	out := make([]Summary, len(invs))
	for i, inv := range invs {
		out[i] = Summary{
			ID:         inv.ID,
			ClientID:   inv.ClientID,
			TotalPrice: inv.TotalPrice,
			TotalPaid:  inv.TotalPaid,
			Status:     inv.Status,
			CreatedAt:  inv.CreatedAt,
		}
	}

	return out
}

// MonthlyPaidTotals buckets paid amounts into a fixed Jan-Dec series by the
// invoice's creation month, zero-indexed (0 = January). Years are merged:
// January 2024 and January 2025 land in the same bucket. That matches the
// dashboard chart this feeds; use MonthlyPaidTotalsByYear for a series that
// keeps years apart.
func MonthlyPaidTotals(invs []Summary) [12]money.Cents {
	var buckets [12]money.Cents

	for _, inv := range invs {
		if inv.CreatedAt.IsZero() {
			continue
		}

		buckets[int(inv.CreatedAt.Month())-1] += inv.TotalPaid
	}

	return buckets
}

// MonthTotal is one year+month bucket of the year-aware series.
type MonthTotal struct {
	Year  int
	Month time.Month
	Total money.Cents
}

// MonthlyPaidTotalsByYear aggregates paid amounts per calendar year and month,
// sorted chronologically. Months with no invoices are omitted.
func MonthlyPaidTotalsByYear(invs []Summary) []MonthTotal {
	type key struct {
		year  int
		month time.Month
	}

	totals := make(map[key]money.Cents)

	for _, inv := range invs {
		if inv.CreatedAt.IsZero() {
			continue
		}

		totals[key{inv.CreatedAt.Year(), inv.CreatedAt.Month()}] += inv.TotalPaid
	}

	out := make([]MonthTotal, 0, len(totals))
	for k, total := range totals {
		out = append(out, MonthTotal{Year: k.year, Month: k.month, Total: total})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}

		return out[i].Month < out[j].Month
	})

	return out
}

// CountByStatus counts invoices per payment status.
func CountByStatus(invs []Summary) map[invoice.Status]int {
	counts := make(map[invoice.Status]int)
	for _, inv := range invs {
		counts[inv.Status]++
	}

	return counts
}

// Totals are the headline money figures across a set of invoices.
type Totals struct {
	Revenue     money.Cents // sum of invoice totals
	Collected   money.Cents // sum of payments received
	Outstanding money.Cents // revenue minus collected
}

// Aggregate sums revenue, collected and outstanding over all invoices.
func Aggregate(invs []Summary) Totals {
	var t Totals

	for _, inv := range invs {
		t.Revenue += inv.TotalPrice
		t.Collected += inv.TotalPaid
		t.Outstanding += inv.TotalPrice - inv.TotalPaid
	}

	return t
}

// Sale is one row of the recent-sales view.
type Sale struct {
	InvoiceID  uuid.UUID
	ClientID   uuid.UUID
	ClientName string
	TotalPrice money.Cents
	CreatedAt  time.Time
}

// RecentSales returns the n most recent invoices, newest first, each resolved
// to its client's display name. Ties and missing timestamps keep the original
// collection order (stable sort). Unresolvable clients get a placeholder.
func RecentSales(invs []Summary, clientNames map[uuid.UUID]string, n int) []Sale {
	if n <= 0 {
		return nil
	}

	ordered := make([]Summary, len(invs))
	copy(ordered, invs)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	if len(ordered) > n {
		ordered = ordered[:n]
	}

	sales := make([]Sale, len(ordered))

	for i, inv := range ordered {
		name, ok := clientNames[inv.ClientID]
		if !ok || name == "" {
			name = UnknownClient
		}

		sales[i] = Sale{
			InvoiceID:  inv.ID,
			ClientID:   inv.ClientID,
			ClientName: name,
			TotalPrice: inv.TotalPrice,
			CreatedAt:  inv.CreatedAt,
		}
	}

	return sales
}

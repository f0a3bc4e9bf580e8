package freshbooks

import (
	"strings"
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// legacyStatusPaid is the numeric "paid" code of the pre-v3 FreshBooks API.
// Some accounts still return invoices carrying only this representation.
const legacyStatusPaid = 4

// paidStatusSynonyms are the v3 textual statuses that count as paid. The
// provider has used all three spellings across API versions.
var paidStatusSynonyms = map[string]bool{
	"paid":      true,
	"auto-paid": true,
	"autopaid":  true,
}

// Money is the provider's {amount, code} pair.
type Money struct {
	Amount string `json:"amount"`
	Code   string `json:"code"`
}

// Decimal parses the amount, returning zero on malformed input.
func (m Money) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(m.Amount))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ClientData is a read-only projection of a FreshBooks client. Only its id
// and a subset of fields are ever copied into local records.
type ClientData struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	CompanyName   string `json:"company_name"`
	BusinessPhone string `json:"business_phone"`
	MobilePhone   string `json:"mobile_phone"`
	Website       string `json:"website"`
	CreatedAt     string `json:"created_at"`
}

// CreatedTime parses the provider's creation timestamp, nil when absent or
// malformed.
func (c ClientData) CreatedTime() *time.Time {
	if c.CreatedAt == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, c.CreatedAt); err == nil {
			return &t
		}
	}
	return nil
}

// invoiceData is the wire shape of a v3 invoice, carrying both status
// representations.
type invoiceData struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	CustomerID    int64  `json:"customerid"`
	Organization  string `json:"organization"`
	Amount        Money  `json:"amount"`
	Paid          Money  `json:"paid"`
	Outstanding   Money  `json:"outstanding"`
	CurrencyCode  string `json:"currency_code"`
	Status        int    `json:"status"`
	V3Status      string `json:"v3_status"`
	CreateDate    string `json:"create_date"`
	DueDate       string `json:"due_date"`
	DatePaid      string `json:"date_paid"`
}

type expenseData struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"clientid"`
	Amount   Money  `json:"amount"`
	Vendor   string `json:"vendor"`
	Date     string `json:"date"`
}

// normalizeInvoiceStatus collapses the two provider status representations
// into the internal enum. Both checks are necessary: an invoice may carry
// either the v3 string or only the legacy numeric code.
func normalizeInvoiceStatus(v3Status string, legacyStatus int) domain.InvoiceStatus {
	s := strings.ToLower(strings.TrimSpace(v3Status))
	if paidStatusSynonyms[s] || legacyStatus == legacyStatusPaid {
		return domain.InvoicePaid
	}
	switch s {
	case "sent":
		return domain.InvoiceSent
	case "draft":
		return domain.InvoiceDraft
	case "overdue":
		return domain.InvoiceOverdue
	case "partial":
		return domain.InvoicePartial
	default:
		return domain.InvoiceStatusOther
	}
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (inv invoiceData) toDomain() domain.InvoiceSummary {
	summary := domain.InvoiceSummary{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		Organization:  inv.Organization,
		Amount:        inv.Amount.Decimal(),
		Paid:          inv.Paid.Decimal(),
		Outstanding:   inv.Outstanding.Decimal(),
		Currency:      inv.CurrencyCode,
		Status:        normalizeInvoiceStatus(inv.V3Status, inv.Status),
		CreateDate:    parseDate(inv.CreateDate),
		DueDate:       parseDate(inv.DueDate),
	}
	if inv.DatePaid != "" {
		t := parseDate(inv.DatePaid)
		summary.DatePaid = &t
	}
	return summary
}

func (exp expenseData) toDomain() domain.ExpenseSummary {
	return domain.ExpenseSummary{
		ExpenseID: exp.ID,
		ClientID:  exp.ClientID,
		Amount:    exp.Amount.Decimal(),
		Currency:  exp.Amount.Code,
		Vendor:    exp.Vendor,
		Date:      parseDate(exp.Date),
	}
}

// TokenPair is the result of an OAuth code exchange or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Profile is the authenticated user's identity document, used once after the
// OAuth callback to discover the account id.
type Profile struct {
	ID                  int64  `json:"id"`
	Email               string `json:"email"`
	BusinessMemberships []struct {
		Business struct {
			AccountID string `json:"account_id"`
		} `json:"business"`
	} `json:"business_memberships"`
}

// AccountID returns the business account identifier used by all accounting
// endpoints, empty when the profile carries no business membership.
func (p *Profile) AccountID() string {
	for _, m := range p.BusinessMemberships {
		if m.Business.AccountID != "" {
			return m.Business.AccountID
		}
	}
	return ""
}

// InvoiceList is a page of invoices plus the provider's total count.
type InvoiceList struct {
	Invoices []domain.InvoiceSummary
	Total    int
}

// ExpenseList is a page of expenses plus the provider's total count.
type ExpenseList struct {
	Expenses []domain.ExpenseSummary
	Total    int
}

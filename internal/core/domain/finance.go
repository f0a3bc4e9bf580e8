package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the single internal status representation. FreshBooks has
// shipped two incompatible representations across API versions (a v3 string
// and a legacy numeric code); both are normalized to this enum at the gateway
// boundary, before any business logic sees them.
type InvoiceStatus string

const (
	InvoicePaid        InvoiceStatus = "paid"
	InvoiceSent        InvoiceStatus = "sent"
	InvoiceDraft       InvoiceStatus = "draft"
	InvoiceOverdue     InvoiceStatus = "overdue"
	InvoicePartial     InvoiceStatus = "partial"
	InvoiceStatusOther InvoiceStatus = "other"
)

// InvoiceSummary is a transient, per-request projection of a provider invoice.
// Never persisted.
type InvoiceSummary struct {
	InvoiceID     int64           `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    int64           `json:"customerID"`
	Organization  string          `json:"organization"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          decimal.Decimal `json:"paid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	Currency      string          `json:"currency"`
	Status        InvoiceStatus   `json:"status"`
	CreateDate    time.Time       `json:"createDate"`
	DueDate       time.Time       `json:"dueDate"`
	DatePaid      *time.Time      `json:"datePaid,omitempty"`
}

// ExpenseSummary is a transient, per-request projection of a provider expense.
type ExpenseSummary struct {
	ExpenseID int64           `json:"expenseID"`
	ClientID  int64           `json:"clientID"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Vendor    string          `json:"vendor"`
	Date      time.Time       `json:"date"`
}

// AccountFinancials are the account-wide aggregate figures shown on the
// dashboard overview. Totals are lower-bound approximations once the provider
// holds more records than the fetched page size.
type AccountFinancials struct {
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	NetIncome           decimal.Decimal `json:"netIncome"`
	OutstandingInvoices decimal.Decimal `json:"outstandingInvoices"`
	PaidInvoices        int             `json:"paidInvoices"`
	Currency            string          `json:"currency"`
}

// ClientFinancials are the per-client aggregate figures plus recent invoice
// line items for display.
type ClientFinancials struct {
	TotalInvoiced    decimal.Decimal  `json:"totalInvoiced"`
	TotalPaid        decimal.Decimal  `json:"totalPaid"`
	TotalOutstanding decimal.Decimal  `json:"totalOutstanding"`
	TotalExpenses    decimal.Decimal  `json:"totalExpenses"`
	InvoiceCount     int              `json:"invoiceCount"`
	ExpenseCount     int              `json:"expenseCount"`
	Invoices         []InvoiceSummary `json:"invoices"`
}

package freshbooks

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

func TestNormalizeInvoiceStatus(t *testing.T) {
	tests := []struct {
		name         string
		v3Status     string
		legacyStatus int
		want         domain.InvoiceStatus
	}{
		{"paid", "paid", 0, domain.InvoicePaid},
		{"auto-paid hyphenated", "auto-paid", 0, domain.InvoicePaid},
		{"autopaid one word", "autopaid", 0, domain.InvoicePaid},
		{"paid is case insensitive", "AUTO-PAID", 0, domain.InvoicePaid},
		{"paid with whitespace", "  Paid ", 0, domain.InvoicePaid},
		{"legacy numeric paid without v3 status", "", 4, domain.InvoicePaid},
		{"legacy paid overrides unpaid v3 string", "sent", 4, domain.InvoicePaid},
		{"sent", "sent", 0, domain.InvoiceSent},
		{"draft", "draft", 0, domain.InvoiceDraft},
		{"overdue", "overdue", 0, domain.InvoiceOverdue},
		{"partial", "partial", 0, domain.InvoicePartial},
		{"unknown status", "disputed", 0, domain.InvoiceStatusOther},
		{"empty", "", 0, domain.InvoiceStatusOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeInvoiceStatus(tt.v3Status, tt.legacyStatus))
		})
	}
}

func TestMoneyDecimal(t *testing.T) {
	assert.True(t, Money{Amount: "150.25", Code: "USD"}.Decimal().Equal(decimal.RequireFromString("150.25")))
	assert.True(t, Money{Amount: " 42 "}.Decimal().Equal(decimal.NewFromInt(42)))
	assert.True(t, Money{Amount: "not-a-number"}.Decimal().IsZero())
	assert.True(t, Money{}.Decimal().IsZero())
}

func TestClientDataCreatedTime(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		wantYear  int
	}{
		{"rfc3339", "2024-03-01T10:00:00Z", 2024},
		{"space separated", "2024-03-01 10:00:00", 2024},
		{"date only", "2023-11-20", 2023},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClientData{CreatedAt: tt.createdAt}.CreatedTime()
			require.NotNil(t, got)
			assert.Equal(t, tt.wantYear, got.Year())
		})
	}

	assert.Nil(t, ClientData{}.CreatedTime())
	assert.Nil(t, ClientData{CreatedAt: "yesterday"}.CreatedTime())
}

func TestInvoiceDataToDomain(t *testing.T) {
	inv := invoiceData{
		ID:            101,
		InvoiceNumber: "INV-0101",
		CustomerID:    42,
		Organization:  "Alice LLC",
		Amount:        Money{Amount: "500.00", Code: "USD"},
		Paid:          Money{Amount: "500.00", Code: "USD"},
		Outstanding:   Money{Amount: "0.00", Code: "USD"},
		CurrencyCode:  "USD",
		V3Status:      "paid",
		CreateDate:    "2024-02-01",
		DueDate:       "2024-03-01",
		DatePaid:      "2024-02-20",
	}

	summary := inv.toDomain()

	assert.Equal(t, int64(101), summary.InvoiceID)
	assert.Equal(t, int64(42), summary.CustomerID)
	assert.Equal(t, domain.InvoicePaid, summary.Status)
	assert.True(t, summary.Amount.Equal(decimal.RequireFromString("500.00")))
	require.NotNil(t, summary.DatePaid)
	assert.Equal(t, 20, summary.DatePaid.Day())

	// An unpaid invoice leaves the paid date unset.
	inv.V3Status = "sent"
	inv.DatePaid = ""
	assert.Nil(t, inv.toDomain().DatePaid)
}

func TestProfileAccountID(t *testing.T) {
	payload := `{
		"id": 1,
		"email": "owner@example.com",
		"business_memberships": [
			{"business": {"account_id": ""}},
			{"business": {"account_id": "ACC123"}}
		]
	}`
	var profile Profile
	require.NoError(t, json.Unmarshal([]byte(payload), &profile))

	// The first non-empty membership wins.
	assert.Equal(t, "ACC123", profile.AccountID())
	assert.Empty(t, (&Profile{}).AccountID())
}

package domain

import "time"

// Role distinguishes the operator account from client accounts. Both share the
// users table so email uniqueness is enforced across all roles.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// WebsiteStatus is the last observed monitoring state of a client's website.
type WebsiteStatus string

const (
	WebsiteUp       WebsiteStatus = "up"
	WebsiteDown     WebsiteStatus = "down"
	WebsiteUnknown  WebsiteStatus = "unknown"
	WebsiteChecking WebsiteStatus = "checking"
)

// User represents an account in the dashboard: the operator (ADMIN) or a
// customer/business entity (CLIENT). Client records may be created manually or
// imported from FreshBooks during reconciliation.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`

	// Set when the account was issued a generated temporary password
	// (e.g. created by a FreshBooks import) and cleared on first change.
	MustChangePassword bool `json:"mustChangePassword"`

	BusinessName *string    `json:"businessName,omitempty"`
	BusinessType *string    `json:"businessType,omitempty"`
	Website      *string    `json:"website,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	ClientSince  *time.Time `json:"clientSince,omitempty"`

	// Representative contact block.
	RepName  *string `json:"repName,omitempty"`
	RepRole  *string `json:"repRole,omitempty"`
	RepEmail *string `json:"repEmail,omitempty"`
	RepPhone *string `json:"repPhone,omitempty"`

	// FreshbooksID is the single cross-reference binding this record to
	// exactly one FreshBooks client. Once set it is only ever rewritten to
	// the provider's current id, never silently cleared.
	FreshbooksID *string `json:"freshbooksID,omitempty"`

	// Website monitoring state.
	WebsiteStatus *WebsiteStatus `json:"websiteStatus,omitempty"`
	LastChecked   *time.Time     `json:"lastChecked,omitempty"`
	UpdownToken   *string        `json:"updownToken,omitempty"`

	AuditFields
}

// IsClient reports whether the user is a client account.
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

package models

import "time"

// User is the persisted shape of a dashboard account. Operator (ADMIN) and
// client accounts share this table, which is what enforces email uniqueness
// across roles.
type User struct {
	UserID             string  `db:"user_id"`
	Email              string  `db:"email"`
	Name               string  `db:"name"`
	PasswordHash       string  `db:"password_hash"`
	Role               string  `db:"role"`
	MustChangePassword bool    `db:"must_change_password"`
	BusinessName       *string `db:"business_name"`
	BusinessType       *string `db:"business_type"`
	Website            *string `db:"website"`
	Location           *string `db:"location"`
	Phone              *string `db:"phone"`
	ClientSince        *time.Time `db:"client_since"`

	RepName  *string `db:"rep_name"`
	RepRole  *string `db:"rep_role"`
	RepEmail *string `db:"rep_email"`
	RepPhone *string `db:"rep_phone"`

	// Single cross-reference column binding this record to one FreshBooks
	// client. The historical split across two repurposed text columns is
	// intentionally not reproduced.
	FreshbooksID *string `db:"freshbooks_id"`

	WebsiteStatus *string    `db:"website_status"`
	LastChecked   *time.Time `db:"last_checked"`
	UpdownToken   *string    `db:"updown_token"`

	AuditFields
}

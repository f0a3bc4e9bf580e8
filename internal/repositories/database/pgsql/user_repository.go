package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	"github.com/dekinnovations/dashboard_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, name, password_hash, role, must_change_password,
		business_name, business_type, website, location, phone, client_since,
		rep_name, rep_role, rep_email, rep_phone, freshbooks_id,
		website_status, last_checked, updown_token,
		created_at, created_by, last_updated_at, last_updated_by`

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:             d.UserID,
		Email:              d.Email,
		Name:               d.Name,
		PasswordHash:       d.PasswordHash,
		Role:               string(d.Role),
		MustChangePassword: d.MustChangePassword,
		BusinessName:       d.BusinessName,
		BusinessType:       d.BusinessType,
		Website:            d.Website,
		Location:           d.Location,
		Phone:              d.Phone,
		ClientSince:        d.ClientSince,
		RepName:            d.RepName,
		RepRole:            d.RepRole,
		RepEmail:           d.RepEmail,
		RepPhone:           d.RepPhone,
		FreshbooksID:       d.FreshbooksID,
		LastChecked:        d.LastChecked,
		UpdownToken:        d.UpdownToken,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.WebsiteStatus != nil {
		status := string(*d.WebsiteStatus)
		m.WebsiteStatus = &status
	}
	return m
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:             m.UserID,
		Email:              m.Email,
		Name:               m.Name,
		PasswordHash:       m.PasswordHash,
		Role:               domain.Role(m.Role),
		MustChangePassword: m.MustChangePassword,
		BusinessName:       m.BusinessName,
		BusinessType:       m.BusinessType,
		Website:            m.Website,
		Location:           m.Location,
		Phone:              m.Phone,
		ClientSince:        m.ClientSince,
		RepName:            m.RepName,
		RepRole:            m.RepRole,
		RepEmail:           m.RepEmail,
		RepPhone:           m.RepPhone,
		FreshbooksID:       m.FreshbooksID,
		LastChecked:        m.LastChecked,
		UpdownToken:        m.UpdownToken,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.WebsiteStatus != nil {
		status := domain.WebsiteStatus(*m.WebsiteStatus)
		d.WebsiteStatus = &status
	}
	return d
}

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.Role,
		&m.MustChangePassword,
		&m.BusinessName,
		&m.BusinessType,
		&m.Website,
		&m.Location,
		&m.Phone,
		&m.ClientSince,
		&m.RepName,
		&m.RepRole,
		&m.RepEmail,
		&m.RepPhone,
		&m.FreshbooksID,
		&m.WebsiteStatus,
		&m.LastChecked,
		&m.UpdownToken,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.Name, m.PasswordHash, m.Role, m.MustChangePassword,
		m.BusinessName, m.BusinessType, m.Website, m.Location, m.Phone, m.ClientSince,
		m.RepName, m.RepRole, m.RepEmail, m.RepPhone, m.FreshbooksID,
		m.WebsiteStatus, m.LastChecked, m.UpdownToken,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        UPDATE users SET
            email = $2,
            name = $3,
            business_name = $4,
            business_type = $5,
            website = $6,
            location = $7,
            phone = $8,
            client_since = $9,
            rep_name = $10,
            rep_role = $11,
            rep_email = $12,
            rep_phone = $13,
            freshbooks_id = $14,
            website_status = $15,
            last_checked = $16,
            updown_token = $17,
            last_updated_at = $18,
            last_updated_by = $19
        WHERE user_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.Name,
		m.BusinessName, m.BusinessType, m.Website, m.Location, m.Phone, m.ClientSince,
		m.RepName, m.RepRole, m.RepEmail, m.RepPhone, m.FreshbooksID,
		m.WebsiteStatus, m.LastChecked, m.UpdownToken,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	query := `
        UPDATE users SET
            password_hash = $2,
            must_change_password = FALSE,
            last_updated_at = NOW(),
            last_updated_by = $1
        WHERE user_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	d := toDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1);`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	d := toDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindClientByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND role = 'CLIENT';`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", userID, err)
	}
	d := toDomainUser(*m)
	return &d, nil
}

// clientSortColumns whitelists user-supplied sort keys to real columns.
var clientSortColumns = map[string]string{
	"name":         "name",
	"email":        "email",
	"businessName": "business_name",
	"clientSince":  "client_since",
	"createdAt":    "created_at",
}

func (r *PgxUserRepository) FindClients(ctx context.Context, query string, sortBy string, sortDesc bool) ([]domain.User, error) {
	column, ok := clientSortColumns[sortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if sortDesc {
		direction = "DESC"
	}

	sql := `SELECT ` + userColumns + ` FROM users WHERE role = 'CLIENT'`
	args := []any{}
	if query != "" {
		sql += ` AND (name ILIKE $1 OR email ILIKE $1 OR business_name ILIKE $1 OR location ILIKE $1)`
		args = append(args, "%"+query+"%")
	}
	sql += fmt.Sprintf(` ORDER BY %s %s NULLS LAST, user_id ASC;`, column, direction)

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var ds []domain.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		ds = append(ds, toDomainUser(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating client rows: %w", err)
	}
	return ds, nil
}

func (r *PgxUserRepository) CountClients(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'CLIENT';`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

func (r *PgxUserRepository) CountClientsUpdatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = 'CLIENT' AND last_updated_at >= $1;`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recently updated clients: %w", err)
	}
	return count, nil
}

func (r *PgxUserRepository) CountClientsCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = 'CLIENT' AND created_at >= $1;`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recently created clients: %w", err)
	}
	return count, nil
}

func (r *PgxUserRepository) CountWebsiteStatuses(ctx context.Context) (map[domain.WebsiteStatus]int, error) {
	rows, err := r.Pool.Query(ctx, `
        SELECT COALESCE(website_status, 'unknown'), COUNT(*)
        FROM users
        WHERE role = 'CLIENT' AND website IS NOT NULL AND website <> ''
        GROUP BY 1;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to count website statuses: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.WebsiteStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan website status row: %w", err)
		}
		counts[domain.WebsiteStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating website status rows: %w", err)
	}
	return counts, nil
}

func (r *PgxUserRepository) FindRecentActivity(ctx context.Context, limit int) ([]portsrepo.ClientActivity, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.Pool.Query(ctx, `
        SELECT user_id, name, business_name, created_at, last_updated_at
        FROM users
        WHERE role = 'CLIENT'
        ORDER BY last_updated_at DESC
        LIMIT $1;
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	var activity []portsrepo.ClientActivity
	for rows.Next() {
		var a portsrepo.ClientActivity
		if err := rows.Scan(&a.UserID, &a.Name, &a.BusinessName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activity = append(activity, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating activity rows: %w", err)
	}
	return activity, nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore implements driven.CredentialStore using PostgreSQL
type CredentialStore struct {
	db *DB
}

// NewCredentialStore creates a new CredentialStore
func NewCredentialStore(db *DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Save creates or updates an account
func (s *CredentialStore) Save(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, email, name, password_hash, roles, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			password_hash = EXCLUDED.password_hash,
			roles = EXCLUDED.roles,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.Name,
		account.PasswordHash,
		pq.Array(rolesToStrings(account.Roles)),
		account.Active,
		account.CreatedAt,
		account.UpdatedAt,
	)
	return err
}

// Get retrieves an account by ID
func (s *CredentialStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, email, name, password_hash, roles, active, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	return s.scanAccount(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves an account by email
func (s *CredentialStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, name, password_hash, roles, active, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`
	return s.scanAccount(s.db.QueryRowContext(ctx, query, email))
}

// UpdatePasswordHash replaces the stored hash for an account.
// A single UPDATE statement: atomic per record, last writer wins.
func (s *CredentialStore) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	query := `UPDATE accounts SET password_hash = $1, updated_at = $2 WHERE id = $3`
	result, err := s.db.ExecContext(ctx, query, hash, time.Now(), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Count returns the number of accounts
func (s *CredentialStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	return count, err
}

func (s *CredentialStore) scanAccount(row *sql.Row) (*domain.Account, error) {
	var account domain.Account
	var roles pq.StringArray

	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.PasswordHash,
		&roles,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	account.Roles = stringsToRoles(roles)
	return &account, nil
}

func rolesToStrings(roles []domain.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func stringsToRoles(values []string) []domain.Role {
	out := make([]domain.Role, len(values))
	for i, v := range values {
		out[i] = domain.Role(v)
	}
	return out
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"helperhub/internal/helper/domain"
	id "helperhub/pkg/domain"
	"helperhub/pkg/platform/sentinel"
)

// PostgresAccountStore persists helper accounts in PostgreSQL.
type PostgresAccountStore struct {
	db *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.HelperAccount) error {
	snapshot := account.Snapshot()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO helper_accounts (helper_id, email, phone, password_hash, password_set_at, token_value, token_created_at, token_expires_at, email_confirmed, created_at, last_login_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)`,
		snapshot.HelperID.String(),
		snapshot.Email,
		snapshot.Phone,
		snapshot.PasswordHash,
		nullTime(snapshot.PasswordSetAt),
		snapshot.TokenValue,
		nullTime(snapshot.TokenCreatedAt),
		nullTime(snapshot.TokenExpiresAt),
		snapshot.EmailConfirmed,
		snapshot.CreatedAt,
		nullTime(snapshot.LastLoginAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account for helper %s: %w", snapshot.HelperID, sentinel.ErrConflict)
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.HelperAccount) error {
	snapshot := account.Snapshot()
	res, err := s.db.ExecContext(ctx, `
		UPDATE helper_accounts SET
			phone = NULLIF($2, ''),
			password_hash = $3,
			password_set_at = $4,
			token_value = NULLIF($5, ''),
			token_created_at = $6,
			token_expires_at = $7,
			email_confirmed = $8,
			last_login_at = $9
		WHERE helper_id = $1`,
		snapshot.HelperID.String(),
		snapshot.Phone,
		snapshot.PasswordHash,
		nullTime(snapshot.PasswordSetAt),
		snapshot.TokenValue,
		nullTime(snapshot.TokenCreatedAt),
		nullTime(snapshot.TokenExpiresAt),
		snapshot.EmailConfirmed,
		nullTime(snapshot.LastLoginAt),
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account for helper %s: %w", snapshot.HelperID, sentinel.ErrNotFound)
	}
	return nil
}

const accountColumns = `helper_id, email, COALESCE(phone, ''), password_hash, password_set_at, COALESCE(token_value, ''), token_created_at, token_expires_at, email_confirmed, created_at, last_login_at`

func (s *PostgresAccountStore) FindByHelperID(ctx context.Context, helperID id.HelperID) (*domain.HelperAccount, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM helper_accounts WHERE helper_id = $1`, helperID.String())
	return s.scanOne(row, fmt.Sprintf("account for helper %s", helperID))
}

func (s *PostgresAccountStore) FindByEmail(ctx context.Context, email string) (*domain.HelperAccount, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM helper_accounts WHERE email = $1`, email)
	return s.scanOne(row, fmt.Sprintf("account with email %s", email))
}

func (s *PostgresAccountStore) FindByPhone(ctx context.Context, phone string) (*domain.HelperAccount, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM helper_accounts WHERE phone = $1`, phone)
	return s.scanOne(row, fmt.Sprintf("account with phone %s", phone))
}

func (s *PostgresAccountStore) FindByPasswordSetupToken(ctx context.Context, token string) (*domain.HelperAccount, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM helper_accounts WHERE token_value = $1`, token)
	return s.scanOne(row, "account with setup token")
}

func (s *PostgresAccountStore) scanOne(row *sql.Row, what string) (*domain.HelperAccount, error) {
	var (
		snapshot       domain.AccountSnapshot
		rawID          string
		passwordSetAt  sql.NullTime
		tokenCreatedAt sql.NullTime
		tokenExpiresAt sql.NullTime
		lastLoginAt    sql.NullTime
	)
	err := row.Scan(
		&rawID,
		&snapshot.Email,
		&snapshot.Phone,
		&snapshot.PasswordHash,
		&passwordSetAt,
		&snapshot.TokenValue,
		&tokenCreatedAt,
		&tokenExpiresAt,
		&snapshot.EmailConfirmed,
		&snapshot.CreatedAt,
		&lastLoginAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	helperID, err := id.ParseHelperID(rawID)
	if err != nil {
		return nil, err
	}
	snapshot.HelperID = helperID
	snapshot.PasswordSetAt = fromNullTime(passwordSetAt)
	snapshot.TokenCreatedAt = fromNullTime(tokenCreatedAt)
	snapshot.TokenExpiresAt = fromNullTime(tokenExpiresAt)
	snapshot.LastLoginAt = fromNullTime(lastLoginAt)
	return domain.RehydrateAccount(snapshot), nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func fromNullTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

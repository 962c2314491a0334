package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"helperhub/internal/helper/domain"
	id "helperhub/pkg/domain"
	"helperhub/pkg/platform/sentinel"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// PostgresHelperStore persists helpers in PostgreSQL.
type PostgresHelperStore struct {
	db *sql.DB
}

func NewPostgresHelperStore(db *sql.DB) *PostgresHelperStore {
	return &PostgresHelperStore{db: db}
}

func (s *PostgresHelperStore) Save(ctx context.Context, helper *domain.Helper) error {
	snapshot := helper.Snapshot()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO helpers (id, email, firstname, lastname, birthdate, country, department, place_of_birth, professions, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			firstname = EXCLUDED.firstname,
			lastname = EXCLUDED.lastname,
			birthdate = EXCLUDED.birthdate,
			country = EXCLUDED.country,
			department = EXCLUDED.department,
			place_of_birth = EXCLUDED.place_of_birth,
			professions = EXCLUDED.professions,
			status = EXCLUDED.status`,
		snapshot.ID.String(),
		snapshot.Email,
		snapshot.Firstname,
		snapshot.Lastname,
		snapshot.Birthdate,
		snapshot.Country,
		snapshot.Department,
		snapshot.PlaceOfBirth,
		pq.Array(snapshot.Professions),
		string(snapshot.Status),
		snapshot.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", snapshot.Email, sentinel.ErrConflict)
		}
		return fmt.Errorf("save helper: %w", err)
	}
	return nil
}

const helperColumns = `id, email, firstname, lastname, birthdate, country, department, place_of_birth, professions, status, created_at`

func (s *PostgresHelperStore) FindByEmail(ctx context.Context, email string) (*domain.Helper, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+helperColumns+` FROM helpers WHERE email = $1`, email)
	helper, err := scanHelper(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("helper with email %s: %w", email, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find helper by email: %w", err)
	}
	return helper, nil
}

func (s *PostgresHelperStore) FindByPasswordSetupToken(ctx context.Context, token string) (*domain.Helper, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT h.id, h.email, h.firstname, h.lastname, h.birthdate, h.country, h.department, h.place_of_birth, h.professions, h.status, h.created_at
		FROM helpers h
		JOIN helper_accounts a ON a.helper_id = h.id
		WHERE a.token_value = $1`, token)
	helper, err := scanHelper(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("helper by setup token: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find helper by setup token: %w", err)
	}
	return helper, nil
}

func scanHelper(row *sql.Row) (*domain.Helper, error) {
	var (
		snapshot    domain.HelperSnapshot
		rawID       string
		professions pq.StringArray
		status      string
	)
	err := row.Scan(
		&rawID,
		&snapshot.Email,
		&snapshot.Firstname,
		&snapshot.Lastname,
		&snapshot.Birthdate,
		&snapshot.Country,
		&snapshot.Department,
		&snapshot.PlaceOfBirth,
		&professions,
		&status,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	helperID, err := id.ParseHelperID(rawID)
	if err != nil {
		return nil, err
	}
	snapshot.ID = helperID
	snapshot.Professions = professions
	snapshot.Status = domain.HelperStatus(status)
	return domain.RehydrateHelper(snapshot), nil
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/pkg/apperrors"
	"github.com/ahassan/unisync/internal/pkg/logger"
)

// PrincipalRepository handles principal database operations
type PrincipalRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPrincipalRepository creates a new PrincipalRepository
func NewPrincipalRepository(db *pgxpool.Pool) *PrincipalRepository {
	return &PrincipalRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// CreatePrincipal inserts a new principal.
func (r *PrincipalRepository) CreatePrincipal(ctx context.Context, p *models.Principal) error {
	sql, args, err := r.sb.Insert("principals").
		Columns("id", "email", "password_hash").
		Values(p.ID, p.Email, p.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create principal SQL")
		return fmt.Errorf("failed to build create principal query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create principal query")
		return fmt.Errorf("error creating principal: %w", err)
	}

	return nil
}

// GetPrincipalByEmail retrieves a principal by email.
func (r *PrincipalRepository) GetPrincipalByEmail(ctx context.Context, email string) (*models.Principal, error) {
	sql, args, err := r.sb.Select("id", "email", "password_hash", "created_at").
		From("principals").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get principal by email SQL")
		return nil, fmt.Errorf("failed to build get principal query: %w", err)
	}

	p := &models.Principal{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Email, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPrincipalNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning principal row")
		return nil, fmt.Errorf("error getting principal by email: %w", err)
	}

	return p, nil
}

// GetPrincipalByID retrieves a principal by id.
func (r *PrincipalRepository) GetPrincipalByID(ctx context.Context, id string) (*models.Principal, error) {
	sql, args, err := r.sb.Select("id", "email", "password_hash", "created_at").
		From("principals").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get principal by ID SQL")
		return nil, fmt.Errorf("failed to build get principal query: %w", err)
	}

	p := &models.Principal{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Email, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPrincipalNotFound
		}
		logger.Error().Err(err).Str("principalID", id).Msg("Error scanning principal row")
		return nil, fmt.Errorf("error getting principal by ID: %w", err)
	}

	return p, nil
}

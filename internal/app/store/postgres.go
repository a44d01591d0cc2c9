package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahassan/unisync/internal/pkg/logger"
)

// PostgresStore persists documents in a single jsonb-backed table,
// one row per (principal, kind, document id).
type PostgresStore struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FetchAll retrieves every document of a kind for the principal, in
// insertion order. An empty principal id yields an empty result.
func (s *PostgresStore) FetchAll(ctx context.Context, principalID string, kind Kind) ([]Document, error) {
	if principalID == "" {
		logger.Warn().Str("kind", string(kind)).Msg("No principal signed in, returning empty collection")
		return []Document{}, nil
	}

	sql, args, err := s.sb.Select("doc").
		From("documents").
		Where(squirrel.Eq{"principal_id": principalID, "kind": string(kind)}).
		OrderBy("created_at ASC", "doc_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}

		doc := Document{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("error decoding document payload: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

// Save upserts a single document. Last writer wins; there is no
// version token. An empty principal id skips the write.
func (s *PostgresStore) Save(ctx context.Context, principalID string, kind Kind, docID string, doc Document) error {
	if principalID == "" {
		logger.Warn().Str("kind", string(kind)).Str("docID", docID).Msg("No principal signed in, skipping save")
		return nil
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding document payload: %w", err)
	}

	sql, args, err := s.sb.Insert("documents").
		Columns("principal_id", "kind", "doc_id", "doc").
		Values(principalID, string(kind), docID, payload).
		Suffix("ON CONFLICT (principal_id, kind, doc_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build save query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error saving document: %w", err)
	}

	return nil
}

// Delete removes a single document by id. Deleting an absent document
// is a no-op. An empty principal id skips the delete.
func (s *PostgresStore) Delete(ctx context.Context, principalID string, kind Kind, docID string) error {
	if principalID == "" {
		logger.Warn().Str("kind", string(kind)).Str("docID", docID).Msg("No principal signed in, skipping delete")
		return nil
	}

	sql, args, err := s.sb.Delete("documents").
		Where(squirrel.Eq{"principal_id": principalID, "kind": string(kind), "doc_id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}

	return nil
}

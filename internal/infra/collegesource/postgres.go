package collegesource

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/campus-helpdesk/internal/domain/college"
	apperrors "github.com/yanqian/campus-helpdesk/pkg/errors"
)

// PostgresSource reads the document from a JSONB column:
//
//	CREATE TABLE college_documents (slug TEXT PRIMARY KEY, document JSONB NOT NULL);
type PostgresSource struct {
	pool *pgxpool.Pool
	slug string
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool, slug string) *PostgresSource {
	return &PostgresSource{pool: pool, slug: slug}
}

// Fetch implements college.Source.
func (s *PostgresSource) Fetch(ctx context.Context) ([]byte, error) {
	var document []byte
	err := s.pool.QueryRow(ctx, `
		SELECT document::text
		FROM college_documents
		WHERE slug = $1
	`, s.slug).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.CodeDataNotFound, "data file not found", err)
		}
		return nil, fmt.Errorf("query college document: %w", err)
	}
	return document, nil
}

// Close releases the pool. The document is read once at startup, so the
// caller closes the source as soon as loading is done.
func (s *PostgresSource) Close() {
	s.pool.Close()
}

// Describe implements college.Source.
func (s *PostgresSource) Describe() string {
	return "postgres:" + s.slug
}

var _ college.Source = (*PostgresSource)(nil)

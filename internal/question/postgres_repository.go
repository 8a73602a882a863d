package question

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// List retrieves catalog questions, optionally filtered to one category.
// An unknown category simply yields an empty list.
func (r *PostgresRepository) List(ctx context.Context, category *string) ([]Question, error) {
	query := `
		SELECT id, category, text, order_index
		FROM questions
		ORDER BY category ASC, order_index ASC`
	args := []any{}

	if category != nil {
		query = `
			SELECT id, category, text, order_index
			FROM questions
			WHERE category = $1
			ORDER BY order_index ASC`
		args = append(args, *category)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		err := rows.Scan(&q.ID, &q.Category, &q.Text, &q.OrderIndex)
		if err != nil {
			return nil, fmt.Errorf("scanning question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating question rows: %w", err)
	}

	if questions == nil {
		questions = []Question{}
	}

	return questions, nil
}

// Count returns the number of questions in the catalog table.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}
	return count, nil
}

// SeedIfEmpty inserts the static catalog in a single transaction. The check
// is existence of at least one row, not per-item, so a partially seeded
// table is never appended to.
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, entry := range Catalog {
		batch.Queue(
			`INSERT INTO questions (category, text, order_index) VALUES ($1, $2, $3)`,
			entry.Category, entry.Text, entry.OrderIndex,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range Catalog {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("seeding question: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("closing seed batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	return nil
}

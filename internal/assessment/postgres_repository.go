package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

// Create inserts a new assessment record. Returns ErrTeamNotFound if the
// referenced team does not exist (FK violation).
func (r *PostgresRepository) Create(ctx context.Context, a *Assessment) error {
	query := `
		INSERT INTO assessments (team_id, participant_name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, a.TeamID, a.ParticipantName).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrTeamNotFound
		}
		return fmt.Errorf("inserting assessment: %w", err)
	}

	if a.Responses == nil {
		a.Responses = []Response{}
	}

	return nil
}

// GetByID retrieves a single assessment by its UUID, responses not populated.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	query := `
		SELECT id, team_id, participant_name, created_at
		FROM assessments
		WHERE id = $1`

	var a Assessment
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.TeamID, &a.ParticipantName, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("querying assessment: %w", err)
	}

	a.Responses = []Response{}
	return &a, nil
}

// ListByTeam retrieves all assessments for a team ordered by creation time,
// with each assessment's responses populated in insertion order.
func (r *PostgresRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]Assessment, error) {
	query := `
		SELECT id, team_id, participant_name, created_at
		FROM assessments
		WHERE team_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var assessments []Assessment
	for rows.Next() {
		var a Assessment
		err := rows.Scan(&a.ID, &a.TeamID, &a.ParticipantName, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning assessment row: %w", err)
		}
		a.Responses = []Response{}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessment rows: %w", err)
	}

	if assessments == nil {
		return []Assessment{}, nil
	}

	ids := make([]uuid.UUID, 0, len(assessments))
	index := make(map[uuid.UUID]int, len(assessments))
	for i := range assessments {
		ids = append(ids, assessments[i].ID)
		index[assessments[i].ID] = i
	}

	respQuery := `
		SELECT id, assessment_id, question_id, score, notes
		FROM responses
		WHERE assessment_id = ANY($1)
		ORDER BY seq ASC`

	respRows, err := r.pool.Query(ctx, respQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("listing assessment responses: %w", err)
	}
	defer respRows.Close()

	for respRows.Next() {
		var resp Response
		err := respRows.Scan(&resp.ID, &resp.AssessmentID, &resp.QuestionID, &resp.Score, &resp.Notes)
		if err != nil {
			return nil, fmt.Errorf("scanning response row: %w", err)
		}
		i := index[resp.AssessmentID]
		assessments[i].Responses = append(assessments[i].Responses, resp)
	}
	if err := respRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating response rows: %w", err)
	}

	return assessments, nil
}

// CreateResponses bulk-inserts responses for an existing assessment inside a
// single transaction. Returns ErrAssessmentNotFound, with zero rows written,
// if the assessment does not exist.
func (r *PostgresRepository) CreateResponses(ctx context.Context, assessmentID uuid.UUID, items []NewResponse) (int, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM assessments WHERE id = $1)`, assessmentID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("checking assessment: %w", err)
	}
	if !exists {
		return 0, ErrAssessmentNotFound
	}

	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(
			`INSERT INTO responses (assessment_id, question_id, score, notes) VALUES ($1, $2, $3, $4)`,
			assessmentID, item.QuestionID, item.Score, item.Notes,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, fmt.Errorf("inserting response: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("closing response batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing responses: %w", err)
	}

	return len(items), nil
}

// ListResponses retrieves an assessment's responses in insertion order.
func (r *PostgresRepository) ListResponses(ctx context.Context, assessmentID uuid.UUID) ([]Response, error) {
	query := `
		SELECT id, assessment_id, question_id, score, notes
		FROM responses
		WHERE assessment_id = $1
		ORDER BY seq ASC`

	rows, err := r.pool.Query(ctx, query, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("listing responses: %w", err)
	}
	defer rows.Close()

	var responses []Response
	for rows.Next() {
		var resp Response
		err := rows.Scan(&resp.ID, &resp.AssessmentID, &resp.QuestionID, &resp.Score, &resp.Notes)
		if err != nil {
			return nil, fmt.Errorf("scanning response row: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating response rows: %w", err)
	}

	if responses == nil {
		responses = []Response{}
	}

	return responses, nil
}

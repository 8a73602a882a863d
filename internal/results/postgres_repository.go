package results

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamhealth/teamhealth/internal/question"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// ComputeTeamResults aggregates mean scores per category for a team.
// A team with zero assessments short-circuits to all-zero averages rather
// than averaging an empty set.
func (r *PostgresRepository) ComputeTeamResults(ctx context.Context, teamID uuid.UUID) (*TeamResults, error) {
	var teamName string
	err := r.pool.QueryRow(ctx, `SELECT name FROM teams WHERE id = $1`, teamID).Scan(&teamName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("querying team: %w", err)
	}

	res := &TeamResults{
		TeamID:   teamID,
		TeamName: teamName,
	}

	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assessments WHERE team_id = $1`, teamID).Scan(&res.AssessmentCount)
	if err != nil {
		return nil, fmt.Errorf("counting assessments: %w", err)
	}

	if res.AssessmentCount == 0 {
		return res, nil
	}

	query := `
		SELECT q.category, AVG(r.score)
		FROM responses r
		JOIN questions q ON q.id = r.question_id
		JOIN assessments a ON a.id = r.assessment_id
		WHERE a.team_id = $1
		GROUP BY q.category`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("aggregating scores: %w", err)
	}
	defer rows.Close()

	averages := make(map[string]float64, len(question.Categories))
	for rows.Next() {
		var category string
		var avg float64
		if err := rows.Scan(&category, &avg); err != nil {
			return nil, fmt.Errorf("scanning aggregate row: %w", err)
		}
		averages[category] = round2(avg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aggregate rows: %w", err)
	}

	// Categories absent from the result set had no responses; they stay 0.0.
	res.PsychologicalSafetyAvg = averages[question.CategoryPsychologicalSafety]
	res.DependabilityAvg = averages[question.CategoryDependability]
	res.StructureClarityAvg = averages[question.CategoryStructureClarity]
	res.MeaningImpactAvg = averages[question.CategoryMeaningImpact]

	return res, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

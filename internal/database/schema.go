package database

import (
	"context"
	"fmt"
)

// EnsureSchema creates all tables needed by the service.
// Safe to call on every startup - uses IF NOT EXISTS throughout.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS teams (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name TEXT NOT NULL UNIQUE,
    description TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS questions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    category TEXT NOT NULL,
    text TEXT NOT NULL,
    order_index INT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category, order_index);

CREATE TABLE IF NOT EXISTS assessments (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    team_id UUID NOT NULL REFERENCES teams(id),
    participant_name TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_assessments_team_id ON assessments(team_id);

-- question_id carries no REFERENCES clause: submissions are accepted
-- without a catalog check.
CREATE TABLE IF NOT EXISTS responses (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    assessment_id UUID NOT NULL REFERENCES assessments(id),
    question_id UUID NOT NULL,
    score INT NOT NULL,
    notes TEXT,
    seq BIGINT GENERATED ALWAYS AS IDENTITY
);

CREATE INDEX IF NOT EXISTS idx_responses_assessment_id ON responses(assessment_id);
`

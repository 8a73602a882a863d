package question

import "github.com/google/uuid"

// Survey categories. Every catalog question belongs to exactly one.
const (
	CategoryPsychologicalSafety = "psychological_safety"
	CategoryDependability       = "dependability"
	CategoryStructureClarity    = "structure_clarity"
	CategoryMeaningImpact       = "meaning_impact"
)

// Categories lists the four survey categories in display order.
var Categories = []string{
	CategoryPsychologicalSafety,
	CategoryDependability,
	CategoryStructureClarity,
	CategoryMeaningImpact,
}

// Question represents a row in the questions table.
type Question struct {
	ID         uuid.UUID
	Category   string
	Text       string
	OrderIndex int // 1-based position within its category, display/sort only
}

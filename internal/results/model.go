package results

import "github.com/google/uuid"

// TeamResults is the aggregated report of per-category mean scores for a
// team across all its assessments. Averages are rounded to 2 decimal places;
// a category with no responses reports 0.0.
type TeamResults struct {
	TeamID                 uuid.UUID
	TeamName               string
	AssessmentCount        int
	PsychologicalSafetyAvg float64
	DependabilityAvg       float64
	StructureClarityAvg    float64
	MeaningImpactAvg       float64
}

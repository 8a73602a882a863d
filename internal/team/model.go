package team

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a row in the teams table.
type Team struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

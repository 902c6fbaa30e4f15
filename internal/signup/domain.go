package signup

import (
	"time"

	"github.com/google/uuid"
)

// User represents a persisted account awaiting activation. Rows are always
// created inactive with a hashed password; activation happens elsewhere.
type User struct {
	ID              uuid.UUID
	Username        string
	Email           string
	PasswordHash    string
	ActivationToken string
	Inactive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

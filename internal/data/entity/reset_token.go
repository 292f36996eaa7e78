package entity

import "github.com/google/uuid"

// ResetToken is a one-time credential recovery artifact. At most one token
// exists per user (found-or-created); it is deleted when a reset is
// confirmed, so a replay of the same link fails.
type ResetToken struct {
	Base
	UserID uuid.UUID `db:"user_id"`
	Token  string    `db:"token"`
}

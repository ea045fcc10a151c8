package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups transactions. A nil UserID marks a global category shared
// by every user; names are unique per owner scope, case-insensitively.
type Category struct {
	ID           uuid.UUID  `db:"id"`
	UserID       *uuid.UUID `db:"user_id"`
	Name         string     `db:"name"`
	IsPredefined bool       `db:"is_predefined"`
	CreatedAt    time.Time  `db:"created_at"`
}

// Global reports whether the category is shared by all users.
func (c *Category) Global() bool {
	return c.UserID == nil
}

// AvailableTo reports whether userID may reference the category.
func (c *Category) AvailableTo(userID uuid.UUID) bool {
	return c.UserID == nil || *c.UserID == userID
}

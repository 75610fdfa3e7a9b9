package entity

import "time"

// User is the aggregate root for the user domain.
// Email is the business key; uniqueness is enforced by a check-then-insert
// in the application layer, not by a storage constraint.
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

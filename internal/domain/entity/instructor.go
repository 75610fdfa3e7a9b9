package entity

// Instructor is a read-only projection; rows are seeded, never mutated
// through the API.
type Instructor struct {
	ID      string         `json:"_id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Image   string         `json:"image,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

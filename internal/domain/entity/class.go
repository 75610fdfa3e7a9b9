package entity

import "time"

// Class is a bookable class listing. Classes are created by instructors or
// admins and deleted by id; there is no in-place edit operation.
// Details carries arbitrary descriptive fields the frontend attaches.
type Class struct {
	ID              string         `json:"_id"`
	Name            string         `json:"name"`
	Image           string         `json:"image,omitempty"`
	InstructorName  string         `json:"instructorName,omitempty"`
	InstructorEmail string         `json:"instructorEmail,omitempty"`
	Price           float64        `json:"price"`
	AvailableSeats  int            `json:"availableSeats"`
	Students        int            `json:"students"`
	Details         map[string]any `json:"details,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

package entity

import "time"

// CartItem links a user (by email) to a class they intend to book.
type CartItem struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	ClassID   string    `json:"classId"`
	ClassName string    `json:"className,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rhythmicmansion/server/config"
)

type seedInstructor struct {
	Name    string
	Email   string
	Image   string
	Details map[string]any
}

type seedClass struct {
	Name            string
	Image           string
	InstructorName  string
	InstructorEmail string
	Price           float64
	AvailableSeats  int
	Students        int
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	instructors := []seedInstructor{
		{Name: "Maya Castellanos", Email: "maya@rhythmicmansion.com", Image: "https://i.ibb.co/maya.jpg", Details: map[string]any{"specialty": "salsa", "experienceYears": 12}},
		{Name: "Jonah Reyes", Email: "jonah@rhythmicmansion.com", Image: "https://i.ibb.co/jonah.jpg", Details: map[string]any{"specialty": "hip hop", "experienceYears": 8}},
		{Name: "Anaya Okafor", Email: "anaya@rhythmicmansion.com", Image: "https://i.ibb.co/anaya.jpg", Details: map[string]any{"specialty": "contemporary", "experienceYears": 10}},
	}
	for _, in := range instructors {
		details, err := json.Marshal(in.Details)
		if err != nil {
			log.Fatalf("failed to marshal details: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO instructors (name, email, image, details)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, in.Name, in.Email, in.Image, details).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed instructor %s: %v", in.Email, err)
		}
		fmt.Printf("seeded instructor: id=%s email=%s\n", id, in.Email)
	}

	classes := []seedClass{
		{Name: "Salsa Foundations", InstructorName: "Maya Castellanos", InstructorEmail: "maya@rhythmicmansion.com", Price: 49, AvailableSeats: 20, Students: 34},
		{Name: "Street Grooves", InstructorName: "Jonah Reyes", InstructorEmail: "jonah@rhythmicmansion.com", Price: 59, AvailableSeats: 15, Students: 51},
		{Name: "Contemporary Flow", InstructorName: "Anaya Okafor", InstructorEmail: "anaya@rhythmicmansion.com", Price: 55, AvailableSeats: 18, Students: 27},
	}
	for _, cl := range classes {
		var id string
		err = db.QueryRow(`
			INSERT INTO classes (name, image, instructor_name, instructor_email, price, available_seats, students)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, cl.Name, cl.Image, cl.InstructorName, cl.InstructorEmail, cl.Price, cl.AvailableSeats, cl.Students).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed class %s: %v", cl.Name, err)
		}
		fmt.Printf("seeded class: id=%s name=%s\n", id, cl.Name)
	}
}

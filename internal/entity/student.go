package entity

import (
	"time"
)

type Student struct {
	ID          int64     `json:"student_id" db:"student_id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	StudentYear string    `json:"student_year" db:"student_year"`
	Major       string    `json:"major" db:"major"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

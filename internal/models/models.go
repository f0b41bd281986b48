package models

import (
	"time"

	"gorm.io/gorm"
)

// Application is a submitted job application: the finished JobPosting fields
// plus the identity and tracking columns the frontend needs.
type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID string `gorm:"index;not null" json:"user_id"`

	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location"`
	JobType  string `json:"job_type"`

	// Dates are stored as the strings the pipeline produced: ISO when a
	// phrase normalized, the raw phrase otherwise.
	ApplicationDate string `json:"application_date"`
	Deadline        string `json:"deadline"`

	Status string `gorm:"default:'Applied'" json:"status"`
	JobURL string `json:"job_url"`
	Notes  string `gorm:"type:text" json:"notes"`
}

package domain

import "time"

// Course is a unit of content authored by exactly one mentor.
type Course struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Domain      string    `json:"domain"`
	Image       string    `json:"image,omitempty"`
	MentorID    string    `json:"mentorId" gorm:"index;not null"`
	Modules     []Module  `json:"modules,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Module is a single lesson inside a course. Position orders modules
// within their course.
type Module struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CourseID    string    `json:"courseId" gorm:"index;not null"`
	Position    int       `json:"position"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

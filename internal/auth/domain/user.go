package domain

import "time"

// Role restricts what an account may do: students enroll, mentors author.
type Role string

const (
	RoleStudent Role = "Student"
	RoleMentor  Role = "Mentor"
	RoleAdmin   Role = "Admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleMentor || r == RoleAdmin
}

type User struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Age              int       `json:"age,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	EducationLevel   string    `json:"educationLevel,omitempty"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	Contact          string    `json:"contact,omitempty"`
	ProfilePicture   string    `json:"profilePicture,omitempty"`
	Password         string    `json:"-" gorm:"not null"` // Never return password in JSON
	Role             Role      `json:"userType" gorm:"not null"`
	RefreshToken     *string   `json:"-"` // Single source of truth for refresh-token validity
	InterestedAreas  []string  `json:"interestedAreas" gorm:"serializer:json"`
	ExperienceFields []string  `json:"experienceFields" gorm:"serializer:json"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PublicProfile is the mentor shape embedded in catalog reads.
type PublicProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}

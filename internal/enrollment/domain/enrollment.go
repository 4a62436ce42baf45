package domain

import "time"

// Enrollment links one account to one course it has joined, together with
// the set of module ids the account has marked complete. The (user, course)
// pair is unique.
type Enrollment struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"userId" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID         string    `json:"courseId" gorm:"uniqueIndex:idx_user_course;not null"`
	CompletedModules []string  `json:"completedModules" gorm:"serializer:json"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (e *Enrollment) HasCompleted(moduleID string) bool {
	for _, id := range e.CompletedModules {
		if id == moduleID {
			return true
		}
	}
	return false
}

// ToggleCompleted flips the completion mark for one module and reports
// whether the module is completed afterwards.
func (e *Enrollment) ToggleCompleted(moduleID string) bool {
	for i, id := range e.CompletedModules {
		if id == moduleID {
			e.CompletedModules = append(e.CompletedModules[:i], e.CompletedModules[i+1:]...)
			return false
		}
	}
	e.CompletedModules = append(e.CompletedModules, moduleID)
	return true
}

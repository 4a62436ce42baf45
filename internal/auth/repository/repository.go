package repository

import authdomain "learning-buddy-backend/internal/auth/domain"

// UserRepository persists account records.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByID(id string) (*authdomain.User, error)
	FindByEmail(email string) (*authdomain.User, error)
	FindByEmailAndRole(email string, role authdomain.Role) (*authdomain.User, error)
	Update(user *authdomain.User) error
	UpdateRefreshToken(userID string, token *string) error
}

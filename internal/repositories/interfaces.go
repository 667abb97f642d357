package repositories

import (
	"errors"

	"blogapi/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername is returned when an insert collides with the
	// unique constraint on users.username.
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserRepository interface {
	FindByUsername(username string) (*models.User, error)
	Exists(username string) (bool, error)
	Create(user *models.User) error
}

type BlogRepository interface {
	List() ([]models.Blog, error)
	FindByID(id int) (*models.Blog, error)
	Create(blog *models.Blog) error
	Update(id int, title, content string) error
	Delete(id int) error
}

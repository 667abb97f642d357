package repositories

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"blogapi/internal/models"
)

const pqUniqueViolation = "23505"

// UserStore is the Postgres-backed UserRepository.
type UserStore struct {
	db           *sql.DB
	trackChanges bool
}

func NewUserStore(db *sql.DB, trackChanges bool) *UserStore {
	return &UserStore{db: db, trackChanges: trackChanges}
}

// FindByUsername fetches a user row by its unique username.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(
		`SELECT id, username, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a username is already taken.
func (s *UserStore) Exists(username string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM users WHERE username = $1`,
		username,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new user and fills in its generated id. A concurrent
// registration race lands on the unique constraint and surfaces as
// ErrDuplicateUsername.
func (s *UserStore) Create(user *models.User) error {
	err := s.db.QueryRow(
		`INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`,
		user.Username, user.PasswordHash,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return ErrDuplicateUsername
		}
		return err
	}

	if s.trackChanges {
		logrus.WithFields(logrus.Fields{
			"table": "users",
			"op":    "insert",
			"id":    user.ID,
		}).Info("row created")
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"

	"blogapi/internal/models"
)

// BlogStore is the Postgres-backed BlogRepository.
type BlogStore struct {
	db           *sql.DB
	trackChanges bool
}

func NewBlogStore(db *sql.DB, trackChanges bool) *BlogStore {
	return &BlogStore{db: db, trackChanges: trackChanges}
}

// List returns all blogs in storage order.
func (s *BlogStore) List() ([]models.Blog, error) {
	rows, err := s.db.Query(
		`SELECT id, title, content, author, timestamp, user_id FROM blogs`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(
			&blog.ID, &blog.Title, &blog.Content,
			&blog.Author, &blog.Timestamp, &blog.UserID,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

// FindByID fetches a single blog row.
func (s *BlogStore) FindByID(id int) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.QueryRow(
		`SELECT id, title, content, author, timestamp, user_id FROM blogs WHERE id = $1`,
		id,
	).Scan(
		&blog.ID, &blog.Title, &blog.Content,
		&blog.Author, &blog.Timestamp, &blog.UserID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Create inserts a blog row and fills in the generated id and the
// server-assigned timestamp.
func (s *BlogStore) Create(blog *models.Blog) error {
	err := s.db.QueryRow(
		`INSERT INTO blogs (title, content, author, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, timestamp`,
		blog.Title, blog.Content, blog.Author, blog.UserID,
	).Scan(&blog.ID, &blog.Timestamp)
	if err != nil {
		return err
	}

	if s.trackChanges {
		logrus.WithFields(logrus.Fields{
			"table": "blogs",
			"op":    "insert",
			"id":    blog.ID,
			"actor": blog.Author,
		}).Info("row created")
	}
	return nil
}

// Update overwrites title and content only. Author, user_id and timestamp
// are never touched after creation.
func (s *BlogStore) Update(id int, title, content string) error {
	result, err := s.db.Exec(
		`UPDATE blogs SET title = $1, content = $2 WHERE id = $3`,
		title, content, id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if s.trackChanges {
		logrus.WithFields(logrus.Fields{
			"table": "blogs",
			"op":    "update",
			"id":    id,
		}).Info("row updated")
	}
	return nil
}

// Delete removes a blog row permanently.
func (s *BlogStore) Delete(id int) error {
	result, err := s.db.Exec(`DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if s.trackChanges {
		logrus.WithFields(logrus.Fields{
			"table": "blogs",
			"op":    "delete",
			"id":    id,
		}).Info("row deleted")
	}
	return nil
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// CreateTables creates all required tables in the database if they do not
// exist yet. It runs once at startup.
func CreateTables(db *sql.DB) error {
	if err := createUsersTable(db); err != nil {
		return err
	}
	return createBlogsTable(db)
}

func createUsersTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		password_hash VARCHAR(512) NOT NULL
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	logrus.Debug("Users table ready")
	return nil
}

func createBlogsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS blogs (
		id SERIAL PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		content TEXT NOT NULL,
		author VARCHAR(50) NOT NULL,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		user_id INTEGER NOT NULL REFERENCES users(id)
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create blogs table: %w", err)
	}

	logrus.Debug("Blogs table ready")
	return nil
}

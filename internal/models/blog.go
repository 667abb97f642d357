package models

import "time"

// Blog is a single post. Author is the owner's username captured at creation
// time; it is not kept in sync with the users table afterwards.
type Blog struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	UserID    int       `json:"user_id" db:"user_id"`
}

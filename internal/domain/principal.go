package domain

import "time"

// Role identifies which namespace a principal belongs to and what it may do.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Admin is a club administrator who can publish events and announcements.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// User is a regular site member. Usernames are unique among users but
// independent of the admin namespace.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

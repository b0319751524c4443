package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // unique business key, used as the login identifier
	PasswordHash string // argon2id PHC encoded, never the plaintext
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

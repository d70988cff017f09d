package user

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"nombre" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

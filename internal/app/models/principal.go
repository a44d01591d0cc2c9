package models

import "time"

// Principal is a signed-up account owning one set of planner
// collections in the remote store.
type Principal struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

package models

import "time"

// AdminAccount represents the single administrator account. It is provisioned
// once (first-run seed or out-of-band) and only ever read afterwards.
type AdminAccount struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // never expose
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

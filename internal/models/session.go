package models

import "time"

// Session is a server-side login session. It is written once and never
// renewed.
type Session struct {
	ID        string    `json:"-"`
	Identity  Identity  `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

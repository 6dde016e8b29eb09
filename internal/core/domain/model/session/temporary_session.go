package session

import "time"

// TemporarySession lets an unverified user log in with limited access
// after proving control of its e-mail with a one-time code.
type TemporarySession struct {
	ID        string
	Email     string
	ExpiresAt time.Time
}

func (s TemporarySession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// BelongsTo reports whether the session was issued for email.
func (s TemporarySession) BelongsTo(email string) bool {
	return s.Email == email
}

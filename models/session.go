package models

import "time"

// Session is the server-side record of an authenticated login. A session row
// is inserted on login and deleted on logout; tokens whose session row is
// missing or expired are rejected by the authentication middleware, which is
// what gives logout real revocation semantics on top of stateless JWTs.
type Session struct {
	// SessionID is a UUID assigned on login. It travels inside the JWT as
	// the "jti" claim.
	SessionID string `json:"-"`

	// UserID is the account the session was established for.
	UserID int64 `json:"-"`

	// CreatedAt is the time the session was established.
	CreatedAt time.Time `json:"-"`

	// ExpiresAt is the hard expiry of the session. Matches the "exp" claim
	// of the issued token.
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the session's hard expiry has passed at the
// given instant.
func (s Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

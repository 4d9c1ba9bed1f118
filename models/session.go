package models

import "time"

// Session is the locally persisted login of the client.
type Session struct {
	UserID    int64
	Login     string
	Token     string
	CreatedAt time.Time
}

// Valid reports whether the session holds a usable token.
func (s Session) Valid() bool {
	return s.Token != ""
}

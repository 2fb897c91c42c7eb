// Package user keeps players and their best scores, persisted through a Backend
package user

import (
	"time"
)

// Score is a finished session result
type Score struct {
	Time  int64 `json:"time"` // Survival time in milliseconds
	Kills int   `json:"kills"`
}

// NewScore builds a Score from a session duration and kill count
func NewScore(d time.Duration, kills int) Score {
	return Score{Time: d.Milliseconds(), Kills: kills}
}

// Duration returns the survival time
func (s Score) Duration() time.Duration {
	return time.Duration(s.Time) * time.Millisecond
}

// Better reports whether s strictly beats other: lower time wins, kills are ignored
func (s Score) Better(other Score) bool {
	return s.Time < other.Time
}

// compareScores orders scores best first with missing scores last
func compareScores(a, b *Score) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Better(*b):
		return -1
	case b.Better(*a):
		return 1
	}
	return 0
}

// User is a named player with an optional best score
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BestScore *Score `json:"bestScore"`
}

// clone returns a deep copy so callers cannot mutate store state
func (u User) clone() User {
	if u.BestScore != nil {
		s := *u.BestScore
		u.BestScore = &s
	}
	return u
}

// Document is the persisted state of the store
type Document struct {
	Users       []User `json:"users"`
	IDCount     int    `json:"idCount"`
	CurrentUser string `json:"currentUser,omitempty"`
}

// clone returns a deep copy of the document
func (d *Document) clone() *Document {
	out := &Document{IDCount: d.IDCount, CurrentUser: d.CurrentUser}
	out.Users = make([]User, len(d.Users))
	for i, u := range d.Users {
		out.Users[i] = u.clone()
	}
	return out
}

package quiz

import (
	"crypto/rand"
	"time"

	"quizlab/backend/models"
)

// Session is one learner's quiz attempt from start to scored result. It
// owns its question instances: they are cloned from the bank, shuffled and
// renumbered 1..N, so nothing a session does can leak into the bank or
// into another session.
type Session struct {
	ID        string
	User      models.User
	Questions []models.Question
	Score     int
	MaxScore  int
	StartedAt time.Time
}

// Rendered returns the presentable form of every active question, in
// session order.
func (s *Session) Rendered() []models.Rendered {
	out := make([]models.Rendered, len(s.Questions))
	for i, q := range s.Questions {
		out[i] = q.Render()
	}
	return out
}

// newSessionID creates a 16-character alphanumeric session id.
func newSessionID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

package quiz

import (
	"errors"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"quizlab/backend/models"
	"quizlab/backend/storage"
)

// DefaultMaxQuestions caps how many questions one session draws from a tier.
const DefaultMaxQuestions = 10

// ErrSessionNotFound is returned by Submit for an unknown or already
// completed session id.
var ErrSessionNotFound = errors.New("session not found")

// Two letters, hyphen, two digits, e.g. "IT-21" or "ІО-21". \p{L} keeps the
// check open to non-Latin alphabets.
var groupPattern = regexp.MustCompile(`^\p{L}{2}-\d{2}$`)

// ValidationError reports start-request fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range sortedKeys(e.Fields) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Controller orchestrates quiz attempts: it draws questions from the bank,
// tracks active sessions, scores submissions and hands results to the
// store.
type Controller struct {
	bank         *models.QuestionBank
	store        storage.ResultStore
	maxQuestions int

	mu     sync.Mutex
	active map[string]*Session
}

func NewController(bank *models.QuestionBank, store storage.ResultStore, maxQuestions int) *Controller {
	if maxQuestions <= 0 {
		maxQuestions = DefaultMaxQuestions
	}
	return &Controller{
		bank:         bank,
		store:        store,
		maxQuestions: maxQuestions,
		active:       map[string]*Session{},
	}
}

// Tiers lists the bank's tiers with their question counts.
func (c *Controller) Tiers() map[string]int {
	return c.bank.Tiers()
}

// Start validates the request, draws up to maxQuestions random questions
// from the tier (falling back to the default tier when the requested one
// does not exist) and returns a new session with questions renumbered 1..N.
func (c *Controller) Start(tier, name, group string) (*Session, error) {
	if verr := validateUser(name, group); verr != nil {
		return nil, verr
	}
	if !c.bank.HasTier(tier) {
		tier = models.DefaultTier
	}

	source := c.bank.Tier(tier)
	drawn := make([]models.Question, len(source))
	for i, q := range source {
		drawn[i] = q.Clone()
	}
	rand.Shuffle(len(drawn), func(i, j int) { drawn[i], drawn[j] = drawn[j], drawn[i] })
	if len(drawn) > c.maxQuestions {
		drawn = drawn[:c.maxQuestions]
	}
	for i, q := range drawn {
		q.SetOrdinal(i + 1)
	}

	s := &Session{
		ID: newSessionID(),
		User: models.User{
			Name:  strings.TrimSpace(name),
			Group: strings.TrimSpace(group),
			Tier:  tier,
		},
		Questions: drawn,
		StartedAt: time.Now(),
	}

	c.mu.Lock()
	c.active[s.ID] = s
	c.mu.Unlock()
	return s, nil
}

// SubmitOutcome pairs a result with its persistence status. Saved is false
// when the store failed; the result is still valid and shown to the user.
type SubmitOutcome struct {
	Result *models.Result
	Saved  bool
}

// Submit scores every active question of the session exactly once. A
// missing answer counts as incorrect, never as an error. The session is
// discarded afterwards; there is no retry on the same attempt.
func (c *Controller) Submit(sessionID string, answers map[int]models.Answer) (*SubmitOutcome, error) {
	c.mu.Lock()
	s, ok := c.active[sessionID]
	if ok {
		delete(c.active, sessionID)
	}
	c.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	score, maxScore := 0, 0
	for _, q := range s.Questions {
		maxScore += q.Points()
		score += q.Check(answers[q.Ordinal()])
	}
	s.Score, s.MaxScore = score, maxScore

	result := &models.Result{
		User:     s.User,
		Score:    score,
		MaxScore: maxScore,
		Date:     time.Now(),
	}

	saved := true
	if err := c.store.Save(result); err != nil {
		saved = false
	}
	return &SubmitOutcome{Result: result, Saved: saved}, nil
}

// LastResult returns the most recently persisted attempt.
func (c *Controller) LastResult() (*models.Result, error) {
	return c.store.Last()
}

func validateUser(name, group string) *ValidationError {
	fields := map[string]string{}
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		fields["name"] = "name must be at least 2 characters"
	}
	if !groupPattern.MatchString(strings.TrimSpace(group)) {
		fields["group"] = "group must match the XX-00 format"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

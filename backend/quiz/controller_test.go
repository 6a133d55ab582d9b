package quiz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"quizlab/backend/models"
	"quizlab/backend/quiz"
	"quizlab/backend/storage"
)

// failingStore always refuses to persist. Stands in for a dead database.
type failingStore struct{}

func (failingStore) Save(*models.Result) error     { return storage.ErrUnavailable }
func (failingStore) Last() (*models.Result, error) { return nil, storage.ErrUnavailable }

// smallBank builds a tier of n single-choice questions with a single option
// each, so every question can be answered correctly from the outside.
func smallBank(tier string, n, points int) *models.QuestionBank {
	bank := models.NewBank()
	for i := 0; i < n; i++ {
		bank.Add(tier, models.NewSingleChoice("question", []string{"yes"}, "yes", points))
	}
	return bank
}

func TestStartValidation(t *testing.T) {
	c := quiz.NewController(smallBank("easy", 3, 1), storage.NewMemoryStore(), 0)

	cases := []struct {
		name, group string
		wantField   string
	}{
		{"A", "IT-21", "name"},
		{"Bob", "A1", "group"},
		{"Bob", "IT-210", "group"},
		{"Bob", "1T-21", "group"},
	}
	for _, tc := range cases {
		_, err := c.Start("easy", tc.name, tc.group)
		var verr *quiz.ValidationError
		if assert.ErrorAs(t, err, &verr, "%s/%s", tc.name, tc.group) {
			assert.Contains(t, verr.Fields, tc.wantField)
		}
	}

	_, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)

	// Non-Latin letters are fine in both fields.
	_, err = c.Start("easy", "Іван", "ІО-21")
	assert.NoError(t, err)
}

func TestStartRejectsBothFieldsAtOnce(t *testing.T) {
	c := quiz.NewController(smallBank("easy", 1, 1), storage.NewMemoryStore(), 0)

	_, err := c.Start("easy", " A ", "group")
	var verr *quiz.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.NotEmpty(t, verr.Error())
}

func TestStartDrawsWholeSmallTier(t *testing.T) {
	c := quiz.NewController(smallBank("easy", 3, 1), storage.NewMemoryStore(), 0)

	s, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)
	assert.Len(t, s.Questions, 3)
	for i, q := range s.Questions {
		assert.Equal(t, i+1, q.Ordinal(), "questions are renumbered 1..N")
	}
}

func TestStartCapsLargeTier(t *testing.T) {
	c := quiz.NewController(smallBank("easy", 25, 1), storage.NewMemoryStore(), 0)

	s, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)
	assert.Len(t, s.Questions, quiz.DefaultMaxQuestions)
	for i, q := range s.Questions {
		assert.Equal(t, i+1, q.Ordinal())
	}
}

func TestStartFallsBackToDefaultTier(t *testing.T) {
	c := quiz.NewController(smallBank(models.DefaultTier, 4, 1), storage.NewMemoryStore(), 0)

	s, err := c.Start("legendary", "Bob", "IT-21")
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultTier, s.User.Tier)
	assert.Len(t, s.Questions, 4)
}

func TestStartLeavesBankUntouched(t *testing.T) {
	bank := smallBank("easy", 5, 1)
	c := quiz.NewController(bank, storage.NewMemoryStore(), 0)

	_, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)

	for _, q := range bank.Tier("easy") {
		assert.Equal(t, 0, q.Ordinal(), "session renumbering must not reach bank instances")
	}
}

func TestSubmitWithNoAnswers(t *testing.T) {
	c := quiz.NewController(smallBank("easy", 4, 2), storage.NewMemoryStore(), 0)

	s, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)

	outcome, err := c.Submit(s.ID, nil)
	assert.NoError(t, err, "missing answers are incorrect, not an error")
	assert.Equal(t, 0, outcome.Result.Score)
	assert.Equal(t, 8, outcome.Result.MaxScore)
	assert.True(t, outcome.Saved)
}

func TestSubmitFullScore(t *testing.T) {
	store := storage.NewMemoryStore()
	c := quiz.NewController(smallBank("easy", 3, 2), store, 0)

	s, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)

	answers := map[int]models.Answer{}
	for _, q := range s.Questions {
		answers[q.Ordinal()] = models.Answer{Choice: "yes"}
	}

	outcome, err := c.Submit(s.ID, answers)
	assert.NoError(t, err)
	assert.Equal(t, 6, outcome.Result.Score)
	assert.Equal(t, 6, outcome.Result.MaxScore)
	assert.Equal(t, "Bob", outcome.Result.User.Name)
	assert.False(t, outcome.Result.Date.IsZero())

	last, err := store.Last()
	assert.NoError(t, err)
	assert.Equal(t, outcome.Result.Score, last.Score)
}

func TestSubmitDiscardsSession(t *testing.T) {
	c := quiz.NewController(smallBank("easy", 1, 1), storage.NewMemoryStore(), 0)

	s, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)

	_, err = c.Submit(s.ID, nil)
	assert.NoError(t, err)

	_, err = c.Submit(s.ID, nil)
	assert.True(t, errors.Is(err, quiz.ErrSessionNotFound), "no retry on the same attempt")
}

func TestSubmitUnknownSession(t *testing.T) {
	c := quiz.NewController(smallBank("easy", 1, 1), storage.NewMemoryStore(), 0)

	_, err := c.Submit("nope", nil)
	assert.True(t, errors.Is(err, quiz.ErrSessionNotFound))
}

func TestSubmitSurvivesStorageFailure(t *testing.T) {
	c := quiz.NewController(smallBank("easy", 2, 1), failingStore{}, 0)

	s, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)

	outcome, err := c.Submit(s.ID, map[int]models.Answer{1: {Choice: "yes"}})
	assert.NoError(t, err, "a dead store never fails the submission")
	assert.False(t, outcome.Saved)
	assert.Equal(t, 1, outcome.Result.Score)
	assert.Equal(t, 2, outcome.Result.MaxScore)
}

func TestTiers(t *testing.T) {
	bank := smallBank("easy", 2, 1)
	bank.Add("hard", models.NewFreeText("q", "a", 3))
	c := quiz.NewController(bank, storage.NewMemoryStore(), 0)

	assert.Equal(t, map[string]int{"easy": 2, "hard": 1}, c.Tiers())
}

func TestSessionOrderIsRandomized(t *testing.T) {
	bank := models.NewBank()
	for i := 0; i < 20; i++ {
		bank.Add("easy", models.NewFreeText("prompt", "answer", i+1))
	}
	c := quiz.NewController(bank, storage.NewMemoryStore(), 20)

	first, err := c.Start("easy", "Bob", "IT-21")
	assert.NoError(t, err)

	// With 20 questions, ten draws sharing one order would be astronomically
	// unlikely.
	different := false
	for i := 0; i < 10 && !different; i++ {
		next, err := c.Start("easy", "Bob", "IT-21")
		assert.NoError(t, err)
		for j := range next.Questions {
			if next.Questions[j].Points() != first.Questions[j].Points() {
				different = true
				break
			}
		}
	}
	assert.True(t, different, "expected question order to vary across sessions")
}

package storage

import (
	"errors"

	"quizlab/backend/models"
)

var (
	// ErrUnavailable means the persistence backend could not be reached.
	// Callers treat it as a degraded save, never as a fatal error.
	ErrUnavailable = errors.New("result storage unavailable")
	// ErrNoResult means no attempt has been persisted yet.
	ErrNoResult = errors.New("no result stored")
)

// ResultStore keeps the single most recent completed attempt.
type ResultStore interface {
	Save(r *models.Result) error
	Last() (*models.Result, error)
}

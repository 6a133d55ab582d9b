package models

import "strings"

// Kind identifies the input modality of a question.
type Kind string

const (
	KindSingle Kind = "single" // one choice from a list
	KindMulti  Kind = "multi"  // any number of choices from a list
	KindText   Kind = "text"   // free-text field
	KindMatch  Kind = "match"  // drag keys onto labelled slots
)

// Answer carries one raw user response. Each question kind reads only the
// field matching its modality; the zero value is a missing answer and
// scores nothing.
type Answer struct {
	Choice    string            `json:"choice,omitempty"`
	Choices   []string          `json:"choices,omitempty"`
	Text      string            `json:"text,omitempty"`
	Placement map[string]string `json:"placement,omitempty"` // key -> slot label
}

// Rendered is the presentation-agnostic form of a question. Option and key
// order is the order fixed when the question instance was built; rendering
// the same instance twice yields the same structure.
type Rendered struct {
	Ordinal int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Kind    Kind     `json:"kind"`
	Points  int      `json:"points"`
	Options []string `json:"options,omitempty"`
	Keys    []string `json:"keys,omitempty"`
	Slots   []string `json:"slots,omitempty"`
}

// Question is a single quiz item. Check awards either the full point value
// or zero; there is no partial credit for any kind.
type Question interface {
	Ordinal() int
	SetOrdinal(n int)
	Prompt() string
	Points() int
	Render() Rendered
	Check(a Answer) int
	// Clone returns an independent instance with its own ordinal and a
	// fresh option/key shuffle. Sessions must never hand out or mutate
	// the instances stored in the bank.
	Clone() Question
}

// base holds the fields every question kind shares.
type base struct {
	ordinal int
	prompt  string
	points  int
}

func (b *base) Ordinal() int     { return b.ordinal }
func (b *base) SetOrdinal(n int) { b.ordinal = n }
func (b *base) Prompt() string   { return b.prompt }
func (b *base) Points() int      { return b.points }

// normalizeText trims and case-folds free-text input before comparison.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

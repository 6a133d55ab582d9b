package models

import (
	"math/rand"
	"sort"
	"strings"
)

// SingleChoiceQuestion expects exactly one option to be picked.
type SingleChoiceQuestion struct {
	base
	options []string
	correct string
}

func NewSingleChoice(prompt string, options []string, correct string, points int) *SingleChoiceQuestion {
	return &SingleChoiceQuestion{
		base:    base{prompt: prompt, points: points},
		options: shuffled(options),
		correct: correct,
	}
}

func (q *SingleChoiceQuestion) Render() Rendered {
	return Rendered{
		Ordinal: q.ordinal,
		Prompt:  q.prompt,
		Kind:    KindSingle,
		Points:  q.points,
		Options: q.options,
	}
}

func (q *SingleChoiceQuestion) Check(a Answer) int {
	if a.Choice == "" || a.Choice != q.correct {
		return 0
	}
	return q.points
}

func (q *SingleChoiceQuestion) Clone() Question {
	return NewSingleChoice(q.prompt, q.options, q.correct, q.points)
}

// MultiChoiceQuestion expects a set of options. Credit requires exact set
// equality with the correct answers; any extra or missing choice scores 0.
type MultiChoiceQuestion struct {
	base
	options []string
	correct []string // kept sorted for order-independent comparison
}

func NewMultiChoice(prompt string, options []string, correct []string, points int) *MultiChoiceQuestion {
	return &MultiChoiceQuestion{
		base:    base{prompt: prompt, points: points},
		options: shuffled(options),
		correct: sortedCopy(correct),
	}
}

func (q *MultiChoiceQuestion) Render() Rendered {
	return Rendered{
		Ordinal: q.ordinal,
		Prompt:  q.prompt,
		Kind:    KindMulti,
		Points:  q.points,
		Options: q.options,
	}
}

func (q *MultiChoiceQuestion) Check(a Answer) int {
	if len(a.Choices) == 0 || len(a.Choices) != len(q.correct) {
		return 0
	}
	picked := sortedCopy(a.Choices)
	for i := range picked {
		if picked[i] != q.correct[i] {
			return 0
		}
	}
	return q.points
}

func (q *MultiChoiceQuestion) Clone() Question {
	return NewMultiChoice(q.prompt, q.options, q.correct, q.points)
}

// FreeTextQuestion matches leniently: the normalized response must contain
// the normalized expected answer as a substring.
type FreeTextQuestion struct {
	base
	correct string // normalized at construction
}

func NewFreeText(prompt, correct string, points int) *FreeTextQuestion {
	return &FreeTextQuestion{
		base:    base{prompt: prompt, points: points},
		correct: normalizeText(correct),
	}
}

func (q *FreeTextQuestion) Render() Rendered {
	return Rendered{
		Ordinal: q.ordinal,
		Prompt:  q.prompt,
		Kind:    KindText,
		Points:  q.points,
	}
}

func (q *FreeTextQuestion) Check(a Answer) int {
	got := normalizeText(a.Text)
	if got == "" && q.correct != "" {
		return 0
	}
	if strings.Contains(got, q.correct) {
		return q.points
	}
	return 0
}

func (q *FreeTextQuestion) Clone() Question {
	f := &FreeTextQuestion{base: base{prompt: q.prompt, points: q.points}, correct: q.correct}
	return f
}

// MatchQuestion asks the user to place each key onto the slot carrying its
// paired label. All pairs must be placed correctly; a single mismatch or
// omission scores 0.
type MatchQuestion struct {
	base
	pairs        map[string]string
	shuffledKeys []string
}

func NewMatch(prompt string, pairs map[string]string, points int) *MatchQuestion {
	copied := make(map[string]string, len(pairs))
	keys := make([]string, 0, len(pairs))
	for k, v := range pairs {
		copied[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rand.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return &MatchQuestion{
		base:         base{prompt: prompt, points: points},
		pairs:        copied,
		shuffledKeys: keys,
	}
}

func (q *MatchQuestion) Render() Rendered {
	slots := make([]string, 0, len(q.pairs))
	for _, k := range sortedMapKeys(q.pairs) {
		slots = append(slots, q.pairs[k])
	}
	return Rendered{
		Ordinal: q.ordinal,
		Prompt:  q.prompt,
		Kind:    KindMatch,
		Points:  q.points,
		Keys:    q.shuffledKeys,
		Slots:   slots,
	}
}

func (q *MatchQuestion) Check(a Answer) int {
	if len(a.Placement) != len(q.pairs) {
		return 0
	}
	for key, want := range q.pairs {
		if a.Placement[key] != want {
			return 0
		}
	}
	return q.points
}

func (q *MatchQuestion) Clone() Question {
	return NewMatch(q.prompt, q.pairs, q.points)
}

// shuffled returns a uniformly shuffled copy of src.
func shuffled(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func sortedCopy(src []string) []string {
	out := append([]string(nil), src...)
	sort.Strings(out)
	return out
}

func sortedMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

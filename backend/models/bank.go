package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultTier is drawn from when a session requests a tier the bank does
// not have.
const DefaultTier = "easy"

// QuestionBank groups questions by difficulty tier. It is built once at
// startup and read-only afterwards; sessions clone questions out of it and
// never touch the stored instances.
type QuestionBank struct {
	tiers map[string][]Question
}

func NewBank() *QuestionBank {
	return &QuestionBank{tiers: map[string][]Question{}}
}

func (b *QuestionBank) Add(tier string, q Question) {
	b.tiers[tier] = append(b.tiers[tier], q)
}

func (b *QuestionBank) HasTier(name string) bool {
	_, ok := b.tiers[name]
	return ok
}

// Tier returns the questions of one tier in bank order.
func (b *QuestionBank) Tier(name string) []Question {
	return b.tiers[name]
}

// Tiers returns the tier names with their question counts.
func (b *QuestionBank) Tiers() map[string]int {
	counts := make(map[string]int, len(b.tiers))
	for name, qs := range b.tiers {
		counts[name] = len(qs)
	}
	return counts
}

// questionSpec is the on-disk shape of one question in a bank file.
type questionSpec struct {
	Kind    Kind              `json:"kind"`
	Prompt  string            `json:"prompt"`
	Options []string          `json:"options,omitempty"`
	Answer  string            `json:"answer,omitempty"`
	Answers []string          `json:"answers,omitempty"`
	Pairs   map[string]string `json:"pairs,omitempty"`
	Points  int               `json:"points"`
}

func (s questionSpec) build() (Question, error) {
	points := s.Points
	if points <= 0 {
		points = 1
	}
	switch s.Kind {
	case KindSingle:
		return NewSingleChoice(s.Prompt, s.Options, s.Answer, points), nil
	case KindMulti:
		return NewMultiChoice(s.Prompt, s.Options, s.Answers, points), nil
	case KindText:
		return NewFreeText(s.Prompt, s.Answer, points), nil
	case KindMatch:
		return NewMatch(s.Prompt, s.Pairs, points), nil
	default:
		return nil, fmt.Errorf("question kind %q is not implemented", s.Kind)
	}
}

type bankFile struct {
	Tiers map[string][]questionSpec `json:"tiers"`
}

// LoadBank reads a JSON bank file. An unknown question kind fails the whole
// load; a bad bank is a deployment mistake and must surface at startup, not
// during a session.
func LoadBank(path string) (*QuestionBank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	var file bankFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	if len(file.Tiers) == 0 {
		return nil, fmt.Errorf("bank file %s has no tiers", path)
	}
	bank := NewBank()
	for tier, specs := range file.Tiers {
		for i, spec := range specs {
			q, err := spec.build()
			if err != nil {
				return nil, fmt.Errorf("tier %q question %d: %w", tier, i+1, err)
			}
			bank.Add(tier, q)
		}
	}
	return bank, nil
}

// DefaultBank is the built-in JavaScript trivia bank: three tiers of ten
// questions worth 1, 2 and 3 points. Used when no bank file is configured.
func DefaultBank() *QuestionBank {
	bank := NewBank()

	easy := []Question{
		NewSingleChoice("Which method appends an element to the end of an array?", []string{"push()", "pop()", "shift()"}, "push()", 1),
		NewSingleChoice("What is the index of the first element of an array?", []string{"0", "1", "-1"}, "0", 1),
		NewFreeText("Which keyword declares a variable that cannot be reassigned?", "const", 1),
		NewSingleChoice("How do you get an element by its ID?", []string{"getElementById", "querySelector", "getElementsByClassName"}, "getElementById", 1),
		NewMultiChoice("Which of these are mouse event types?", []string{"click", "mouseover", "keydown"}, []string{"click", "mouseover"}, 1),
		NewFreeText("Property that returns the number of elements: array.____", "length", 1),
		NewSingleChoice("What does confirm() return?", []string{"Boolean (true/false)", "String", "Number"}, "Boolean (true/false)", 1),
		NewSingleChoice("How do you print a message to the console?", []string{"console.log()", "print()", "alert()"}, "console.log()", 1),
		NewFreeText("The symbol that starts a single-line comment in JS?", "//", 1),
		NewSingleChoice("Which method splits a string into an array?", []string{"split()", "join()", "slice()"}, "split()", 1),
	}
	for _, q := range easy {
		bank.Add("easy", q)
	}

	medium := []Question{
		NewSingleChoice("What does the map() method do?", []string{"Creates a new array from the old one", "Filters the array", "Nothing"}, "Creates a new array from the old one", 2),
		NewMatch("Match each event to its description:", map[string]string{
			"click":   "Mouse click",
			"submit":  "Form submission",
			"keydown": "Key press",
		}, 2),
		NewFreeText("Method that removes an event handler: ____Listener", "removeEvent", 2),
		NewFreeText("The event object property pointing at the element where the event occurred:", "target", 2),
		NewMultiChoice("Methods for finding elements in an array:", []string{"find()", "filter()", "map()"}, []string{"find()", "filter()"}, 2),
		NewSingleChoice("Which method stops event bubbling?", []string{"stopPropagation()", "preventDefault()"}, "stopPropagation()", 2),
		NewSingleChoice("How do you replace the HTML content of an element?", []string{"innerHTML", "innerText", "value"}, "innerHTML", 2),
		NewMultiChoice("Which methods mutate the original array?", []string{"splice()", "sort()", "slice()"}, []string{"splice()", "sort()"}, 2),
		NewFreeText("What does DOM stand for?", "document object model", 2),
		NewFreeText("To cancel the default browser action, call event.____()", "preventDefault", 2),
	}
	for _, q := range medium {
		bank.Add("medium", q)
	}

	hard := []Question{
		NewMatch("Match the array iteration methods:", map[string]string{
			"reduce":  "Accumulates a value",
			"forEach": "Just iterates",
			"filter":  "Selects elements",
		}, 3),
		NewSingleChoice("What is event delegation?", []string{"Attaching one handler to the parent", "Attaching handlers to every child", "Removing events"}, "Attaching one handler to the parent", 3),
		NewFreeText("How do you turn an array-like object into an array? Array.____()", "from", 3),
		NewMultiChoice("Which phases exist in event propagation?", []string{"Capture", "Target", "Bubbling", "Shadow"}, []string{"Capture", "Target", "Bubbling"}, 3),
		NewFreeText("The array method that checks whether at least one element satisfies a condition:", "some", 3),
		NewSingleChoice("Which attribute stores custom data on an HTML element?", []string{"data-*", "user-*", "custom-*"}, "data-*", 3),
		NewFreeText("How do you create an element dynamically? document.____('div')", "createElement", 3),
		NewFreeText("To insert an element at the end of another, use the ____() method", "append", 3),
		NewSingleChoice("What is the difference between querySelector and getElementById?", []string{"querySelector is universal (CSS selectors)", "There is no difference"}, "querySelector is universal (CSS selectors)", 3),
		NewMultiChoice("Which classList methods manage element classes?", []string{"add", "remove", "toggle", "set"}, []string{"add", "remove", "toggle"}, 3),
	}
	for _, q := range hard {
		bank.Add("hard", q)
	}

	return bank
}

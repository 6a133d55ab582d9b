package models

import (
	"time"

	"gorm.io/gorm"
)

// User identifies the learner taking a quiz attempt.
type User struct {
	Name  string `json:"name"`
	Group string `json:"group"`
	Tier  string `json:"tier"`
}

// Result is the terminal outcome of one attempt. It is written once to the
// result store and never consumed by the quiz flow itself.
type Result struct {
	User     User      `json:"user"`
	Score    int       `json:"score"`
	MaxScore int       `json:"max"`
	Date     time.Time `json:"date"`
}

// ResultRecord is the persisted shape of the most recent completed attempt.
type ResultRecord struct {
	gorm.Model
	Name     string
	Group    string
	Tier     string
	Score    int
	MaxScore int
	TakenAt  time.Time
}

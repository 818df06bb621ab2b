package models

import (
	"time"
)

// QuestionType discriminates which answer fields apply to a question.
type QuestionType string

const (
	QuestionTypeBoolean  QuestionType = "BOOLEAN"
	QuestionTypeInput    QuestionType = "INPUT"
	QuestionTypeCheckbox QuestionType = "CHECKBOX"
)

// Question flattens the per-type answer fields into nullable columns:
// exactly one of BooleanAnswer, InputAnswer or Options is populated,
// according to Type. Type is immutable once created.
type Question struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	QuizID        uint         `json:"quiz_id" gorm:"not null;index"`
	Text          string       `json:"text" gorm:"not null"`
	Type          QuestionType `json:"type" gorm:"not null"`
	Order         int          `json:"order" gorm:"not null"`
	BooleanAnswer *bool        `json:"boolean_answer"`
	InputAnswer   *string      `json:"input_answer"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	// Relationships
	Options []Option `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

package services

import (
	"time"

	"quizbuilder/models"
	"quizbuilder/repository"
)

// QuizSummaryDTO is the list-view shape: title plus question count, no
// question bodies.
type QuizSummaryDTO struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"questionCount"`
	CreatedAt     string `json:"createdAt"`
}

// QuizDetailDTO is the full aggregate, questions in stored order.
type QuizDetailDTO struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
	Questions []QuestionDTO `json:"questions"`
}

type QuestionDTO struct {
	ID            uint                `json:"id"`
	Text          string              `json:"text"`
	Type          models.QuestionType `json:"type"`
	Order         int                 `json:"order"`
	BooleanAnswer *bool               `json:"booleanAnswer"`
	InputAnswer   *string             `json:"inputAnswer"`
	Options       []OptionDTO         `json:"options"`
}

type OptionDTO struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func mapQuizSummary(summary repository.QuizSummary) QuizSummaryDTO {
	return QuizSummaryDTO{
		ID:            summary.ID,
		Title:         summary.Title,
		QuestionCount: summary.QuestionCount,
		CreatedAt:     formatTimestamp(summary.CreatedAt),
	}
}

func mapQuizDetail(quiz *models.Quiz) *QuizDetailDTO {
	questions := make([]QuestionDTO, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		questions = append(questions, mapQuestion(question))
	}
	return &QuizDetailDTO{
		ID:        quiz.ID,
		Title:     quiz.Title,
		CreatedAt: formatTimestamp(quiz.CreatedAt),
		UpdatedAt: formatTimestamp(quiz.UpdatedAt),
		Questions: questions,
	}
}

func mapQuestion(question models.Question) QuestionDTO {
	// options is always present in responses, empty for non-checkbox types.
	options := make([]OptionDTO, 0, len(question.Options))
	for _, option := range question.Options {
		options = append(options, OptionDTO{
			ID:        option.ID,
			Text:      option.Text,
			IsCorrect: option.IsCorrect,
		})
	}
	return QuestionDTO{
		ID:            question.ID,
		Text:          question.Text,
		Type:          question.Type,
		Order:         question.Order,
		BooleanAnswer: question.BooleanAnswer,
		InputAnswer:   question.InputAnswer,
		Options:       options,
	}
}

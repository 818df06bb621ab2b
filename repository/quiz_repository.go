package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"quizbuilder/logger"
	"quizbuilder/models"
	"quizbuilder/validation"
)

// ErrNotFound signals that no quiz matched the requested id. It is a
// first-class outcome for reads and deletes, not a storage failure.
var ErrNotFound = errors.New("quiz not found")

// QuizSummary is the list projection: no question or option bodies, just
// the aggregate question count.
type QuizSummary struct {
	ID            uint      `gorm:"column:id"`
	Title         string    `gorm:"column:title"`
	QuestionCount int       `gorm:"column:question_count"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

type QuizRepository interface {
	Create(ctx context.Context, input *validation.CreateQuizInput) (*models.Quiz, error)
	ListSummaries(ctx context.Context) ([]QuizSummary, error)
	GetByID(ctx context.Context, id uint) (*models.Quiz, error)
	Delete(ctx context.Context, id uint) error
}

type quizRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepository(db *gorm.DB, baseLog *logger.Logger) QuizRepository {
	return &quizRepository{db: db, log: baseLog.With("repo", "QuizRepository")}
}

// Create inserts the quiz with its questions and options in one
// transaction; a failed sub-insert leaves no partial aggregate behind.
// Questions keep payload order, with `order` defaulting to the zero-based
// position when the payload omits it. Only the column matching the
// question type is populated; the other answer slots stay null/empty.
func (r *quizRepository) Create(ctx context.Context, input *validation.CreateQuizInput) (*models.Quiz, error) {
	quiz := models.Quiz{Title: input.Title}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}

		for index, questionInput := range input.Questions {
			order := index
			if questionInput.Order != nil {
				order = *questionInput.Order
			}

			question := models.Question{
				QuizID: quiz.ID,
				Text:   questionInput.Text,
				Type:   questionInput.Type,
				Order:  order,
			}

			switch questionInput.Type {
			case models.QuestionTypeBoolean:
				question.BooleanAnswer = questionInput.BooleanAnswer
			case models.QuestionTypeInput:
				question.InputAnswer = questionInput.InputAnswer
			}

			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			if questionInput.Type != models.QuestionTypeCheckbox {
				continue
			}

			for _, optionInput := range questionInput.Options {
				option := models.Option{
					QuestionID: question.ID,
					Text:       optionInput.Text,
					IsCorrect:  optionInput.IsCorrect != nil && *optionInput.IsCorrect,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info("quiz created", "quiz_id", quiz.ID, "questions", len(input.Questions))

	// Reload so questions come back ordered and options attached.
	return r.GetByID(ctx, quiz.ID)
}

// ListSummaries returns quizzes newest first with their question counts.
func (r *quizRepository) ListSummaries(ctx context.Context) ([]QuizSummary, error) {
	summaries := make([]QuizSummary, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Quiz{}).
		Select("quizzes.id, quizzes.title, quizzes.created_at, count(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.quiz_id = quizzes.id").
		Group("quizzes.id").
		Order("quizzes.created_at DESC, quizzes.id DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *quizRepository) GetByID(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(`questions."order" ASC, questions.id ASC`)
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id ASC")
		}).
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Delete removes the quiz row; the foreign keys cascade to questions and
// options. Zero rows affected means the id never existed.
func (r *quizRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	r.log.Info("quiz deleted", "quiz_id", id)
	return nil
}

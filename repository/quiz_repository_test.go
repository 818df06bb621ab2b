package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quizbuilder/logger"
	"quizbuilder/models"
	"quizbuilder/validation"
)

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A single connection keeps the in-memory database alive and makes
	// the foreign_keys pragma stick.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(&models.Quiz{}, &models.Question{}, &models.Option{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRepo(t *testing.T) (QuizRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuizRepository(db, logger.NewNop()), db
}

func mixedQuizInput() *validation.CreateQuizInput {
	return &validation.CreateQuizInput{
		Title: "Geography",
		Questions: []validation.CreateQuestionInput{
			{
				Text:          "Is Paris the capital of France?",
				Type:          models.QuestionTypeBoolean,
				BooleanAnswer: boolPtr(true),
			},
			{
				Text:        "What is the capital of Italy?",
				Type:        models.QuestionTypeInput,
				InputAnswer: strPtr("Rome"),
			},
			{
				Text: "Which of these are in Europe?",
				Type: models.QuestionTypeCheckbox,
				Options: []validation.CreateOptionInput{
					{Text: "France", IsCorrect: boolPtr(true)},
					{Text: "Brazil", IsCorrect: boolPtr(false)},
					{Text: "Spain", IsCorrect: boolPtr(true)},
				},
			},
		},
	}
}

func TestCreatePersistsAggregate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	quiz, err := repo.Create(ctx, mixedQuizInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if quiz.ID == 0 {
		t.Error("expected quiz id to be assigned")
	}
	if quiz.Title != "Geography" {
		t.Errorf("title = %q", quiz.Title)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}

	boolean := quiz.Questions[0]
	if boolean.Type != models.QuestionTypeBoolean {
		t.Errorf("question 0 type = %q", boolean.Type)
	}
	if boolean.BooleanAnswer == nil || !*boolean.BooleanAnswer {
		t.Error("expected booleanAnswer true")
	}
	if boolean.InputAnswer != nil {
		t.Error("boolean question should have nil inputAnswer")
	}
	if len(boolean.Options) != 0 {
		t.Error("boolean question should have no options")
	}

	input := quiz.Questions[1]
	if input.InputAnswer == nil || *input.InputAnswer != "Rome" {
		t.Errorf("inputAnswer = %v", input.InputAnswer)
	}
	if input.BooleanAnswer != nil {
		t.Error("input question should have nil booleanAnswer")
	}

	checkbox := quiz.Questions[2]
	if len(checkbox.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(checkbox.Options))
	}
	if checkbox.Options[0].Text != "France" || !checkbox.Options[0].IsCorrect {
		t.Errorf("option 0 = %+v", checkbox.Options[0])
	}
	if checkbox.BooleanAnswer != nil || checkbox.InputAnswer != nil {
		t.Error("checkbox question should have nil answer columns")
	}
}

func TestCreateDefaultsOrderToPosition(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	input := &validation.CreateQuizInput{
		Title: "Ordering",
		Questions: []validation.CreateQuestionInput{
			{Text: "First", Type: models.QuestionTypeBoolean, BooleanAnswer: boolPtr(true)},
			{Text: "Second", Type: models.QuestionTypeBoolean, BooleanAnswer: boolPtr(false)},
		},
	}

	quiz, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if quiz.Questions[0].Order != 0 || quiz.Questions[1].Order != 1 {
		t.Errorf("orders = %d, %d; want 0, 1", quiz.Questions[0].Order, quiz.Questions[1].Order)
	}
}

func TestCreatePreservesExplicitOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	input := &validation.CreateQuizInput{
		Title: "Ordering",
		Questions: []validation.CreateQuestionInput{
			{Text: "Shown last", Type: models.QuestionTypeBoolean, Order: intPtr(5), BooleanAnswer: boolPtr(true)},
			{Text: "Shown first", Type: models.QuestionTypeBoolean, Order: intPtr(0), BooleanAnswer: boolPtr(false)},
		},
	}

	quiz, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Reads come back ordered by `order` ascending.
	if quiz.Questions[0].Text != "Shown first" || quiz.Questions[0].Order != 0 {
		t.Errorf("question 0 = %q (order %d)", quiz.Questions[0].Text, quiz.Questions[0].Order)
	}
	if quiz.Questions[1].Text != "Shown last" || quiz.Questions[1].Order != 5 {
		t.Errorf("question 1 = %q (order %d)", quiz.Questions[1].Text, quiz.Questions[1].Order)
	}
}

func TestListSummaries(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, mixedQuizInput())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := repo.Create(ctx, &validation.CreateQuizInput{
		Title: "Short",
		Questions: []validation.CreateQuestionInput{
			{Text: "Only one", Type: models.QuestionTypeBoolean, BooleanAnswer: boolPtr(true)},
		},
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	// Push the first quiz clearly into the past so created_at ordering is
	// not at the mercy of clock resolution.
	if err := db.Model(&models.Quiz{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	summaries, err := repo.ListSummaries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	if summaries[0].ID != second.ID {
		t.Errorf("expected most recent quiz first, got id %d", summaries[0].ID)
	}
	if summaries[0].QuestionCount != 1 {
		t.Errorf("second quiz question count = %d", summaries[0].QuestionCount)
	}
	if summaries[1].QuestionCount != 3 {
		t.Errorf("first quiz question count = %d", summaries[1].QuestionCount)
	}
}

func TestListSummariesEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	summaries, err := repo.ListSummaries(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if summaries == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(summaries) != 0 {
		t.Fatalf("expected no summaries, got %d", len(summaries))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	quiz, err := repo.Create(ctx, mixedQuizInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, quiz.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, quiz.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	var questionCount, optionCount int64
	if err := db.Model(&models.Question{}).Count(&questionCount).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if err := db.Model(&models.Option{}).Count(&optionCount).Error; err != nil {
		t.Fatalf("count options: %v", err)
	}
	if questionCount != 0 || optionCount != 0 {
		t.Errorf("expected cascade to remove children, have %d questions and %d options", questionCount, optionCount)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

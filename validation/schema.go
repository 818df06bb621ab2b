package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"quizbuilder/apperr"
	"quizbuilder/models"
)

// CreateQuizInput is the untrusted quiz-creation payload. Pointer fields
// keep "absent" distinct from a zero value: an explicit `"order": 0` or
// `"isCorrect": false` must not look like an omitted field.
type CreateQuizInput struct {
	Title     string                `json:"title" validate:"required,notblank"`
	Questions []CreateQuestionInput `json:"questions" validate:"required,min=1,dive"`
}

type CreateQuestionInput struct {
	Text          string              `json:"text" validate:"required,notblank"`
	Type          models.QuestionType `json:"type" validate:"required,oneof=BOOLEAN INPUT CHECKBOX"`
	Order         *int                `json:"order" validate:"omitempty,gte=0"`
	BooleanAnswer *bool               `json:"booleanAnswer"`
	InputAnswer   *string             `json:"inputAnswer"`
	Options       []CreateOptionInput `json:"options" validate:"dive"`
}

type CreateOptionInput struct {
	Text      string `json:"text" validate:"required,notblank"`
	IsCorrect *bool  `json:"isCorrect" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Error paths use the wire names, not Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.RegisterStructValidation(questionStructLevel, CreateQuestionInput{})

	return v
}

// questionStructLevel enforces the per-variant conditional rules that plain
// field tags cannot express: which answer field the discriminator requires,
// and the checkbox option-set invariants. Fields belonging to the other
// variants are ignored here and never persisted.
func questionStructLevel(sl validator.StructLevel) {
	question := sl.Current().Interface().(CreateQuestionInput)

	switch question.Type {
	case models.QuestionTypeBoolean:
		if question.BooleanAnswer == nil {
			sl.ReportError(question.BooleanAnswer, "booleanAnswer", "BooleanAnswer", "boolean_answer_required", "")
		}
	case models.QuestionTypeInput:
		if question.InputAnswer == nil || strings.TrimSpace(*question.InputAnswer) == "" {
			sl.ReportError(question.InputAnswer, "inputAnswer", "InputAnswer", "input_answer_required", "")
		}
	case models.QuestionTypeCheckbox:
		if len(question.Options) < 2 {
			sl.ReportError(question.Options, "options", "Options", "min_options", "")
			return
		}
		hasCorrect := false
		for _, option := range question.Options {
			if option.IsCorrect != nil && *option.IsCorrect {
				hasCorrect = true
				break
			}
		}
		if !hasCorrect {
			sl.ReportError(question.Options, "options", "Options", "one_correct_option", "")
		}
	}
}

// Normalize trims all text fields in place. It runs before validation so
// emptiness checks see trimmed values, and the trimmed values are what get
// persisted.
func (in *CreateQuizInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	for i := range in.Questions {
		question := &in.Questions[i]
		question.Text = strings.TrimSpace(question.Text)
		if question.InputAnswer != nil {
			trimmed := strings.TrimSpace(*question.InputAnswer)
			question.InputAnswer = &trimmed
		}
		for j := range question.Options {
			question.Options[j].Text = strings.TrimSpace(question.Options[j].Text)
		}
	}
}

// Validate normalizes the payload and returns every violated rule as a
// field-path/message pair. A nil result means the payload is valid. The
// check is pure: same input, same result, no I/O.
func (in *CreateQuizInput) Validate() []apperr.FieldError {
	in.Normalize()

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return []apperr.FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]apperr.FieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, apperr.FieldError{
			Field:   fieldPath(violation),
			Message: messageFor(violation),
		})
	}
	return fields
}

// fieldPath converts the validator namespace ("CreateQuizInput.questions[1].text")
// into the JSON path callers see ("questions[1].text").
func fieldPath(violation validator.FieldError) string {
	namespace := violation.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func messageFor(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required", "notblank":
		switch violation.Field() {
		case "title":
			return "Quiz title is required"
		case "text":
			if strings.Contains(violation.Namespace(), "options") {
				return "Option text is required"
			}
			return "Question text is required"
		case "questions":
			return "Add at least one question"
		case "isCorrect":
			return "isCorrect is required"
		case "type":
			return "Question type is required"
		}
		return "This field is required"
	case "min":
		return "Add at least one question"
	case "oneof":
		return "Question type must be one of BOOLEAN, INPUT or CHECKBOX"
	case "gte":
		return "Question order must be a non-negative integer"
	case "boolean_answer_required":
		return "Boolean questions require a booleanAnswer"
	case "input_answer_required":
		return "Correct answer is required"
	case "min_options":
		return "At least two answer options are required"
	case "one_correct_option":
		return "Checkbox questions must include at least one correct option"
	}
	return "Invalid value"
}

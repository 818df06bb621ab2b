package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"quizbuilder/apperr"
	"quizbuilder/cache"
	"quizbuilder/logger"
	"quizbuilder/repository"
	"quizbuilder/validation"
)

// QuizService orchestrates validation, persistence and response mapping.
// It holds no mutable state between calls; side effects live in the
// repository and the summary cache.
type QuizService struct {
	repo  repository.QuizRepository
	cache *cache.SummaryCache
	log   *logger.Logger
}

func NewQuizService(repo repository.QuizRepository, summaryCache *cache.SummaryCache, baseLog *logger.Logger) *QuizService {
	return &QuizService{
		repo:  repo,
		cache: summaryCache,
		log:   baseLog.With("service", "QuizService"),
	}
}

func (s *QuizService) Create(ctx context.Context, input *validation.CreateQuizInput) (*QuizDetailDTO, error) {
	if fields := input.Validate(); len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	quiz, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	s.cache.Invalidate(ctx)
	return mapQuizDetail(quiz), nil
}

func (s *QuizService) List(ctx context.Context) ([]QuizSummaryDTO, error) {
	if payload, ok := s.cache.Get(ctx); ok {
		var summaries []QuizSummaryDTO
		if err := json.Unmarshal(payload, &summaries); err == nil {
			return summaries, nil
		}
		s.log.Warn("discarding unreadable summary cache entry")
	}

	rows, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	summaries := make([]QuizSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, mapQuizSummary(row))
	}

	if payload, err := json.Marshal(summaries); err == nil {
		s.cache.Set(ctx, payload)
	}
	return summaries, nil
}

func (s *QuizService) GetByID(ctx context.Context, idParam string) (*QuizDetailDTO, error) {
	id, aerr := parseQuizID(idParam)
	if aerr != nil {
		return nil, aerr
	}

	quiz, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("Quiz not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return mapQuizDetail(quiz), nil
}

func (s *QuizService) DeleteByID(ctx context.Context, idParam string) error {
	id, aerr := parseQuizID(idParam)
	if aerr != nil {
		return aerr
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("Quiz not found")
	}
	if err != nil {
		return apperr.Storage(err)
	}

	s.cache.Invalidate(ctx)
	return nil
}

// parseQuizID rejects malformed ids before any storage access.
func parseQuizID(raw string) (uint, *apperr.Error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.MalformedID("Invalid quiz identifier")
	}
	return uint(id), nil
}

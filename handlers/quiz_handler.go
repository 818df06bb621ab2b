package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizbuilder/logger"
	"quizbuilder/services"
	"quizbuilder/validation"
)

type QuizHandler struct {
	quizService *services.QuizService
	log         *logger.Logger
}

func NewQuizHandler(quizService *services.QuizService, baseLog *logger.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		log:         baseLog.With("handler", "QuizHandler"),
	}
}

// POST /api/quizzes
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var input validation.CreateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), &input)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	summaries, err := h.quizService.List(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GET /api/quizzes/:id
func (h *QuizHandler) GetQuizByID(c *gin.Context) {
	quiz, err := h.quizService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DELETE /api/quizzes/:id
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.quizService.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

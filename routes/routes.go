package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizbuilder/handlers"
)

func SetupRoutes(router *gin.Engine, quizHandler *handlers.QuizHandler) {
	// API routes
	api := router.Group("/api")
	{
		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("/:id", quizHandler.GetQuizByID)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

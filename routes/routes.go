package routes

import (
	"github.com/maverick001/EasyVocab/controllers"
	"github.com/maverick001/EasyVocab/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Public auth route
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}

	// Protected API
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/categories", controllers.GetCategories)
		api.GET("/category/:category/count", controllers.GetCategoryCount)

		// Browse and search. Read-only per-word endpoints live under
		// /word/:id because the GET tree already binds :category at this
		// position.
		api.GET("/words/search", controllers.SearchWords)
		api.GET("/words/:category", controllers.GetWordByCategory)
		api.GET("/word/:id", controllers.GetWordDetail)
		api.GET("/word/:id/history", controllers.GetWordHistory)
		api.GET("/word/:id/position", controllers.GetWordPosition)

		api.POST("/words", controllers.CreateWord)
		api.PUT("/words/:id", controllers.UpdateWord)
		api.PUT("/words/:id/category", controllers.MoveWordCategory)
		api.DELETE("/words/:id", controllers.DeleteWord)
		api.POST("/words/:id/review", controllers.ReviewWord)
		api.POST("/words/:id/image", controllers.UploadWordImage)
		api.GET("/images", controllers.ListImages)

		api.GET("/debt", controllers.GetWordDebt)
		api.GET("/daily-count", controllers.GetDailyCount)

		api.POST("/quiz/generate", controllers.GenerateQuiz)
		api.GET("/quiz/next-word", controllers.GetNextQuizWord)
		api.POST("/quiz/result", controllers.SubmitQuizResult)
		api.GET("/quiz/stats", controllers.GetQuizStats)

		api.POST("/generate-sample", controllers.GenerateSample)
		api.POST("/generate-translation", controllers.GenerateTranslation)

		api.POST("/upload", controllers.UploadVocabulary)
	}

	// Outside the API group: the upgrade request cannot carry the
	// Authorization header, so the handler validates a token query param
	// itself when the site password is on.
	r.GET("/ws/counter", controllers.CounterWS)

	return r
}

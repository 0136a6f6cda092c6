package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yuzuhara/survey-admin-api/internal/auth"
	"github.com/yuzuhara/survey-admin-api/internal/config"
	"github.com/yuzuhara/survey-admin-api/internal/database"
	"github.com/yuzuhara/survey-admin-api/internal/handlers"
	"github.com/yuzuhara/survey-admin-api/internal/middleware"
	"github.com/yuzuhara/survey-admin-api/internal/repository"
	"github.com/yuzuhara/survey-admin-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Structured logger
	var logger *zap.Logger
	var err error
	if cfg.GinMode == gin.ReleaseMode {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	questionTypeRepo := repository.NewQuestionTypeRepository(db)

	// Services
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userService, userRepo, cfg.JWTSecret)
	teamService := services.NewTeamService(teamRepo, userRepo)
	templateService := services.NewTemplateService(templateRepo, questionRepo)
	questionService := services.NewQuestionService(questionRepo)
	questionTypeService := services.NewQuestionTypeService(questionTypeRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	questionTypeHandler := handlers.NewQuestionTypeHandler(questionTypeService)

	// Role → permission table, built once and read-only afterwards
	registry := auth.NewRegistry()

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		protected := v1.Group("")
		protected.Use(middleware.RequireAuth(cfg.JWTSecret))

		perm := func(p auth.Permission) gin.HandlerFunc {
			return middleware.RequirePermission(registry, p)
		}

		users := protected.Group("/users")
		{
			users.POST("", perm(auth.PermManageUsers), userHandler.CreateUser)
			users.GET("", perm(auth.PermGetUsers), userHandler.ListUsers)
			users.GET("/:id", perm(auth.PermGetUsers), userHandler.GetUser)
			users.PATCH("/:id", perm(auth.PermManageUsers), userHandler.UpdateUser)
			users.DELETE("/:id", perm(auth.PermManageUsers), userHandler.DeleteUser)
		}

		teams := protected.Group("/teams")
		{
			teams.POST("", perm(auth.PermManageTeams), teamHandler.CreateTeam)
			teams.GET("", perm(auth.PermGetTeams), teamHandler.ListTeams)
			teams.GET("/:id", perm(auth.PermGetTeams), teamHandler.GetTeam)
			teams.PATCH("/:id", perm(auth.PermManageTeams), teamHandler.UpdateTeam)
			teams.DELETE("/:id", perm(auth.PermManageTeams), teamHandler.DeleteTeam)
			teams.POST("/:id/users", perm(auth.PermManageTeams), teamHandler.AddUser)
			teams.DELETE("/:id/users", perm(auth.PermManageTeams), teamHandler.RemoveUser)
		}

		templates := protected.Group("/templates")
		{
			templates.POST("", perm(auth.PermManageForms), templateHandler.CreateTemplate)
			templates.GET("", perm(auth.PermGetForms), templateHandler.ListTemplates)
			templates.GET("/:id", perm(auth.PermGetForms), templateHandler.GetTemplate)
			templates.PATCH("/:id", perm(auth.PermManageForms), templateHandler.UpdateTemplate)
			templates.DELETE("/:id", perm(auth.PermManageForms), templateHandler.DeleteTemplate)
			templates.POST("/:id/questions", perm(auth.PermManageForms), templateHandler.AddQuestion)
			templates.DELETE("/:id/questions", perm(auth.PermManageForms), templateHandler.RemoveQuestion)
		}

		questions := protected.Group("/questions")
		{
			questions.POST("", perm(auth.PermManageQuestions), questionHandler.CreateQuestion)
			questions.GET("", perm(auth.PermGetQuestions), questionHandler.ListQuestions)
			questions.GET("/:id", perm(auth.PermGetQuestions), questionHandler.GetQuestion)
			questions.PATCH("/:id", perm(auth.PermManageQuestions), questionHandler.UpdateQuestion)
			questions.DELETE("/:id", perm(auth.PermManageQuestions), questionHandler.DeleteQuestion)
		}

		questionTypes := protected.Group("/questionTypes")
		{
			questionTypes.POST("", perm(auth.PermManageQuestions), questionTypeHandler.CreateQuestionType)
			questionTypes.GET("", perm(auth.PermGetQuestions), questionTypeHandler.ListQuestionTypes)
			questionTypes.GET("/:id", perm(auth.PermGetQuestions), questionTypeHandler.GetQuestionType)
			questionTypes.PATCH("/:id", perm(auth.PermManageQuestions), questionTypeHandler.UpdateQuestionType)
			questionTypes.DELETE("/:id", perm(auth.PermManageQuestions), questionTypeHandler.DeleteQuestionType)
		}
	}

	logger.Info("Server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

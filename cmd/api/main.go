package main

import (
	"fmt"
	"net/http"
	"os"

	"dhanam/internal/config"
	"dhanam/internal/database"
	"dhanam/internal/handlers"
	"dhanam/internal/logger"
	"dhanam/internal/middleware"
	"dhanam/internal/services"
	"dhanam/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "dhanam/internal/docs" // Import swagger docs
)

// @title           Dhanam API
// @version         1.0
// @description     Dhanam is a personal finance backend for tracking expenses, investments, insurance, budgets and emergency savings.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)
	investmentService := services.NewInvestmentService(db)
	insuranceService := services.NewInsuranceService(db)
	fundService := services.NewEmergencyFundService(db)
	budgetService := services.NewBudgetService(db)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	insuranceHandler := handlers.NewInsuranceHandler(insuranceService)
	fundHandler := handlers.NewEmergencyFundHandler(fundService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Investment routes
	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetInvestments)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	// Insurance routes
	insurance := protected.Group("/insurance")
	insurance.POST("", insuranceHandler.CreateInsurance)
	insurance.GET("", insuranceHandler.GetInsurances)
	insurance.PUT("/:id", insuranceHandler.UpdateInsurance)
	insurance.DELETE("/:id", insuranceHandler.DeleteInsurance)

	// Emergency fund routes
	fund := protected.Group("/emergency-fund")
	fund.GET("", fundHandler.GetEmergencyFund)
	fund.POST("", fundHandler.UpsertEmergencyFund)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetIncome)
	budgets.POST("", budgetHandler.SetIncome)
	budgets.POST("/entries", budgetHandler.CreateBudgetEntry)
	budgets.GET("/entries", budgetHandler.GetBudgetEntries)
	budgets.DELETE("/entries/:id", budgetHandler.DeleteBudgetEntry)
	budgets.GET("/status", budgetHandler.GetBudgetStatus)

	// Dashboard route
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	log.Infof("Starting Dhanam backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodshorts-api/config"
	"foodshorts-api/handlers"
	"foodshorts-api/middleware"
	"foodshorts-api/repositories"
	"foodshorts-api/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	// Initialize database
	db := config.InitDB()

	if cfg.SeedOnStart {
		if err := config.Seed(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo)
	interactionService := services.NewInteractionService(interactionRepo, restaurantRepo, reviewRepo, userRepo)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, interactionService)
	userHandler := handlers.NewUserHandler(userService)

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, cfg.MobileAppURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group(cfg.APIPrefix)
	api.Use(middleware.RateLimitMiddleware(cfg.ThrottleTTL, cfg.ThrottleLimit))
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// Restaurant routes
		restaurants := api.Group("/restaurants")
		{
			// The feed requires a bearer token; search and detail are public
			restaurants.GET("/feed", middleware.AuthMiddleware(), restaurantHandler.GetFeed)
			restaurants.GET("/search", restaurantHandler.Search)
			restaurants.GET("/:id", restaurantHandler.GetRestaurant)

			protected := restaurants.Group("/:id")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("/like", restaurantHandler.ToggleLike)
				protected.POST("/bookmark", restaurantHandler.ToggleBookmark)
				protected.POST("/reviews", restaurantHandler.CreateReview)
			}
		}

		// User routes
		users := api.Group("/users")
		users.Use(middleware.AuthMiddleware())
		{
			users.GET("/profile", userHandler.GetProfile)
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

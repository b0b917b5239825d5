package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodshorts-api/middleware"
	"foodshorts-api/models"
	"foodshorts-api/repositories"
	"foodshorts-api/services"
)

var testDBSeq int

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDBSeq++
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Content{},
		&models.Menu{},
		&models.Review{},
		&models.UserInteraction{},
	))

	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)

	authService := services.NewAuthService(userRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo)
	interactionService := services.NewInteractionService(interactionRepo, restaurantRepo, reviewRepo, userRepo)
	userService := services.NewUserService(userRepo)

	authHandler := NewAuthHandler(authService)
	restaurantHandler := NewRestaurantHandler(restaurantService, interactionService)
	userHandler := NewUserHandler(userService)

	router := gin.New()
	api := router.Group("api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		restaurants := api.Group("/restaurants")
		{
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

		users := api.Group("/users")
		users.Use(middleware.AuthMiddleware())
		{
			users.GET("/profile", userHandler.GetProfile)
		}
	}

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Email:       "user1@example.com",
		Username:    "foodlover1",
		Password:    "password123",
		DisplayName: "음식 좋아해",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "user1@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	return data["access_token"].(string)
}

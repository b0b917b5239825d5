package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodshorts-api/helper"
	"foodshorts-api/models"
	"foodshorts-api/services"
)

type RestaurantHandler struct {
	restaurantService  services.RestaurantService
	interactionService services.InteractionService
	Helper             *helper.HTTPHelper
}

func NewRestaurantHandler(restaurantService services.RestaurantService, interactionService services.InteractionService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService:  restaurantService,
		interactionService: interactionService,
	}
}

func (h *RestaurantHandler) GetFeed(c *gin.Context) {
	var params models.FeedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	feed, err := h.restaurantService.GetFeed(params)
	if err != nil {
		h.Helper.SendServerError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Feed loaded", feed)
}

func (h *RestaurantHandler) Search(c *gin.Context) {
	result, err := h.restaurantService.SearchRestaurants(c.Query("q"))
	if err != nil {
		h.Helper.SendServerError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Search complete", result)
}

func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid restaurant ID", h.Helper.EmptyJsonMap())
		return
	}

	restaurant, err := h.restaurantService.GetRestaurant(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Restaurant not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendServerError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Restaurant loaded", restaurant)
}

func (h *RestaurantHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, models.InteractionLike)
}

func (h *RestaurantHandler) ToggleBookmark(c *gin.Context) {
	h.toggle(c, models.InteractionBookmark)
}

func (h *RestaurantHandler) toggle(c *gin.Context, kind models.InteractionType) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid restaurant ID", h.Helper.EmptyJsonMap())
		return
	}

	result, err := h.interactionService.Toggle(userID.(uint), uint(id), kind)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Restaurant not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendServerError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Interaction toggled", result)
}

func (h *RestaurantHandler) CreateReview(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid restaurant ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	review, err := h.interactionService.CreateReview(userID.(uint), uint(id), req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Restaurant not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendServerError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Review created", review)
}

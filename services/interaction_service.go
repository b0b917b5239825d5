package services

import (
	"errors"

	"gorm.io/gorm"

	"foodshorts-api/models"
	"foodshorts-api/repositories"
)

type InteractionService interface {
	Toggle(userID, restaurantID uint, kind models.InteractionType) (*models.InteractionResponse, error)
	CreateReview(userID, restaurantID uint, req models.CreateReviewRequest) (*models.Review, error)
}

type interactionService struct {
	interactionRepo repositories.InteractionRepository
	restaurantRepo  repositories.RestaurantRepository
	reviewRepo      repositories.ReviewRepository
	userRepo        repositories.UserRepository
}

func NewInteractionService(
	interactionRepo repositories.InteractionRepository,
	restaurantRepo repositories.RestaurantRepository,
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
) InteractionService {
	return &interactionService{
		interactionRepo: interactionRepo,
		restaurantRepo:  restaurantRepo,
		reviewRepo:      reviewRepo,
		userRepo:        userRepo,
	}
}

// Toggle flips a like or bookmark on a restaurant. Toggling twice
// restores the original state, including the restaurant and user
// counters.
func (s *interactionService) Toggle(userID, restaurantID uint, kind models.InteractionType) (*models.InteractionResponse, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	likes, bookmarks := 0, 0
	if kind == models.InteractionLike {
		likes = 1
	} else {
		bookmarks = 1
	}

	existing, err := s.interactionRepo.Get(userID, restaurantID, kind)
	switch {
	case err == nil:
		if err := s.interactionRepo.Delete(existing.ID); err != nil {
			return nil, err
		}
		likes, bookmarks = -likes, -bookmarks
	case errors.Is(err, gorm.ErrRecordNotFound):
		interaction := &models.UserInteraction{
			UserID:          userID,
			RestaurantID:    restaurantID,
			InteractionType: kind,
		}
		if err := s.interactionRepo.Create(interaction); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.restaurantRepo.AddCounters(restaurantID, likes, bookmarks); err != nil {
		return nil, err
	}
	if err := s.userRepo.AddCounters(userID, likes, bookmarks); err != nil {
		return nil, err
	}

	return &models.InteractionResponse{
		RestaurantID:    restaurantID,
		InteractionType: kind,
		Active:          likes > 0 || bookmarks > 0,
	}, nil
}

func (s *interactionService) CreateReview(userID, restaurantID uint, req models.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := &models.Review{
		RestaurantID:  restaurantID,
		UserID:        userID,
		Rating:        req.Rating,
		ReviewContent: req.ReviewContent,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.ApplyReview(restaurantID, req.Rating); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetByID(review.ID)
}

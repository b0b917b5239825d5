package services

import (
	"errors"

	"gorm.io/gorm"

	"foodshorts-api/models"
	"foodshorts-api/repositories"
)

type UserService interface {
	GetProfile(userID uint) (*models.ProfileResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(userID uint) (*models.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &models.ProfileResponse{
		ID:                  user.ID,
		Email:               user.Email,
		Username:            user.Username,
		DisplayName:         user.DisplayName,
		ProfileImage:        user.ProfileImage,
		Bio:                 user.Bio,
		TotalViews:          user.TotalViews,
		TotalLikes:          user.TotalLikes,
		TotalBookmarks:      user.TotalBookmarks,
		PreferredCategories: user.PreferredCategories,
		CreatedAt:           user.CreatedAt,
	}, nil
}

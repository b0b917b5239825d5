package repositories

import (
	"foodshorts-api/models"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	Get(userID, restaurantID uint, kind models.InteractionType) (*models.UserInteraction, error)
	Create(interaction *models.UserInteraction) error
	Delete(id uint) error
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Get(userID, restaurantID uint, kind models.InteractionType) (*models.UserInteraction, error) {
	var interaction models.UserInteraction
	err := r.db.Where("user_id = ? AND restaurant_id = ? AND interaction_type = ?",
		userID, restaurantID, kind).First(&interaction).Error
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) Create(interaction *models.UserInteraction) error {
	return r.db.Create(interaction).Error
}

func (r *interactionRepository) Delete(id uint) error {
	return r.db.Delete(&models.UserInteraction{}, id).Error
}

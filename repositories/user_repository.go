package repositories

import (
	"foodshorts-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailOrUsername(email, username string) (*models.User, error)
	AddCounters(id uint, likes, bookmarks int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByEmailOrUsername(email, username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ? OR username = ?", email, username).First(&user).Error
	return &user, err
}

// AddCounters adjusts the user's aggregate interaction counters; deltas
// may be negative when an interaction is toggled off.
func (r *userRepository) AddCounters(id uint, likes, bookmarks int) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_likes":     gorm.Expr("total_likes + ?", likes),
			"total_bookmarks": gorm.Expr("total_bookmarks + ?", bookmarks),
		}).Error
}

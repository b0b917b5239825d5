package repositories

import (
	"foodshorts-api/models"

	"gorm.io/gorm"
)

type RestaurantRepository interface {
	GetFeedPage(params models.FeedParams, box *models.BoundingBox) ([]models.Restaurant, error)
	CountFeed(params models.FeedParams, box *models.BoundingBox) (int64, error)
	Search(query string, limit int) ([]models.Restaurant, error)
	GetByID(id uint) (*models.Restaurant, error)
	AddCounters(id uint, likes, bookmarks int) error
	ApplyReview(id uint, rating int) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// feedFilter narrows to active restaurants, optionally by exact category
// and by bounding box. Shared by the page and count queries so both see
// the same set.
func (r *restaurantRepository) feedFilter(params models.FeedParams, box *models.BoundingBox) *gorm.DB {
	query := r.db.Model(&models.Restaurant{}).Where("status = ?", models.StatusActive)

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if box != nil {
		query = query.Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
			Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng)
	}

	return query
}

func (r *restaurantRepository) GetFeedPage(params models.FeedParams, box *models.BoundingBox) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	offset := (params.Page - 1) * params.Limit
	err := r.feedFilter(params, box).
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Preload("Menus", "is_popular = ?", true).
		Order("popularity_score desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&restaurants).Error

	return restaurants, err
}

func (r *restaurantRepository) CountFeed(params models.FeedParams, box *models.BoundingBox) (int64, error) {
	var total int64
	err := r.feedFilter(params, box).Count(&total).Error
	return total, err
}

func (r *restaurantRepository) Search(query string, limit int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	pattern := "%" + query + "%"
	err := r.db.Model(&models.Restaurant{}).
		Where("status = ?", models.StatusActive).
		Where("name LIKE ? OR category LIKE ? OR address_city LIKE ? OR address_district LIKE ?",
			pattern, pattern, pattern, pattern).
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Order("popularity_score desc").
		Limit(limit).
		Find(&restaurants).Error

	return restaurants, err
}

func (r *restaurantRepository) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Where("status = ?", models.StatusActive).
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Preload("Menus", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc").Limit(10).Preload("User")
		}).
		First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// AddCounters adjusts like/bookmark counters; deltas may be negative.
func (r *restaurantRepository) AddCounters(id uint, likes, bookmarks int) error {
	return r.db.Model(&models.Restaurant{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"like_count":     gorm.Expr("like_count + ?", likes),
			"bookmark_count": gorm.Expr("bookmark_count + ?", bookmarks),
		}).Error
}

// ApplyReview folds a new rating into the running average and bumps the
// review counters.
func (r *restaurantRepository) ApplyReview(id uint, rating int) error {
	return r.db.Model(&models.Restaurant{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating_avg":   gorm.Expr("(rating_avg * rating_count + ?) / (rating_count + 1)", rating),
			"rating_count": gorm.Expr("rating_count + 1"),
			"review_count": gorm.Expr("review_count + 1"),
		}).Error
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Menu struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	RestaurantID  uint           `json:"restaurant_id" gorm:"not null;index"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description"`
	Price         int            `json:"price" gorm:"not null"`
	IsPopular     bool           `json:"is_popular" gorm:"default:false"`
	IsRecommended bool           `json:"is_recommended" gorm:"default:false"`
	DisplayOrder  int            `json:"display_order" gorm:"default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

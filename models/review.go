package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	RestaurantID  uint           `json:"restaurant_id" gorm:"not null;index"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	User          User           `json:"user" gorm:"foreignKey:UserID"`
	Rating        int            `json:"rating" gorm:"not null"`
	ReviewContent string         `json:"review_content"`
	CreatedAt     time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                  uint           `json:"id" gorm:"primarykey"`
	Email               string         `json:"email" gorm:"uniqueIndex;not null"`
	Username            string         `json:"username" gorm:"uniqueIndex;not null"`
	Password            string         `json:"-" gorm:"not null"`
	DisplayName         string         `json:"display_name"`
	ProfileImage        string         `json:"profile_image"`
	Bio                 string         `json:"bio"`
	TotalViews          int            `json:"total_views" gorm:"default:0"`
	TotalLikes          int            `json:"total_likes" gorm:"default:0"`
	TotalBookmarks      int            `json:"total_bookmarks" gorm:"default:0"`
	PreferredCategories string         `json:"preferred_categories"` // comma-separated free text, e.g. "한식,일식"
	PricePreference     int            `json:"price_preference" gorm:"default:2"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`
}

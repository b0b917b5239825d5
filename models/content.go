package models

import (
	"time"

	"gorm.io/gorm"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Content is a media attachment (image or video short) shown in feeds.
// Display ordering follows DisplayOrder, not creation time.
type Content struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	MediaType    MediaType      `json:"media_type" gorm:"default:'video'"`
	MediaURL     string         `json:"media_url" gorm:"not null"`
	ThumbnailURL string         `json:"thumbnail_url"`
	Caption      string         `json:"caption"`
	Tags         string         `json:"tags"` // comma-separated free text
	DisplayOrder int            `json:"display_order" gorm:"default:0;index"`
	ViewCount    int            `json:"view_count" gorm:"default:0"`
	LikeCount    int            `json:"like_count" gorm:"default:0"`
	ShareCount   int            `json:"share_count" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

package models

import "time"

type InteractionType string

const (
	InteractionLike     InteractionType = "like"
	InteractionBookmark InteractionType = "bookmark"
)

// UserInteraction records a user's like or bookmark of a restaurant.
// At most one row exists per (user, restaurant, type); toggling an
// interaction off deletes the row.
type UserInteraction struct {
	ID              uint            `json:"id" gorm:"primarykey"`
	UserID          uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_user_restaurant_type"`
	RestaurantID    uint            `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_user_restaurant_type"`
	InteractionType InteractionType `json:"interaction_type" gorm:"not null;uniqueIndex:idx_user_restaurant_type"`
	CreatedAt       time.Time       `json:"created_at"`
}

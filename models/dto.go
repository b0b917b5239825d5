package models

import "time"

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name" binding:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type FeedParams struct {
	Page     int     `form:"page,default=1" binding:"min=1"`
	Limit    int     `form:"limit,default=10" binding:"min=1,max=50"`
	Category string  `form:"category"`
	Lat      float64 `form:"lat"`
	Lng      float64 `form:"lng"`
	Radius   float64 `form:"radius" binding:"omitempty,min=0.1,max=50"`
	Sort     string  `form:"sort,default=popularity" binding:"oneof=distance rating popularity"`
}

// HasLocation reports whether the full lat/lng/radius triplet was supplied.
// Partial triplets are ignored rather than rejected, matching the feed
// contract.
func (p FeedParams) HasLocation() bool {
	return p.Lat != 0 && p.Lng != 0 && p.Radius != 0
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	HasNext     bool  `json:"has_next"`
}

type FeedResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
	Pagination  Pagination   `json:"pagination"`
}

type SearchResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
}

type CreateReviewRequest struct {
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewContent string `json:"review_content" binding:"max=2000"`
}

type InteractionResponse struct {
	RestaurantID    uint            `json:"restaurant_id"`
	InteractionType InteractionType `json:"interaction_type"`
	Active          bool            `json:"active"`
}

type ProfileResponse struct {
	ID                  uint      `json:"id"`
	Email               string    `json:"email"`
	Username            string    `json:"username"`
	DisplayName         string    `json:"display_name"`
	ProfileImage        string    `json:"profile_image"`
	Bio                 string    `json:"bio"`
	TotalViews          int       `json:"total_views"`
	TotalLikes          int       `json:"total_likes"`
	TotalBookmarks      int       `json:"total_bookmarks"`
	PreferredCategories string    `json:"preferred_categories"`
	CreatedAt           time.Time `json:"created_at"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type RestaurantStatus string

const (
	StatusActive   RestaurantStatus = "active"
	StatusInactive RestaurantStatus = "inactive"
)

type Restaurant struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	BusinessID  string `json:"business_id" gorm:"uniqueIndex;not null"`
	Name        string `json:"name" gorm:"not null;index"`
	Category    string `json:"category" gorm:"index"`
	SubCategory string `json:"sub_category"`
	Description string `json:"description"`

	AddressFull     string  `json:"address_full"`
	AddressCity     string  `json:"address_city"`
	AddressDistrict string  `json:"address_district"`
	AddressStreet   string  `json:"address_street"`
	ZipCode         string  `json:"zip_code"`
	Latitude        float64 `json:"latitude" gorm:"index"`
	Longitude       float64 `json:"longitude" gorm:"index"`

	Phone            string `json:"phone"`
	BusinessHours    string `json:"business_hours"` // serialized JSON, e.g. {"mon":"11:00-21:00",...}
	ParkingAvailable bool   `json:"parking_available" gorm:"default:false"`

	RatingAvg   float64 `json:"rating_avg" gorm:"default:0"`
	RatingCount int     `json:"rating_count" gorm:"default:0"`
	ReviewCount int     `json:"review_count" gorm:"default:0"`
	PriceRange  int     `json:"price_range" gorm:"default:2"`
	AvgPrice    int     `json:"avg_price" gorm:"default:0"`

	ViewCount       int     `json:"view_count" gorm:"default:0"`
	LikeCount       int     `json:"like_count" gorm:"default:0"`
	ShareCount      int     `json:"share_count" gorm:"default:0"`
	BookmarkCount   int     `json:"bookmark_count" gorm:"default:0"`
	PopularityScore float64 `json:"popularity_score" gorm:"default:0;index"`

	IsVerified bool             `json:"is_verified" gorm:"default:false"`
	Status     RestaurantStatus `json:"status" gorm:"default:'active';index"`

	Contents []Content `json:"contents,omitempty" gorm:"foreignKey:RestaurantID"`
	Menus    []Menu    `json:"menus,omitempty" gorm:"foreignKey:RestaurantID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:RestaurantID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

package services

import (
	"errors"
	"math"
	"unicode/utf8"

	"gorm.io/gorm"

	"foodshorts-api/models"
	"foodshorts-api/repositories"
)

const (
	feedContentLimit = 5
	feedMenuLimit    = 3
	searchMinRunes   = 2
	searchLimit      = 20
)

type RestaurantService interface {
	GetFeed(params models.FeedParams) (*models.FeedResponse, error)
	SearchRestaurants(query string) (*models.SearchResponse, error)
	GetRestaurant(id uint) (*models.Restaurant, error)
}

type restaurantService struct {
	restaurantRepo repositories.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repositories.RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepo: restaurantRepo}
}

// GetFeed returns one page of active restaurants ordered by popularity
// score. The location filter is a rectangular bounding box, not a true
// radius: restaurants near the corners may exceed the requested distance.
// Sort values other than popularity are accepted but not yet honored.
func (s *restaurantService) GetFeed(params models.FeedParams) (*models.FeedResponse, error) {
	var box *models.BoundingBox
	if params.HasLocation() {
		b := models.NewBoundingBox(params.Lat, params.Lng, params.Radius)
		box = &b
	}

	// The count never depends on the page, so fetch it in parallel. A
	// write landing between the two queries can skew them slightly;
	// the feed is best-effort and tolerates that.
	type countResult struct {
		total int64
		err   error
	}
	countCh := make(chan countResult, 1)
	go func() {
		total, err := s.restaurantRepo.CountFeed(params, box)
		countCh <- countResult{total: total, err: err}
	}()

	restaurants, err := s.restaurantRepo.GetFeedPage(params, box)
	if err != nil {
		return nil, err
	}

	count := <-countCh
	if count.err != nil {
		return nil, count.err
	}

	for i := range restaurants {
		if len(restaurants[i].Contents) > feedContentLimit {
			restaurants[i].Contents = restaurants[i].Contents[:feedContentLimit]
		}
		if len(restaurants[i].Menus) > feedMenuLimit {
			restaurants[i].Menus = restaurants[i].Menus[:feedMenuLimit]
		}
	}

	return &models.FeedResponse{
		Restaurants: restaurants,
		Pagination: models.Pagination{
			CurrentPage: params.Page,
			TotalPages:  int(math.Ceil(float64(count.total) / float64(params.Limit))),
			TotalItems:  count.total,
			HasNext:     int64(params.Page*params.Limit) < count.total,
		},
	}, nil
}

// SearchRestaurants matches the query as a substring of name, category,
// city, and district. Queries under two runes return an empty result set
// rather than an error.
func (s *restaurantService) SearchRestaurants(query string) (*models.SearchResponse, error) {
	if utf8.RuneCountInString(query) < searchMinRunes {
		return &models.SearchResponse{Restaurants: []models.Restaurant{}}, nil
	}

	restaurants, err := s.restaurantRepo.Search(query, searchLimit)
	if err != nil {
		return nil, err
	}

	// Search cards show a single cover content
	for i := range restaurants {
		if len(restaurants[i].Contents) > 1 {
			restaurants[i].Contents = restaurants[i].Contents[:1]
		}
	}

	return &models.SearchResponse{Restaurants: restaurants}, nil
}

func (s *restaurantService) GetRestaurant(id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

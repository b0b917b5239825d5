package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodshorts-api/models"
	"foodshorts-api/repositories"
)

func newRestaurantService(t *testing.T) (RestaurantService, *gorm.DB) {
	db := newTestDB(t)
	return NewRestaurantService(repositories.NewRestaurantRepository(db)), db
}

var bizSeq int

func seedRestaurant(t *testing.T, db *gorm.DB, r models.Restaurant) models.Restaurant {
	t.Helper()
	if r.BusinessID == "" {
		bizSeq++
		r.BusinessID = fmt.Sprintf("BIZ-%s-%d", t.Name(), bizSeq)
	}
	if r.Status == "" {
		r.Status = models.StatusActive
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func TestGetFeedPaginationArithmetic(t *testing.T) {
	svc, db := newRestaurantService(t)

	for i := 0; i < 7; i++ {
		seedRestaurant(t, db, models.Restaurant{
			Name:            fmt.Sprintf("식당 %d", i),
			Category:        "한식",
			PopularityScore: float64(i),
		})
	}

	feed, err := svc.GetFeed(models.FeedParams{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, feed.Restaurants, 3)
	assert.Equal(t, int64(7), feed.Pagination.TotalItems)
	assert.Equal(t, 3, feed.Pagination.TotalPages)
	assert.True(t, feed.Pagination.HasNext)

	feed, err = svc.GetFeed(models.FeedParams{Page: 3, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, feed.Restaurants, 1)
	assert.Equal(t, 3, feed.Pagination.CurrentPage)
	assert.False(t, feed.Pagination.HasNext)
}

func TestGetFeedFiltersInactiveAndCategory(t *testing.T) {
	svc, db := newRestaurantService(t)

	seedRestaurant(t, db, models.Restaurant{Name: "할머니의 손맛", Category: "한식"})
	seedRestaurant(t, db, models.Restaurant{Name: "닫은 한식당", Category: "한식", Status: models.StatusInactive})
	seedRestaurant(t, db, models.Restaurant{Name: "라멘 타로", Category: "일식"})

	feed, err := svc.GetFeed(models.FeedParams{Page: 1, Limit: 10, Category: "한식"})
	require.NoError(t, err)
	require.Len(t, feed.Restaurants, 1)
	assert.Equal(t, "할머니의 손맛", feed.Restaurants[0].Name)
	assert.Equal(t, int64(1), feed.Pagination.TotalItems)
	assert.Equal(t, 1, feed.Pagination.TotalPages)
	assert.False(t, feed.Pagination.HasNext)

	for _, r := range feed.Restaurants {
		assert.Equal(t, models.StatusActive, r.Status)
		assert.Equal(t, "한식", r.Category)
	}
}

func TestGetFeedBoundingBox(t *testing.T) {
	svc, db := newRestaurantService(t)

	// ~2km and ~15km from the center point
	near := seedRestaurant(t, db, models.Restaurant{Name: "근처 식당", Latitude: 37.57, Longitude: 127.00})
	seedRestaurant(t, db, models.Restaurant{Name: "먼 식당", Latitude: 37.70, Longitude: 127.20})

	params := models.FeedParams{Page: 1, Limit: 10, Lat: 37.5665, Lng: 126.9980, Radius: 3}
	feed, err := svc.GetFeed(params)
	require.NoError(t, err)
	require.Len(t, feed.Restaurants, 1)
	assert.Equal(t, near.ID, feed.Restaurants[0].ID)

	// box membership is the contract, not circle membership
	box := models.NewBoundingBox(params.Lat, params.Lng, params.Radius)
	for _, r := range feed.Restaurants {
		assert.True(t, box.Contains(r.Latitude, r.Longitude))
	}
}

func TestGetFeedPopularityOrdering(t *testing.T) {
	svc, db := newRestaurantService(t)

	seedRestaurant(t, db, models.Restaurant{Name: "중간", PopularityScore: 7.8})
	seedRestaurant(t, db, models.Restaurant{Name: "일등", PopularityScore: 9.2})
	seedRestaurant(t, db, models.Restaurant{Name: "꼴등", PopularityScore: 4.1})

	feed, err := svc.GetFeed(models.FeedParams{Page: 1, Limit: 10, Sort: "popularity"})
	require.NoError(t, err)
	require.Len(t, feed.Restaurants, 3)
	for i := 1; i < len(feed.Restaurants); i++ {
		assert.GreaterOrEqual(t,
			feed.Restaurants[i-1].PopularityScore,
			feed.Restaurants[i].PopularityScore)
	}
}

func TestGetFeedBoundsAttachments(t *testing.T) {
	svc, db := newRestaurantService(t)

	r := seedRestaurant(t, db, models.Restaurant{Name: "콘텐츠 많은 집"})
	for i := 1; i <= 7; i++ {
		require.NoError(t, db.Create(&models.Content{
			RestaurantID: r.ID,
			MediaURL:     fmt.Sprintf("https://example.com/%d.mp4", i),
			DisplayOrder: 8 - i, // inserted in reverse display order
		}).Error)
	}
	for i := 1; i <= 5; i++ {
		require.NoError(t, db.Create(&models.Menu{
			RestaurantID: r.ID,
			Name:         fmt.Sprintf("메뉴 %d", i),
			Price:        10000,
			IsPopular:    true,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Menu{RestaurantID: r.ID, Name: "비인기 메뉴", Price: 9000}).Error)

	feed, err := svc.GetFeed(models.FeedParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, feed.Restaurants, 1)

	contents := feed.Restaurants[0].Contents
	require.Len(t, contents, 5)
	for i := 1; i < len(contents); i++ {
		assert.LessOrEqual(t, contents[i-1].DisplayOrder, contents[i].DisplayOrder)
	}

	menus := feed.Restaurants[0].Menus
	require.Len(t, menus, 3)
	for _, m := range menus {
		assert.True(t, m.IsPopular)
	}
}

func TestSearchShortQueries(t *testing.T) {
	svc, db := newRestaurantService(t)

	seedRestaurant(t, db, models.Restaurant{Name: "라멘 타로", Category: "일식"})

	for _, q := range []string{"", "a", "라"} {
		result, err := svc.SearchRestaurants(q)
		require.NoError(t, err)
		assert.Empty(t, result.Restaurants, "query %q should return no results", q)
	}

	result, err := svc.SearchRestaurants("라멘")
	require.NoError(t, err)
	require.Len(t, result.Restaurants, 1)
	assert.Equal(t, "라멘 타로", result.Restaurants[0].Name)
}

func TestSearchMatchesAddressFields(t *testing.T) {
	svc, db := newRestaurantService(t)

	seedRestaurant(t, db, models.Restaurant{Name: "할머니의 손맛", Category: "한식", AddressCity: "서울특별시", AddressDistrict: "강남구"})
	seedRestaurant(t, db, models.Restaurant{Name: "닫은 집", AddressDistrict: "강남구", Status: models.StatusInactive})

	result, err := svc.SearchRestaurants("강남")
	require.NoError(t, err)
	require.Len(t, result.Restaurants, 1)
	assert.Equal(t, "할머니의 손맛", result.Restaurants[0].Name)
}

func TestSearchCapAndCoverContent(t *testing.T) {
	svc, db := newRestaurantService(t)

	for i := 0; i < 25; i++ {
		r := seedRestaurant(t, db, models.Restaurant{
			Name:            fmt.Sprintf("Pizza Place %d", i),
			PopularityScore: float64(i),
		})
		for j := 1; j <= 2; j++ {
			require.NoError(t, db.Create(&models.Content{
				RestaurantID: r.ID,
				MediaURL:     fmt.Sprintf("https://example.com/%d-%d.jpg", i, j),
				DisplayOrder: j,
			}).Error)
		}
	}

	result, err := svc.SearchRestaurants("Pizza")
	require.NoError(t, err)
	assert.Len(t, result.Restaurants, 20)
	for _, r := range result.Restaurants {
		assert.LessOrEqual(t, len(r.Contents), 1)
	}
}

func TestGetRestaurantDetail(t *testing.T) {
	svc, db := newRestaurantService(t)

	user := models.User{Email: "user1@example.com", Username: "foodlover1", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	r := seedRestaurant(t, db, models.Restaurant{Name: "할머니의 손맛"})
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 12; i++ {
		require.NoError(t, db.Create(&models.Review{
			RestaurantID:  r.ID,
			UserID:        user.ID,
			Rating:        5,
			ReviewContent: fmt.Sprintf("리뷰 %d", i),
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	detail, err := svc.GetRestaurant(r.ID)
	require.NoError(t, err)
	require.LessOrEqual(t, len(detail.Reviews), 10)
	for i := 1; i < len(detail.Reviews); i++ {
		assert.True(t, !detail.Reviews[i-1].CreatedAt.Before(detail.Reviews[i].CreatedAt))
	}
	assert.Equal(t, "foodlover1", detail.Reviews[0].User.Username)
}

func TestGetRestaurantNotFound(t *testing.T) {
	svc, db := newRestaurantService(t)

	inactive := seedRestaurant(t, db, models.Restaurant{Name: "닫은 집", Status: models.StatusInactive})

	_, err := svc.GetRestaurant(inactive.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetRestaurant(999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

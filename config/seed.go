package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodshorts-api/models"
)

// Seed loads the demo dataset. Skipped when restaurants already exist,
// so it is safe to run on every start.
func Seed(db *gorm.DB) error {
	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	if count > 0 {
		log.Println("skip seeding: restaurants already exist")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			Email:               "user1@example.com",
			Username:            "foodlover1",
			Password:            string(hash),
			DisplayName:         "음식 좋아해",
			PreferredCategories: "한식,일식",
			PricePreference:     2,
		},
		{
			Email:               "user2@example.com",
			Username:            "foodie2",
			Password:            string(hash),
			DisplayName:         "맛집헌터",
			PreferredCategories: "양식,중식",
			PricePreference:     3,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	restaurants := []models.Restaurant{
		{
			BusinessID:       "BIZ001",
			Name:             "할머니의 손맛",
			Category:         "한식",
			SubCategory:      "한정식",
			Description:      "3대째 이어온 전통 한정식 전문점입니다. 정성으로 만든 반찬과 정갈한 한상차림을 맛보세요.",
			AddressFull:      "서울특별시 강남구 테헤란로 123",
			AddressCity:      "서울특별시",
			AddressDistrict:  "강남구",
			AddressStreet:    "테헤란로 123",
			ZipCode:          "06158",
			Latitude:         37.5665,
			Longitude:        127.0780,
			Phone:            "02-1234-5678",
			BusinessHours:    `{"mon":"11:00-21:00","tue":"11:00-21:00","wed":"11:00-21:00","thu":"11:00-21:00","fri":"11:00-21:00","sat":"11:00-21:00","sun":"휴무"}`,
			ParkingAvailable: true,
			RatingAvg:        4.5,
			RatingCount:      234,
			ReviewCount:      189,
			PriceRange:       2,
			AvgPrice:         25000,
			ViewCount:        1250,
			LikeCount:        89,
			ShareCount:       12,
			BookmarkCount:    45,
			PopularityScore:  8.5,
			IsVerified:       true,
		},
		{
			BusinessID:       "BIZ002",
			Name:             "라멘 타로",
			Category:         "일식",
			SubCategory:      "라멘",
			Description:      "진정한 일본식 돈코츠 라멘을 선보입니다. 18시간 우린 진한 국물이 일품입니다.",
			AddressFull:      "서울특별시 홍대입구 와우산로 29길 45",
			AddressCity:      "서울특별시",
			AddressDistrict:  "마포구",
			AddressStreet:    "와우산로29길 45",
			ZipCode:          "04048",
			Latitude:         37.5563,
			Longitude:        126.9226,
			Phone:            "02-2345-6789",
			BusinessHours:    `{"mon":"17:00-24:00","tue":"17:00-24:00","wed":"17:00-24:00","thu":"17:00-24:00","fri":"17:00-02:00","sat":"17:00-02:00","sun":"17:00-24:00"}`,
			ParkingAvailable: false,
			RatingAvg:        4.7,
			RatingCount:      456,
			ReviewCount:      389,
			PriceRange:       1,
			AvgPrice:         12000,
			ViewCount:        2340,
			LikeCount:        156,
			ShareCount:       28,
			BookmarkCount:    89,
			PopularityScore:  9.2,
			IsVerified:       true,
		},
		{
			BusinessID:       "BIZ003",
			Name:             "Pasta Milano",
			Category:         "양식",
			SubCategory:      "이탈리안",
			Description:      "이탈리아에서 직접 공수한 재료로 만드는 정통 이탈리안 레스토랑입니다.",
			AddressFull:      "서울특별시 강남구 청담동 123-45",
			AddressCity:      "서울특별시",
			AddressDistrict:  "강남구",
			AddressStreet:    "청담동 123-45",
			ZipCode:          "06015",
			Latitude:         37.5226,
			Longitude:        127.0587,
			Phone:            "02-3456-7890",
			BusinessHours:    `{"mon":"11:30-22:00","tue":"11:30-22:00","wed":"11:30-22:00","thu":"11:30-22:00","fri":"11:30-23:00","sat":"11:30-23:00","sun":"11:30-22:00"}`,
			ParkingAvailable: true,
			RatingAvg:        4.2,
			RatingCount:      189,
			ReviewCount:      156,
			PriceRange:       3,
			AvgPrice:         35000,
			ViewCount:        890,
			LikeCount:        67,
			ShareCount:       15,
			BookmarkCount:    34,
			PopularityScore:  7.8,
			IsVerified:       true,
		},
		{
			BusinessID:       "BIZ004",
			Name:             "마라탕 전문점 얼쑤",
			Category:         "중식",
			SubCategory:      "중국요리",
			Description:      "진짜 사천식 마라탕과 마라샹궈를 맛볼 수 있는 곳입니다. 매운맛 단계 조절 가능!",
			AddressFull:      "서울특별시 신촌 연세로 12",
			AddressCity:      "서울특별시",
			AddressDistrict:  "서대문구",
			AddressStreet:    "연세로 12",
			ZipCode:          "03722",
			Latitude:         37.5580,
			Longitude:        126.9367,
			Phone:            "02-4567-8901",
			BusinessHours:    `{"mon":"11:00-23:00","tue":"11:00-23:00","wed":"11:00-23:00","thu":"11:00-23:00","fri":"11:00-24:00","sat":"11:00-24:00","sun":"11:00-23:00"}`,
			ParkingAvailable: false,
			RatingAvg:        4.4,
			RatingCount:      567,
			ReviewCount:      445,
			PriceRange:       1,
			AvgPrice:         15000,
			ViewCount:        1890,
			LikeCount:        234,
			ShareCount:       45,
			BookmarkCount:    123,
			PopularityScore:  8.9,
		},
		{
			BusinessID:       "BIZ005",
			Name:             "카페 드 파리",
			Category:         "카페",
			SubCategory:      "디저트카페",
			Description:      "프랑스 정통 디저트와 원두커피를 즐길 수 있는 프리미엄 카페입니다.",
			AddressFull:      "서울특별시 압구정동 로데오거리 456",
			AddressCity:      "서울특별시",
			AddressDistrict:  "강남구",
			AddressStreet:    "압구정로 456",
			ZipCode:          "06009",
			Latitude:         37.5270,
			Longitude:        127.0286,
			Phone:            "02-5678-9012",
			BusinessHours:    `{"mon":"08:00-22:00","tue":"08:00-22:00","wed":"08:00-22:00","thu":"08:00-22:00","fri":"08:00-23:00","sat":"08:00-23:00","sun":"09:00-22:00"}`,
			ParkingAvailable: true,
			RatingAvg:        4.3,
			RatingCount:      234,
			ReviewCount:      198,
			PriceRange:       3,
			AvgPrice:         28000,
			ViewCount:        1120,
			LikeCount:        78,
			ShareCount:       23,
			BookmarkCount:    56,
			PopularityScore:  7.6,
			IsVerified:       true,
		},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	menus := []models.Menu{
		{RestaurantID: restaurants[0].ID, Name: "전통 한정식", Price: 28000, IsPopular: true, IsRecommended: true, DisplayOrder: 1},
		{RestaurantID: restaurants[0].ID, Name: "계절 정식", Price: 35000, IsRecommended: true, DisplayOrder: 2},
		{RestaurantID: restaurants[0].ID, Name: "갈비탕", Price: 15000, IsPopular: true, DisplayOrder: 3},
		{RestaurantID: restaurants[0].ID, Name: "냉면", Price: 12000, DisplayOrder: 4},
		{RestaurantID: restaurants[1].ID, Name: "돈코츠 라멘", Price: 12000, IsPopular: true, IsRecommended: true, DisplayOrder: 1},
		{RestaurantID: restaurants[1].ID, Name: "미소 라멘", Price: 11000, IsPopular: true, DisplayOrder: 2},
		{RestaurantID: restaurants[1].ID, Name: "챠슈멘", Price: 15000, IsRecommended: true, DisplayOrder: 3},
		{RestaurantID: restaurants[1].ID, Name: "교자", Price: 8000, DisplayOrder: 4},
		{RestaurantID: restaurants[2].ID, Name: "크림 파스타", Price: 28000, IsPopular: true, DisplayOrder: 1},
		{RestaurantID: restaurants[2].ID, Name: "토마토 파스타", Price: 25000, IsRecommended: true, DisplayOrder: 2},
		{RestaurantID: restaurants[2].ID, Name: "피자 마르게리타", Price: 32000, IsPopular: true, DisplayOrder: 3},
		{RestaurantID: restaurants[2].ID, Name: "리조또", Price: 30000, DisplayOrder: 4},
		{RestaurantID: restaurants[3].ID, Name: "마라탕 (소)", Price: 12000, IsPopular: true, DisplayOrder: 1},
		{RestaurantID: restaurants[3].ID, Name: "마라탕 (대)", Price: 18000, IsRecommended: true, DisplayOrder: 2},
		{RestaurantID: restaurants[3].ID, Name: "마라샹궈", Price: 25000, IsPopular: true, DisplayOrder: 3},
		{RestaurantID: restaurants[3].ID, Name: "꿔바로우", Price: 22000, DisplayOrder: 4},
		{RestaurantID: restaurants[4].ID, Name: "아메리카노", Price: 6000, IsPopular: true, DisplayOrder: 1},
		{RestaurantID: restaurants[4].ID, Name: "카페라떼", Price: 7000, DisplayOrder: 2},
		{RestaurantID: restaurants[4].ID, Name: "크루아상", Price: 8000, IsRecommended: true, DisplayOrder: 3},
		{RestaurantID: restaurants[4].ID, Name: "마카롱 세트", Price: 15000, IsPopular: true, DisplayOrder: 4},
	}
	if err := db.Create(&menus).Error; err != nil {
		return err
	}

	contents := []models.Content{
		{
			RestaurantID: restaurants[0].ID,
			MediaType:    models.MediaImage,
			MediaURL:     "https://images.unsplash.com/photo-1498654896293-37aacf113fd9?w=400&h=600&fit=crop",
			ThumbnailURL: "https://images.unsplash.com/photo-1498654896293-37aacf113fd9?w=200&h=300&fit=crop",
			Caption:      "3대째 이어온 할머니의 손맛",
			Tags:         "한식,전통,정갈한",
			DisplayOrder: 1,
		},
		{
			RestaurantID: restaurants[1].ID,
			MediaType:    models.MediaImage,
			MediaURL:     "https://images.unsplash.com/photo-1591814468924-caf88d1232e1?w=400&h=600&fit=crop",
			ThumbnailURL: "https://images.unsplash.com/photo-1591814468924-caf88d1232e1?w=200&h=300&fit=crop",
			Caption:      "18시간 우린 진한 돈코츠 국물",
			Tags:         "라멘,일식,진한국물",
			DisplayOrder: 1,
		},
		{
			RestaurantID: restaurants[2].ID,
			MediaType:    models.MediaImage,
			MediaURL:     "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=400&h=600&fit=crop",
			ThumbnailURL: "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=200&h=300&fit=crop",
			Caption:      "이탈리아 직수입 재료로 만든 파스타",
			Tags:         "파스타,이탈리안,정통",
			DisplayOrder: 1,
		},
		{
			RestaurantID: restaurants[3].ID,
			MediaType:    models.MediaImage,
			MediaURL:     "https://images.unsplash.com/photo-1582878826629-29b7ad1cdc43?w=400&h=600&fit=crop",
			ThumbnailURL: "https://images.unsplash.com/photo-1582878826629-29b7ad1cdc43?w=200&h=300&fit=crop",
			Caption:      "진짜 사천식 마라탕의 매운맛",
			Tags:         "마라탕,중식,매운맛",
			DisplayOrder: 1,
		},
		{
			RestaurantID: restaurants[4].ID,
			MediaType:    models.MediaImage,
			MediaURL:     "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=600&fit=crop",
			ThumbnailURL: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=200&h=300&fit=crop",
			Caption:      "프리미엄 원두와 정통 디저트",
			Tags:         "카페,디저트,프리미엄",
			DisplayOrder: 1,
		},
	}
	if err := db.Create(&contents).Error; err != nil {
		return err
	}

	reviews := []models.Review{
		{
			UserID:        users[0].ID,
			RestaurantID:  restaurants[0].ID,
			Rating:        5,
			ReviewContent: "정말 맛있어요! 할머니 손맛 그대로입니다. 반찬도 하나하나 정성이 느껴져요.",
		},
		{
			UserID:        users[1].ID,
			RestaurantID:  restaurants[1].ID,
			Rating:        5,
			ReviewContent: "돈코츠 라멘이 진짜 진하고 맛있어요. 면발도 쫄깃하고 최고!",
		},
		{
			UserID:        users[0].ID,
			RestaurantID:  restaurants[2].ID,
			Rating:        4,
			ReviewContent: "분위기도 좋고 파스타도 맛있었어요. 좀 비싸긴 하지만 데이트하기 좋아요.",
		},
	}
	if err := db.Create(&reviews).Error; err != nil {
		return err
	}

	log.Printf("seeding completed: %d restaurants, %d users", len(restaurants), len(users))
	return nil
}

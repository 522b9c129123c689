package stub

import (
	"fmt"
	"time"

	"github.com/ibeloyar/hotelportal/internal/model"
)

const (
	DemoEmail    = "demo@hotel.test"
	DemoPassword = "demo1234"
)

func standardFacilities() []model.RoomInfoItem {
	return []model.RoomInfoItem{
		{Title: "TV", IsProvide: true},
		{Title: "Air conditioning", IsProvide: true},
		{Title: "Minibar", IsProvide: true},
		{Title: "Bathtub", IsProvide: false},
	}
}

func standardAmenities() []model.RoomInfoItem {
	return []model.RoomInfoItem{
		{Title: "Towels", IsProvide: true},
		{Title: "Toiletries", IsProvide: true},
		{Title: "Slippers", IsProvide: true},
	}
}

func seedRooms() []model.Room {
	rooms := []model.Room{
		{ID: "room-deluxe", Name: "Deluxe Room", AreaInfo: "24 m²", BedInfo: "1 king bed", MaxPeople: 2, Price: 10000},
		{ID: "room-family", Name: "Family Room", AreaInfo: "36 m²", BedInfo: "2 queen beds", MaxPeople: 4, Price: 14000},
		{ID: "room-suite", Name: "Sea View Suite", AreaInfo: "48 m²", BedInfo: "1 king bed", MaxPeople: 3, Price: 20000},
		{ID: "room-landscape", Name: "Landscape Room", AreaInfo: "28 m²", BedInfo: "2 single beds", MaxPeople: 2, Price: 11000},
	}

	for i := range rooms {
		rooms[i].Description = fmt.Sprintf("%s with city and harbor views.", rooms[i].Name)
		rooms[i].ImageURL = fmt.Sprintf("/images/%s.jpg", rooms[i].ID)
		rooms[i].ImageURLList = []string{rooms[i].ImageURL}
		rooms[i].LayoutInfo = []model.RoomInfoItem{{Title: "Private bathroom", IsProvide: true}}
		rooms[i].FacilityInfo = standardFacilities()
		rooms[i].AmenityInfo = standardAmenities()
	}

	return rooms
}

func seedNews(now time.Time) []model.News {
	return []model.News{
		{ID: "news-spring", Title: "Spring stay offer", Description: "Book three nights, the fourth is on us.", Image: "/images/news-spring.jpg", CreatedAt: now},
		{ID: "news-pool", Title: "Rooftop pool reopens", Description: "Open daily from 7:00 to 22:00.", Image: "/images/news-pool.jpg", CreatedAt: now},
		{ID: "news-members", Title: "Member lounge", Description: "Members enjoy free afternoon tea.", Image: "/images/news-members.jpg", CreatedAt: now},
	}
}

func seedCulinary() []model.Culinary {
	return []model.Culinary{
		{ID: "culinary-seaside", Title: "Seaside Grill", Description: "Fresh seafood on charcoal.", DiningTime: "17:00-22:00", Image: "/images/culinary-seaside.jpg"},
		{ID: "culinary-garden", Title: "Garden Cafe", Description: "Breakfast buffet and light lunch.", DiningTime: "07:00-14:00", Image: "/images/culinary-garden.jpg"},
		{ID: "culinary-lounge", Title: "Sky Lounge", Description: "Cocktails with a harbor view.", DiningTime: "18:00-01:00", Image: "/images/culinary-lounge.jpg"},
	}
}

// Seed fills the catalog and, when demoPasswordHash is set, registers the demo
// member with one past, one upcoming and one cancelled stay.
func Seed(s *Store, demoPasswordHash string, now time.Time) error {
	s.mu.Lock()
	s.rooms = seedRooms()
	s.news = seedNews(now)
	s.culinary = seedCulinary()
	s.mu.Unlock()

	if demoPasswordHash == "" {
		return nil
	}

	user, err := s.CreateUser(model.User{
		Name:     "Demo Member",
		Email:    DemoEmail,
		Phone:    "0912345678",
		Birthday: "1990/01/01",
		Address:  model.Address{ZipCode: 802, Detail: "No. 7 Harbor Rd", City: "Kaohsiung"},
	}, demoPasswordHash, now)
	if err != nil {
		return err
	}

	day := 24 * time.Hour
	stays := []struct {
		room    string
		checkIn time.Time
		cancel  bool
	}{
		{room: "room-landscape", checkIn: now.Add(-30 * day)},
		{room: "room-deluxe", checkIn: now.Add(7 * day)},
		{room: "room-suite", checkIn: now.Add(3 * day), cancel: true},
	}

	for i, stay := range stays {
		order, err := s.CreateOrder(user.ID, model.OrderPostDTO{
			RoomID:       stay.room,
			CheckInDate:  stay.checkIn,
			CheckOutDate: stay.checkIn.Add(2 * day),
			PeopleNum:    2,
			UserInfo: model.UserInfo{
				Name:    user.Name,
				Phone:   user.Phone,
				Email:   user.Email,
				Address: user.Address,
			},
		}, now.Add(time.Duration(i)*time.Second))
		if err != nil {
			return err
		}

		if stay.cancel {
			if _, err := s.CancelOrder(user.ID, order.ID, now); err != nil {
				return err
			}
		}
	}

	return nil
}

package model

type RoomInfoItem struct {
	Title     string `json:"title"`
	IsProvide bool   `json:"isProvide"`
}

type Room struct {
	ID           string         `json:"_id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	ImageURL     string         `json:"imageUrl"`
	ImageURLList []string       `json:"imageUrlList"`
	AreaInfo     string         `json:"areaInfo"`
	BedInfo      string         `json:"bedInfo"`
	MaxPeople    int            `json:"maxPeople"`
	Price        int            `json:"price"`
	Status       int            `json:"status"`
	LayoutInfo   []RoomInfoItem `json:"layoutInfo,omitempty"`
	FacilityInfo []RoomInfoItem `json:"facilityInfo"`
	AmenityInfo  []RoomInfoItem `json:"amenityInfo"`
}

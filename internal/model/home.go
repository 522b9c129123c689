package model

import "time"

type News struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Culinary struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DiningTime  string `json:"diningTime"`
	Image       string `json:"image"`
}

type Home struct {
	News     []News     `json:"news"`
	Culinary []Culinary `json:"culinary"`
	Rooms    []Room     `json:"rooms"`
}

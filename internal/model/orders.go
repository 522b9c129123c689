package model

import "time"

type OrderStatus int

const (
	OrderStatusActive    OrderStatus = 0
	OrderStatusCancelled OrderStatus = -1
)

type UserInfo struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required,phone"`
	Email   string  `json:"email" validate:"required,email"`
	Address Address `json:"address"`
}

type Order struct {
	ID           string      `json:"_id"`
	RoomID       Room        `json:"roomId"`
	CheckInDate  time.Time   `json:"checkInDate"`
	CheckOutDate time.Time   `json:"checkOutDate"`
	PeopleNum    int         `json:"peopleNum"`
	UserInfo     UserInfo    `json:"userInfo"`
	OrderUserID  string      `json:"orderUserId,omitempty"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt,omitempty"`
	UpdatedAt    time.Time   `json:"updatedAt,omitempty"`
}

// Nights is the number of nights between check-in and check-out dates.
func (o Order) Nights() int {
	in := time.Date(o.CheckInDate.Year(), o.CheckInDate.Month(), o.CheckInDate.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(o.CheckOutDate.Year(), o.CheckOutDate.Month(), o.CheckOutDate.Day(), 0, 0, 0, 0, time.UTC)

	return int(out.Sub(in).Hours() / 24)
}

type OrderPostDTO struct {
	RoomID       string    `json:"roomId" validate:"required"`
	CheckInDate  time.Time `json:"checkInDate" validate:"required"`
	CheckOutDate time.Time `json:"checkOutDate" validate:"required,gtfield=CheckInDate"`
	PeopleNum    int       `json:"peopleNum" validate:"required,gte=1"`
	UserInfo     UserInfo  `json:"userInfo"`
}

// OrdersQuery carries the view state the browser owns for the order page.
type OrdersQuery struct {
	Visible  int
	Selected string
}

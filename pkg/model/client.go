package model

import "time"

// Client is immutable once created; there is no edit or delete operation.
type Client struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	RFC       string    `json:"rfc" bson:"rfc"`
	Phone     string    `json:"phone" bson:"phone"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Sequence  int64     `json:"-" bson:"seq"`
}

type ClientProfile struct {
	Client             Client        `json:"client"`
	Reservations       []Reservation `json:"reservations"`
	ActiveReservations int           `json:"active_reservations"`
	ActiveSpaces       int           `json:"active_spaces"`
	TotalBilled        float64       `json:"total_billed"`
}

// ClientInput is the body of a client registration.
type ClientInput struct {
	Name  string `json:"name" validate:"required,min=2,max=200"`
	RFC   string `json:"rfc" validate:"required,rfc"`
	Phone string `json:"phone" validate:"required,min=7,max=20"`
	Email string `json:"email" validate:"required,email,max=254"`
}

package model

import (
	"slices"
	"time"
)

type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusExpired   ReservationStatus = "expired"
	StatusCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusCompleted:
		return true
	}
	return false
}

// Reservation assigns a set of spaces to one client for [StartDate, EndDate).
// PricePerDay, HandlingFee and TaxRate are snapshots taken at creation time.
type Reservation struct {
	ID          string            `json:"id" bson:"_id"`
	ClientID    string            `json:"client_id" bson:"client_id"`
	SpaceIDs    []int             `json:"space_ids" bson:"space_ids"`
	StartDate   time.Time         `json:"start_date" bson:"start_date"`
	EndDate     time.Time         `json:"end_date" bson:"end_date"`
	TotalDays   int               `json:"total_days" bson:"total_days"`
	PricePerDay float64           `json:"price_per_day" bson:"price_per_day"`
	HandlingFee float64           `json:"handling_fee" bson:"handling_fee"`
	TaxRate     float64           `json:"tax_rate" bson:"tax_rate"`
	Subtotal    float64           `json:"subtotal" bson:"subtotal"`
	Tax         float64           `json:"tax" bson:"tax"`
	Total       float64           `json:"total" bson:"total"`
	Status      ReservationStatus `json:"status" bson:"status"`
	Sequence    int64             `json:"-" bson:"seq"`
}

// Clone returns a copy that shares no memory with r.
func (r Reservation) Clone() Reservation {
	r.SpaceIDs = slices.Clone(r.SpaceIDs)
	return r
}

// ReservationPatch carries the fields an update may change. Nil fields are left alone.
// EndDate is not settable: it follows StartDate + TotalDays.
type ReservationPatch struct {
	SpaceIDs  []int
	TotalDays *int
	Subtotal  *float64
	Tax       *float64
	Total     *float64
	Status    *ReservationStatus
}

type StatusCounts struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Expired   int `json:"expired"`
	Completed int `json:"completed"`
}

func (c *StatusCounts) Add(status ReservationStatus) {
	c.All++
	switch status {
	case StatusActive:
		c.Active++
	case StatusExpired:
		c.Expired++
	case StatusCompleted:
		c.Completed++
	}
}

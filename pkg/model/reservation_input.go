package model

// ReservationInput is the body of a create request. StartDate accepts a calendar date
// (2006-01-02) or an RFC 3339 timestamp. When SpaceIDs is empty the spaces are suggested.
type ReservationInput struct {
	ClientID     string `json:"client_id" validate:"required,max=64"`
	SpacesNeeded int    `json:"spaces_needed" validate:"gte=1,lte=100"`
	TotalDays    int    `json:"total_days" validate:"gte=1,lte=3650"`
	StartDate    string `json:"start_date" validate:"required"`
	SpaceIDs     []int  `json:"space_ids,omitempty" validate:"omitempty,unique,dive,gte=1,lte=100"`
}

type QuoteInput struct {
	SpacesNeeded int `json:"spaces_needed" validate:"gte=1,lte=100"`
	TotalDays    int `json:"total_days" validate:"gte=1,lte=3650"`
}

type ExtendInput struct {
	Days int `json:"days" validate:"gte=1,lte=3650"`
}

// ReservationFilter narrows a reservation listing. An empty Status means all.
type ReservationFilter struct {
	Status ReservationStatus
	Search string
}

// ReservationList is one page of a listing plus per-status counts over every reservation.
type ReservationList struct {
	Reservations []Reservation
	Total        int64
	Counts       StatusCounts
}

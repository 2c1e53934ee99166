package model

const TotalSpaces = 100

type SpaceStatus string

const (
	SpaceAvailable    SpaceStatus = "available"
	SpaceReserved     SpaceStatus = "reserved"
	SpaceExpiringSoon SpaceStatus = "expiring-soon"
)

func (s SpaceStatus) Valid() bool {
	switch s {
	case SpaceAvailable, SpaceReserved, SpaceExpiringSoon:
		return true
	}
	return false
}

type Section string

const (
	SectionA Section = "A"
	SectionB Section = "B"
	SectionC Section = "C"
	SectionD Section = "D"
)

var Sections = []Section{SectionA, SectionB, SectionC, SectionD}

func (s Section) Valid() bool {
	switch s {
	case SectionA, SectionB, SectionC, SectionD:
		return true
	}
	return false
}

// Space is derived from the reservation list and never stored.
type Space struct {
	ID              int         `json:"id"`
	Section         Section     `json:"section"`
	Status          SpaceStatus `json:"status"`
	ReservationID   string      `json:"reservation_id,omitempty"`
	ClientID        string      `json:"client_id,omitempty"`
	DaysUntilExpiry *int        `json:"days_until_expiry,omitempty"`
}

type SpaceCounts struct {
	Total        int `json:"total"`
	Available    int `json:"available"`
	Reserved     int `json:"reserved"`
	ExpiringSoon int `json:"expiring_soon"`
}

// Occupied counts every claimed space, expiring or not.
func (c SpaceCounts) Occupied() int {
	return c.Reserved + c.ExpiringSoon
}

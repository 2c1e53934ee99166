// Package service builds billing tickets for reservations and renders them as text.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freezestore/internal/pricing"
	"freezestore/internal/store"
	apperrors "freezestore/pkg/errors"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	Currency = "MXN"

	dateLayout      = "02/01/2006"
	timestampLayout = "02/01/2006 15:04"
	fileStampLayout = "20060102-150405"
)

var locale = language.MustParse("es-MX")

type TicketClient struct {
	Name  string `json:"name"`
	RFC   string `json:"rfc"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type LineItem struct {
	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`
}

type Ticket struct {
	Folio     string       `json:"folio"`
	IssuedAt  string       `json:"issued_at"`
	FileName  string       `json:"file_name"`
	Client    TicketClient `json:"client"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	TotalDays int          `json:"total_days"`
	SpaceIDs  []int        `json:"space_ids"`
	Spaces    string       `json:"spaces"`
	LineItems []LineItem   `json:"line_items"`
	Subtotal  float64      `json:"subtotal"`
	TaxLabel  string       `json:"tax_label"`
	Tax       float64      `json:"tax"`
	Total     float64      `json:"total"`
	Currency  string       `json:"currency"`
}

// Build assembles the ticket from the reservation's stored figures. Only the storage
// line and the tax label are derived, both from the reservation's own snapshot.
func Build(r model.Reservation, client model.Client, issuedAt time.Time, money *Money) *Ticket {
	storage := pricing.StorageCost(len(r.SpaceIDs), r.TotalDays, r.PricePerDay)
	return &Ticket{
		Folio:    r.ID,
		IssuedAt: issuedAt.Format(timestampLayout),
		FileName: FileName(r.ID, issuedAt),
		Client: TicketClient{
			Name:  client.Name,
			RFC:   client.RFC,
			Phone: client.Phone,
			Email: client.Email,
		},
		StartDate: r.StartDate.Format(dateLayout),
		EndDate:   r.EndDate.Format(dateLayout),
		TotalDays: r.TotalDays,
		SpaceIDs:  r.SpaceIDs,
		Spaces:    SpaceList(r.SpaceIDs),
		LineItems: []LineItem{
			{
				Concept: fmt.Sprintf("Almacenamiento (%d espacios × %d días × %s)",
					len(r.SpaceIDs), r.TotalDays, money.Format(r.PricePerDay)),
				Amount: storage,
			},
			{Concept: "Maniobra (carga/descarga)", Amount: r.HandlingFee},
		},
		Subtotal: r.Subtotal,
		TaxLabel: pricing.TaxLabel(pricing.ReservationTaxRate(r)),
		Tax:      r.Tax,
		Total:    r.Total,
		Currency: Currency,
	}
}

// FileName is the download name without extension, e.g. ticket-r12-20240315-143000.
func FileName(id string, issuedAt time.Time) string {
	return "ticket-" + id + "-" + issuedAt.Format(fileStampLayout)
}

// SpaceList renders ids as "#1, #2, #3".
func SpaceList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, ", ")
}

// Money formats amounts for es-MX with two decimals and a dollar sign.
type Money struct {
	printer *message.Printer
}

func NewMoney() *Money {
	return &Money{printer: message.NewPrinter(locale)}
}

func (m *Money) Format(amount float64) string {
	return "$" + m.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

type TicketService interface {
	Get(ctx context.Context, reservationID string) (*Ticket, error)
	Render(t *Ticket) string
}

type ticketService struct {
	store *store.Store
	money *Money
	log   *logger.Logger
}

func NewTicketService(st *store.Store, log *logger.Logger) TicketService {
	return &ticketService{store: st, money: NewMoney(), log: log}
}

func (s *ticketService) Get(_ context.Context, reservationID string) (*Ticket, error) {
	if reservationID == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	snap := s.store.Snapshot()
	reservation, ok := snap.Reservation(reservationID)
	if !ok {
		return nil, apperrors.NotFoundWithID("Reservation", reservationID)
	}
	client, ok := snap.Client(reservation.ClientID)
	if !ok {
		s.log.Warn("Ticket requested for reservation with unknown client", "id", reservationID, "client_id", reservation.ClientID)
		return nil, apperrors.NotFoundWithID("Client", reservation.ClientID)
	}

	return Build(reservation, client, snap.Now, s.money), nil
}

func (s *ticketService) Render(t *Ticket) string {
	return Render(t, s.money)
}

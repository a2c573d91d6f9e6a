//go:build unit || e2e

package builder

import (
	"time"

	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/reservation"
	reqdto "luxstay-api/internal/handler/dto/request"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID                 uuid.UUID
	RoomID             uuid.UUID
	UserID             uuid.UUID
	HotelID            uuid.UUID
	HotelOwnerID       uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	GuestCount         int
	Capacity           int
	PricePerNightCents int64
	RoomAvailable      bool
	Status             reservation.Status
	SpecialRequests    string
	CreatedAt          time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:                 uuid.New(),
		RoomID:             uuid.New(),
		UserID:             uuid.New(),
		HotelID:            uuid.New(),
		HotelOwnerID:       uuid.New(),
		CheckIn:            time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:           time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC),
		GuestCount:         2,
		Capacity:           2,
		PricePerNightCents: 10000,
		RoomAvailable:      true,
		Status:             reservation.StatusPending,
		CreatedAt:          time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) PricePerNight() money.Money {
	m, _ := money.FromCents(r.PricePerNightCents)
	return m
}

func (r *ReservationBuilder) RoomSpec() reservation.RoomSpec {
	return reservation.RoomSpec{
		ID:            r.RoomID,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight(),
		IsAvailable:   r.RoomAvailable,
	}
}

func (r *ReservationBuilder) BookingRequest() reservation.BookingRequest {
	return reservation.BookingRequest{
		UserID:          r.UserID,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		GuestCount:      r.GuestCount,
		SpecialRequests: reservation.NewSpecialRequests(r.SpecialRequests),
	}
}

func (r *ReservationBuilder) nights() int64 {
	period, err := reservation.NewStayPeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		return 0
	}
	return period.Nights()
}

func (r *ReservationBuilder) TotalPriceCents() int64 {
	return r.PricePerNightCents * r.nights()
}

// Build methods
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	period, err := reservation.NewStayPeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		panic(err)
	}
	total, _ := money.FromCents(r.TotalPriceCents())
	return reservation.ReconstructReservation(
		r.ID, r.RoomID, r.UserID,
		period,
		r.GuestCount,
		total,
		r.Status,
		reservation.NewSpecialRequests(r.SpecialRequests),
		r.CreatedAt, r.CreatedAt,
	)
}

func (r *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:                 r.ID,
		RoomID:             r.RoomID,
		UserID:             r.UserID,
		CheckIn:            r.CheckIn,
		CheckOut:           r.CheckOut,
		GuestCount:         r.GuestCount,
		TotalPriceCents:    r.TotalPriceCents(),
		Status:             r.Status.String(),
		SpecialRequests:    reservation.NewSpecialRequests(r.SpecialRequests).Ptr(),
		PricePerNightCents: r.PricePerNightCents,
		HotelOwnerID:       r.HotelOwnerID,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildRoomSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 r.RoomID,
		HotelID:            r.HotelID,
		HotelOwnerID:       r.HotelOwnerID,
		Name:               "Ocean Suite",
		Description:        "Suite with a view over the bay",
		RoomType:           "SUITE",
		PricePerNightCents: r.PricePerNightCents,
		Capacity:           r.Capacity,
		Images:             []string{},
		Amenities:          []string{},
		IsAvailable:        r.RoomAvailable,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              r.ID,
		RoomID:          r.RoomID,
		UserID:          r.UserID,
		CheckInDate:     r.CheckIn,
		CheckOutDate:    r.CheckOut,
		GuestCount:      r.GuestCount,
		TotalPriceCents: r.TotalPriceCents(),
		Status:          r.Status.String(),
		SpecialRequests: reservation.NewSpecialRequests(r.SpecialRequests).Ptr(),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.CreatedAt,
		Room: queries.ReservationRoomSummary{
			ID:                 r.RoomID,
			Name:               "Ocean Suite",
			RoomType:           "SUITE",
			PricePerNightCents: r.PricePerNightCents,
			Capacity:           r.Capacity,
		},
		Hotel: queries.ReservationHotelSummary{
			ID:      r.HotelID,
			Name:    "Grand Plaza",
			City:    "Lisbon",
			Country: "Portugal",
			OwnerID: r.HotelOwnerID,
		},
		Guest: queries.GuestSummary{
			ID:        r.UserID,
			Email:     "guest@example.com",
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}
}

func (r *ReservationBuilder) BuildInfra() sqlc.GetReservationByIDRow {
	requests := pgtype.Text{}
	if r.SpecialRequests != "" {
		requests = pgtype.Text{String: r.SpecialRequests, Valid: true}
	}
	return sqlc.GetReservationByIDRow{
		ID:                 r.ID,
		RoomID:             r.RoomID,
		UserID:             r.UserID,
		CheckInDate:        pgtype.Timestamptz{Time: r.CheckIn, Valid: true},
		CheckOutDate:       pgtype.Timestamptz{Time: r.CheckOut, Valid: true},
		GuestCount:         int32(r.GuestCount),
		TotalPriceCents:    r.TotalPriceCents(),
		Status:             r.Status.String(),
		SpecialRequests:    requests,
		CreatedAt:          pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		RoomName:           "Ocean Suite",
		RoomType:           "SUITE",
		PricePerNightCents: r.PricePerNightCents,
		RoomCapacity:       int32(r.Capacity),
		HotelID:            r.HotelID,
		HotelName:          "Grand Plaza",
		HotelCity:          "Lisbon",
		HotelCountry:       "Portugal",
		HotelOwnerID:       r.HotelOwnerID,
		GuestEmail:         "guest@example.com",
		GuestFirstName:     "Jane",
		GuestLastName:      "Doe",
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		RoomID:       r.RoomID,
		CheckInDate:  r.CheckIn.Format("2006-01-02"),
		CheckOutDate: r.CheckOut.Format("2006-01-02"),
		GuestCount:   r.GuestCount,
	}
	if r.SpecialRequests != "" {
		requests := r.SpecialRequests
		req.SpecialRequests = &requests
	}
	return req
}

// Fluent builder methods
func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithGuest(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithHotelOwner(ownerID uuid.UUID) *ReservationBuilder {
	r.HotelOwnerID = ownerID
	return r
}

func (r *ReservationBuilder) WithDates(checkIn, checkOut time.Time) *ReservationBuilder {
	r.CheckIn = checkIn
	r.CheckOut = checkOut
	return r
}

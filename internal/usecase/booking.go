package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/extra"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound = queries.ErrBookingNotFound
	ErrRoomNotFound    = errors.New("room not found")
	ErrExtraNotFound   = errors.New("extra not found")
	ErrInvalidStatus   = errors.New("invalid booking status")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, paymentStatus booking.PaymentStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type ExtraRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*extra.Extra, error)
}

type QuoteParams struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	ExtraIDs []uuid.UUID
}

type CreateBookingParams struct {
	QuoteParams
	UserID uuid.UUID
	// QuotedTotalCents carries the total the wizard displayed; the server
	// recomputes the breakdown and rejects the submission on disagreement.
	QuotedTotalCents *int64
}

type BookingUseCase interface {
	QuotePrice(ctx context.Context, params QuoteParams) (*booking.PriceBreakdown, error)
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingDetailView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingDetailView, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	extraRepo      ExtraRepository
	bookingQueries queries.BookingQueries
	factory        *booking.Factory
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	extraRepo ExtraRepository,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		extraRepo:      extraRepo,
		bookingQueries: bookingQueries,
		factory:        factory,
		db:             db,
		clock:          clock,
	}
}

// QuotePrice computes the running total the wizard shows. The stay period is
// forgiving here (bad dates clamp to one night); only submission enforces a
// valid range.
func (u *bookingUseCaseImpl) QuotePrice(ctx context.Context, params QuoteParams) (*booking.PriceBreakdown, error) {
	roomEntity, extras, guests, err := u.loadQuoteInputs(ctx, params)
	if err != nil {
		return nil, err
	}

	stay := booking.NewStayPeriod(params.CheckIn, params.CheckOut)
	breakdown := booking.Quote(roomEntity, stay, guests, extras)
	return &breakdown, nil
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingDetailView, error) {
	roomEntity, extras, guests, err := u.loadQuoteInputs(ctx, params.QuoteParams)
	if err != nil {
		return nil, err
	}

	stay := booking.NewStayPeriod(params.CheckIn, params.CheckOut)
	bookingEntity, err := u.factory.CreateBooking(roomEntity, params.UserID, stay, guests, extras, params.QuotedTotalCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := u.bookingRepo.Create(ctx, tx, bookingEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.bookingQueries.GetByID(ctx, bookingEntity.ID())
}

// UpdateStatus persists the status together with the payment status derived
// from it, then re-reads the row so the caller always sees the store's view
// rather than an optimistic local copy.
func (u *bookingUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingDetailView, error) {
	newStatus := booking.Status(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	paymentStatus := booking.PaymentStatusFor(newStatus)
	if err := u.bookingRepo.UpdateStatus(ctx, id, newStatus, paymentStatus, u.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.bookingQueries.GetByID(ctx, id)
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *bookingUseCaseImpl) loadQuoteInputs(ctx context.Context, params QuoteParams) (*room.Room, []*extra.Extra, booking.GuestCount, error) {
	roomEntity, err := u.roomRepo.FindByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, booking.GuestCount{}, ErrRoomNotFound
		}
		return nil, nil, booking.GuestCount{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var extras []*extra.Extra
	if len(params.ExtraIDs) > 0 {
		extras, err = u.extraRepo.FindByIDs(ctx, params.ExtraIDs)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil, booking.GuestCount{}, ErrExtraNotFound
			}
			return nil, nil, booking.GuestCount{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	guests, err := booking.NewGuestCount(params.Adults, params.Children)
	if err != nil {
		return nil, nil, booking.GuestCount{}, errs.Mark(err, ErrDomainValidationFailed)
	}

	return roomEntity, extras, guests, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-api/internal/models"
	"travel-api/internal/repository"
	"travel-api/pkg/rabbitmq"
)

type BookingService interface {
	CreateBooking(ctx context.Context, guestID, listingID uuid.UUID, checkIn, checkOut time.Time, numberOfGuests int) (*models.Booking, error)
	GetBooking(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, actorID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	ListForListing(ctx context.Context, actorID, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, next models.BookingStatus) (*models.Booking, error)
	CancelBooking(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, guestID, listingID uuid.UUID, checkIn, checkOut time.Time, numberOfGuests int) (*models.Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, invalidField("check_out_date", "must be after check_in_date")
	}
	today := time.Now().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return nil, invalidField("check_in_date", "cannot be in the past")
	}
	if numberOfGuests < 1 {
		return nil, invalidField("number_of_guests", "must be at least 1")
	}

	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the listing row so concurrent booking attempts serialize.
		listing, err := s.listingRepo.FindByIDForUpdate(ctx, tx, listingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListingNotFound
			}
			return err
		}

		if !listing.Available {
			return ErrListingUnavailable
		}
		if listing.HostID == guestID {
			return ErrOwnListing
		}
		if numberOfGuests > listing.MaxGuests {
			return invalidField("number_of_guests", "exceeds the listing's maximum")
		}

		booking := &models.Booking{
			ListingID:      listingID,
			GuestID:        guestID,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			NumberOfGuests: numberOfGuests,
			Status:         models.StatusPending,
		}

		overlapping, err := s.bookingRepo.CountOverlapping(ctx, tx, listingID, booking)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrDatesUnavailable
		}

		booking.TotalPrice = listing.PricePerNight * float64(booking.Nights())

		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", result)
	}
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.findParticipantBooking(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, actorID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindByParticipant(ctx, actorID, status)
}

func (s *bookingService) ListForListing(ctx context.Context, actorID, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if listing.HostID != actorID {
		return nil, ErrNotHost
	}
	return s.bookingRepo.FindByListingID(ctx, listingID, status)
}

// UpdateStatus applies one step of the booking lifecycle. The booking row is
// locked for the read-check-write so concurrent transitions serialize instead
// of last-write-wins.
func (s *bookingService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, next models.BookingStatus) (*models.Booking, error) {
	if !next.Valid() || next == models.StatusPending {
		return nil, invalidField("status", "must be confirmed, cancelled or completed")
	}

	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := authorizeTransition(booking, actorID, next); err != nil {
			return err
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, id, next); err != nil {
			return err
		}
		booking.Status = next
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking."+string(next), result)
	}
	return result, nil
}

// authorizeTransition enforces who may move a booking where: hosts confirm
// and complete, either participant cancels, terminal states reject everything.
func authorizeTransition(booking *models.Booking, actorID uuid.UUID, next models.BookingStatus) error {
	isGuest := booking.GuestID == actorID
	isHost := booking.Listing != nil && booking.Listing.HostID == actorID
	if !isGuest && !isHost {
		return ErrNotParticipant
	}

	if !booking.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	switch next {
	case models.StatusConfirmed, models.StatusCompleted:
		if !isHost {
			return ErrNotHost
		}
	}
	return nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error) {
	return s.UpdateStatus(ctx, actorID, id, models.StatusCancelled)
}

// findParticipantBooking loads the booking and enforces that the actor is
// the guest or the listing's host.
func (s *bookingService) findParticipantBooking(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	isGuest := booking.GuestID == actorID
	isHost := booking.Listing != nil && booking.Listing.HostID == actorID
	if !isGuest && !isHost {
		return nil, ErrNotParticipant
	}
	return booking, nil
}

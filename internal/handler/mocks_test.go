package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-api/internal/models"
	"travel-api/internal/repository"
	"travel-api/internal/service"
)

// --- Mock ListingService ---

type mockListingService struct {
	createFn func(ctx context.Context, hostID uuid.UUID, listing *models.Listing) error
	getFn    func(ctx context.Context, id uuid.UUID) (*service.ListingDetail, error)
	searchFn func(ctx context.Context, filter repository.ListingFilter) ([]service.ListingDetail, int64, error)
	updateFn func(ctx context.Context, actorID, id uuid.UUID, updated *models.Listing) (*service.ListingDetail, error)
	deleteFn func(ctx context.Context, actorID, id uuid.UUID) error
}

func (m *mockListingService) CreateListing(ctx context.Context, hostID uuid.UUID, listing *models.Listing) error {
	return m.createFn(ctx, hostID, listing)
}
func (m *mockListingService) GetListing(ctx context.Context, id uuid.UUID) (*service.ListingDetail, error) {
	return m.getFn(ctx, id)
}
func (m *mockListingService) SearchListings(ctx context.Context, filter repository.ListingFilter) ([]service.ListingDetail, int64, error) {
	return m.searchFn(ctx, filter)
}
func (m *mockListingService) UpdateListing(ctx context.Context, actorID, id uuid.UUID, updated *models.Listing) (*service.ListingDetail, error) {
	return m.updateFn(ctx, actorID, id, updated)
}
func (m *mockListingService) DeleteListing(ctx context.Context, actorID, id uuid.UUID) error {
	return m.deleteFn(ctx, actorID, id)
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn         func(ctx context.Context, guestID, listingID uuid.UUID, checkIn, checkOut time.Time, numberOfGuests int) (*models.Booking, error)
	getFn            func(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error)
	listFn           func(ctx context.Context, actorID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	listForListingFn func(ctx context.Context, actorID, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	updateStatusFn   func(ctx context.Context, actorID, id uuid.UUID, next models.BookingStatus) (*models.Booking, error)
	cancelFn         func(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, guestID, listingID uuid.UUID, checkIn, checkOut time.Time, numberOfGuests int) (*models.Booking, error) {
	return m.createFn(ctx, guestID, listingID, checkIn, checkOut, numberOfGuests)
}
func (m *mockBookingService) GetBooking(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error) {
	return m.getFn(ctx, actorID, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, actorID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return m.listFn(ctx, actorID, status)
}
func (m *mockBookingService) ListForListing(ctx context.Context, actorID, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return m.listForListingFn(ctx, actorID, listingID, status)
}
func (m *mockBookingService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, next models.BookingStatus) (*models.Booking, error) {
	return m.updateStatusFn(ctx, actorID, id, next)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, actorID, id uuid.UUID) (*models.Booking, error) {
	return m.cancelFn(ctx, actorID, id)
}

// --- Mock ReviewService ---

type mockReviewService struct {
	createFn func(ctx context.Context, guestID, listingID uuid.UUID, review *models.Review) error
	getFn    func(ctx context.Context, id uuid.UUID) (*models.Review, error)
	listFn   func(ctx context.Context, listingID uuid.UUID) ([]models.Review, error)
	updateFn func(ctx context.Context, actorID, id uuid.UUID, rating int, comment string) (*models.Review, error)
	deleteFn func(ctx context.Context, actorID, id uuid.UUID) error
}

func (m *mockReviewService) CreateReview(ctx context.Context, guestID, listingID uuid.UUID, review *models.Review) error {
	return m.createFn(ctx, guestID, listingID, review)
}
func (m *mockReviewService) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return m.getFn(ctx, id)
}
func (m *mockReviewService) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	return m.listFn(ctx, listingID)
}
func (m *mockReviewService) UpdateReview(ctx context.Context, actorID, id uuid.UUID, rating int, comment string) (*models.Review, error) {
	return m.updateFn(ctx, actorID, id, rating, comment)
}
func (m *mockReviewService) DeleteReview(ctx context.Context, actorID, id uuid.UUID) error {
	return m.deleteFn(ctx, actorID, id)
}

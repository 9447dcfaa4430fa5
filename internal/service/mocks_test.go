package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-api/internal/models"
	"travel-api/internal/repository"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *models.User) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	findAllFn        func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAllFn(ctx)
}

// --- Mock ListingRepository ---

type mockListingRepo struct {
	createFn   func(ctx context.Context, listing *models.Listing) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	searchFn   func(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, int64, error)
	updateFn   func(ctx context.Context, listing *models.Listing) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	return m.createFn(ctx, listing)
}
func (m *mockListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockListingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Listing, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockListingRepo) Search(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, int64, error) {
	return m.searchFn(ctx, filter)
}
func (m *mockListingRepo) Update(ctx context.Context, listing *models.Listing) error {
	return m.updateFn(ctx, listing)
}
func (m *mockListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}
func (m *mockListingRepo) GetDB() *gorm.DB { return nil }

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn            func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	findByIDFn          func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	findByListingFn     func(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	findByParticipantFn func(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	countOverlappingFn  func(ctx context.Context, tx *gorm.DB, listingID uuid.UUID, booking *models.Booking) (int64, error)
	updateStatusFn      func(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID, status models.BookingStatus) error
	hasCompletedStayFn  func(ctx context.Context, listingID, guestID uuid.UUID) (bool, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return m.createFn(ctx, tx, booking)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByListingID(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return m.findByListingFn(ctx, listingID, status)
}
func (m *mockBookingRepo) FindByParticipant(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return m.findByParticipantFn(ctx, userID, status)
}
func (m *mockBookingRepo) CountOverlapping(ctx context.Context, tx *gorm.DB, listingID uuid.UUID, booking *models.Booking) (int64, error) {
	return m.countOverlappingFn(ctx, tx, listingID, booking)
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID, status models.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, tx, bookingID, status)
	}
	return nil
}
func (m *mockBookingRepo) HasCompletedStay(ctx context.Context, listingID, guestID uuid.UUID) (bool, error) {
	return m.hasCompletedStayFn(ctx, listingID, guestID)
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Mock ReviewRepository ---

type mockReviewRepo struct {
	createFn                func(ctx context.Context, review *models.Review) error
	findByIDFn              func(ctx context.Context, id uuid.UUID) (*models.Review, error)
	findByListingFn         func(ctx context.Context, listingID uuid.UUID) ([]models.Review, error)
	findByListingAndGuestFn func(ctx context.Context, listingID, guestID uuid.UUID) (*models.Review, error)
	updateFn                func(ctx context.Context, review *models.Review) error
	deleteFn                func(ctx context.Context, id uuid.UUID) error
	averageRatingFn         func(ctx context.Context, listingID uuid.UUID) (*float64, error)
	countByListingFn        func(ctx context.Context, listingID uuid.UUID) (int64, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return m.createFn(ctx, review)
}
func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockReviewRepo) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	return m.findByListingFn(ctx, listingID)
}
func (m *mockReviewRepo) FindByListingAndGuest(ctx context.Context, listingID, guestID uuid.UUID) (*models.Review, error) {
	if m.findByListingAndGuestFn != nil {
		return m.findByListingAndGuestFn(ctx, listingID, guestID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockReviewRepo) Update(ctx context.Context, review *models.Review) error {
	return m.updateFn(ctx, review)
}
func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}
func (m *mockReviewRepo) AverageRating(ctx context.Context, listingID uuid.UUID) (*float64, error) {
	if m.averageRatingFn != nil {
		return m.averageRatingFn(ctx, listingID)
	}
	return nil, nil
}
func (m *mockReviewRepo) CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error) {
	if m.countByListingFn != nil {
		return m.countByListingFn(ctx, listingID)
	}
	return 0, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travel-api/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Booking, error)
	FindByListingID(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	CountOverlapping(ctx context.Context, tx *gorm.DB, listingID uuid.UUID, booking *models.Booking) (int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID, status models.BookingStatus) error
	HasCompletedStay(ctx context.Context, listingID, guestID uuid.UUID) (bool, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Guest").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate locks the booking row within the transaction so
// concurrent status transitions serialize. The listing rides along for
// authority checks; the lock covers the booking row itself.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	var listing models.Listing
	if err := tx.WithContext(ctx).First(&listing, "id = ?", booking.ListingID).Error; err != nil {
		return nil, err
	}
	booking.Listing = &listing
	return &booking, nil
}

func (r *bookingRepository) FindByListingID(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Where("listing_id = ?", listingID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("check_in_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByParticipant returns bookings the user takes part in, as guest or as
// host of the booked listing.
func (r *bookingRepository) FindByParticipant(ctx context.Context, userID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("bookings.guest_id = ? OR listings.host_id = ?", userID, userID)
	if status != nil {
		q = q.Where("bookings.status = ?", *status)
	}
	err := q.Preload("Listing").
		Order("bookings.check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountOverlapping counts pending or confirmed bookings whose date range
// intersects the candidate's. Ranges are half-open: checkout day is free.
func (r *bookingRepository) CountOverlapping(ctx context.Context, tx *gorm.DB, listingID uuid.UUID, booking *models.Booking) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("listing_id = ? AND status IN ?", listingID,
			[]models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Where("check_in_date < ? AND check_out_date > ?",
			booking.CheckOutDate, booking.CheckInDate).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

// HasCompletedStay reports whether the guest has at least one completed
// booking for the listing. Gates review creation.
func (r *bookingRepository) HasCompletedStay(ctx context.Context, listingID, guestID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("listing_id = ? AND guest_id = ? AND status = ?",
			listingID, guestID, models.StatusCompleted).
		Count(&count).Error
	return count > 0, err
}

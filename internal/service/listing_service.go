package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-api/internal/models"
	"travel-api/internal/repository"
)

// ListingDetail pairs a listing with its review aggregates, recomputed on
// every read rather than persisted.
type ListingDetail struct {
	Listing       *models.Listing
	AverageRating *float64
	TotalReviews  int64
}

type ListingService interface {
	CreateListing(ctx context.Context, hostID uuid.UUID, listing *models.Listing) error
	GetListing(ctx context.Context, id uuid.UUID) (*ListingDetail, error)
	SearchListings(ctx context.Context, filter repository.ListingFilter) ([]ListingDetail, int64, error)
	UpdateListing(ctx context.Context, actorID, id uuid.UUID, updated *models.Listing) (*ListingDetail, error)
	DeleteListing(ctx context.Context, actorID, id uuid.UUID) error
}

type listingService struct {
	listingRepo repository.ListingRepository
	reviewRepo  repository.ReviewRepository
}

func NewListingService(listingRepo repository.ListingRepository, reviewRepo repository.ReviewRepository) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
	}
}

func validateListing(listing *models.Listing) error {
	if listing.Title == "" {
		return invalidField("title", "is required")
	}
	if listing.Location == "" {
		return invalidField("location", "is required")
	}
	if listing.PricePerNight <= 0 {
		return invalidField("price_per_night", "must be greater than 0")
	}
	if !listing.PropertyType.Valid() {
		return invalidField("property_type", "must be one of apartment, house, condo, villa, cabin, loft, studio")
	}
	if listing.MaxGuests < 1 {
		return invalidField("max_guests", "must be at least 1")
	}
	if listing.Bedrooms < 0 {
		return invalidField("bedrooms", "must not be negative")
	}
	if listing.Bathrooms < 0 {
		return invalidField("bathrooms", "must not be negative")
	}
	return nil
}

func (s *listingService) CreateListing(ctx context.Context, hostID uuid.UUID, listing *models.Listing) error {
	listing.HostID = hostID
	if err := validateListing(listing); err != nil {
		return err
	}
	return s.listingRepo.Create(ctx, listing)
}

func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*ListingDetail, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return s.withAggregates(ctx, listing)
}

func (s *listingService) SearchListings(ctx context.Context, filter repository.ListingFilter) ([]ListingDetail, int64, error) {
	listings, total, err := s.listingRepo.Search(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	details := make([]ListingDetail, len(listings))
	for i := range listings {
		d, err := s.withAggregates(ctx, &listings[i])
		if err != nil {
			return nil, 0, err
		}
		details[i] = *d
	}
	return details, total, nil
}

func (s *listingService) UpdateListing(ctx context.Context, actorID, id uuid.UUID, updated *models.Listing) (*ListingDetail, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if listing.HostID != actorID {
		return nil, ErrNotHost
	}

	listing.Title = updated.Title
	listing.Description = updated.Description
	listing.Location = updated.Location
	listing.PricePerNight = updated.PricePerNight
	listing.PropertyType = updated.PropertyType
	listing.MaxGuests = updated.MaxGuests
	listing.Bedrooms = updated.Bedrooms
	listing.Bathrooms = updated.Bathrooms
	listing.Amenities = updated.Amenities
	listing.Available = updated.Available

	if err := validateListing(listing); err != nil {
		return nil, err
	}
	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return s.withAggregates(ctx, listing)
}

// DeleteListing removes the listing; dependent bookings and reviews cascade
// at the database level.
func (s *listingService) DeleteListing(ctx context.Context, actorID, id uuid.UUID) error {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	if listing.HostID != actorID {
		return ErrNotHost
	}
	return s.listingRepo.Delete(ctx, id)
}

func (s *listingService) withAggregates(ctx context.Context, listing *models.Listing) (*ListingDetail, error) {
	avg, err := s.reviewRepo.AverageRating(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	total, err := s.reviewRepo.CountByListing(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	return &ListingDetail{Listing: listing, AverageRating: avg, TotalReviews: total}, nil
}

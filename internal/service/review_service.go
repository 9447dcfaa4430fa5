package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-api/internal/models"
	"travel-api/internal/repository"
	"travel-api/pkg/rabbitmq"
)

type ReviewService interface {
	CreateReview(ctx context.Context, guestID, listingID uuid.UUID, review *models.Review) error
	GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error)
	UpdateReview(ctx context.Context, actorID, id uuid.UUID, rating int, comment string) (*models.Review, error)
	DeleteReview(ctx context.Context, actorID, id uuid.UUID) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
	publisher   *rabbitmq.Publisher
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository, publisher *rabbitmq.Publisher) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

func validRating(rating int) bool {
	return rating >= models.MinRating && rating <= models.MaxRating
}

func (s *reviewService) CreateReview(ctx context.Context, guestID, listingID uuid.UUID, review *models.Review) error {
	if !validRating(review.Rating) {
		return invalidField("rating", "must be between 1 and 5")
	}

	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}

	stayed, err := s.bookingRepo.HasCompletedStay(ctx, listingID, guestID)
	if err != nil {
		return err
	}
	if !stayed {
		return ErrNotStayed
	}

	_, err = s.reviewRepo.FindByListingAndGuest(ctx, listingID, guestID)
	if err == nil {
		return ErrAlreadyReviewed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	review.ListingID = listingID
	review.GuestID = guestID
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("review.created", review)
	}
	return nil
}

func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return s.reviewRepo.FindByListingID(ctx, listingID)
}

func (s *reviewService) UpdateReview(ctx context.Context, actorID, id uuid.UUID, rating int, comment string) (*models.Review, error) {
	if !validRating(rating) {
		return nil, invalidField("rating", "must be between 1 and 5")
	}

	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.GuestID != actorID {
		return nil, ErrNotAuthor
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, actorID, id uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.GuestID != actorID {
		return ErrNotAuthor
	}
	return s.reviewRepo.Delete(ctx, id)
}

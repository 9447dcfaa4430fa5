package dto

import (
	"time"

	"github.com/google/uuid"

	"travel-api/internal/models"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

type ListingResponse struct {
	ListingID     uuid.UUID           `json:"listing_id"`
	Host          *UserResponse       `json:"host,omitempty"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Location      string              `json:"location"`
	PricePerNight float64             `json:"price_per_night"`
	PropertyType  models.PropertyType `json:"property_type"`
	MaxGuests     int                 `json:"max_guests"`
	Bedrooms      int                 `json:"bedrooms"`
	Bathrooms     int                 `json:"bathrooms"`
	Amenities     string              `json:"amenities"`
	AmenitiesList []string            `json:"amenities_list"`
	Available     bool                `json:"available"`
	AverageRating *float64            `json:"average_rating"`
	TotalReviews  int64               `json:"total_reviews"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type ListingPageResponse struct {
	Items    []ListingResponse `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type BookingResponse struct {
	BookingID      uuid.UUID            `json:"booking_id"`
	ListingID      uuid.UUID            `json:"listing_id"`
	GuestID        uuid.UUID            `json:"guest_id"`
	CheckInDate    string               `json:"check_in_date"`
	CheckOutDate   string               `json:"check_out_date"`
	NumberOfGuests int                  `json:"number_of_guests"`
	TotalPrice     float64              `json:"total_price"`
	Status         models.BookingStatus `json:"status"`
	DurationDays   int                  `json:"duration_days"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type ReviewResponse struct {
	ReviewID  uuid.UUID     `json:"review_id"`
	ListingID uuid.UUID     `json:"listing_id"`
	Guest     *UserResponse `json:"guest,omitempty"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func ToListingResponse(l *models.Listing, avgRating *float64, totalReviews int64) ListingResponse {
	resp := ListingResponse{
		ListingID:     l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		PropertyType:  l.PropertyType,
		MaxGuests:     l.MaxGuests,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		Amenities:     l.Amenities,
		AmenitiesList: l.AmenitiesList(),
		Available:     l.Available,
		AverageRating: avgRating,
		TotalReviews:  totalReviews,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
	if l.Host != nil {
		host := ToUserResponse(l.Host)
		resp.Host = &host
	}
	return resp
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		BookingID:      b.ID,
		ListingID:      b.ListingID,
		GuestID:        b.GuestID,
		CheckInDate:    b.CheckInDate.Format(DateLayout),
		CheckOutDate:   b.CheckOutDate.Format(DateLayout),
		NumberOfGuests: b.NumberOfGuests,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
		DurationDays:   b.Nights(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func ToReviewResponse(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ReviewID:  r.ID,
		ListingID: r.ListingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Guest != nil {
		guest := ToUserResponse(r.Guest)
		resp.Guest = &guest
	}
	return resp
}

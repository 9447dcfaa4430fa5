package dto

import "github.com/google/uuid"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ListingRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	Location      string  `json:"location" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	PropertyType  string  `json:"property_type" validate:"required"`
	MaxGuests     int     `json:"max_guests" validate:"required,gte=1"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
	Amenities     string  `json:"amenities"`
	Available     *bool   `json:"available"`
}

type CreateBookingRequest struct {
	ListingID      uuid.UUID `json:"listing_id" validate:"required"`
	CheckInDate    string    `json:"check_in_date" validate:"required"`
	CheckOutDate   string    `json:"check_out_date" validate:"required"`
	NumberOfGuests int       `json:"number_of_guests" validate:"required,gte=1"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateReviewRequest struct {
	Rating    int        `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string     `json:"comment"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

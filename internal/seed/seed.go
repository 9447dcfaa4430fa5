// Package seed populates the database with synthetic users, listings,
// bookings and reviews for development and testing. Generated data honors
// every schema invariant; the run aborts on the first violation instead of
// leaving a partially seeded store.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"travel-api/internal/models"
)

type Options struct {
	// Count is the number of records to generate per entity type.
	Count int
	// Clear truncates existing data before seeding; otherwise records append.
	Clear bool
	// Rand allows deterministic seeding in tests. Defaults to a time-seeded source.
	Rand *rand.Rand
}

type Result struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

var firstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emma", "Chris", "Lisa",
	"Robert", "Anna", "James", "Maria", "William", "Jennifer", "Daniel",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
	"San Diego", "Dallas", "Austin", "Seattle", "Denver", "Boston", "Nashville",
	"Portland", "Las Vegas", "Memphis", "Baltimore", "Milwaukee",
}

var states = []string{"NY", "CA", "TX", "FL", "IL", "PA", "OH", "GA", "NC", "MI"}

var propertyTypes = []models.PropertyType{
	models.PropertyApartment, models.PropertyHouse, models.PropertyCondo,
	models.PropertyVilla, models.PropertyCabin, models.PropertyLoft,
	models.PropertyStudio,
}

var amenitySets = []string{
	"WiFi,Air Conditioning,Kitchen,Parking",
	"WiFi,Pool,Gym,Balcony",
	"WiFi,Kitchen,Washer,Dryer,Parking",
	"WiFi,Hot Tub,Fireplace,Garden",
	"WiFi,Beach Access,Kitchen,BBQ",
	"WiFi,Mountain View,Hiking Trails,Kitchen",
	"WiFi,City View,Elevator,Concierge",
	"WiFi,Pet Friendly,Garden,Parking",
}

var descriptions = []string{
	"Perfect for travelers looking for comfort and convenience. This property offers all the amenities you need for a memorable stay.",
	"A beautifully designed space that combines modern comfort with local charm. Ideal for both business and leisure travelers.",
	"Enjoy your stay in this well-appointed property featuring contemporary amenities and easy access to local attractions.",
	"This delightful property provides a peaceful retreat while keeping you close to the city's best dining and entertainment options.",
	"A stylish and comfortable property that serves as your perfect home base for exploring the local area and attractions.",
}

var comments = []string{
	"Great place to stay! Very clean and comfortable. Host was responsive and helpful.",
	"Perfect location with easy access to attractions. The amenities were exactly as described.",
	"Beautiful property with amazing views. Would definitely recommend to others!",
	"Comfortable and well-equipped. Everything we needed for our stay was provided.",
	"Exceeded our expectations! The space was even better than the photos showed.",
	"Good value for money. Clean, comfortable, and in a convenient location.",
	"Decent stay overall. Property was as described and met our basic needs.",
	"Clean and comfortable with good amenities. A few minor issues but overall positive.",
	"Solid choice for the price. Nothing fancy but clean and functional.",
}

func Run(db *gorm.DB, opts Options) (*Result, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", opts.Count)
	}
	// Bookings need a guest distinct from the host, so a run creates at
	// least 2 users. Checked before any write.
	if opts.Count < 2 {
		return nil, fmt.Errorf("seeding bookings requires at least 2 users per run, got count %d", opts.Count)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var result *Result

	// One transaction for the whole run: a failure rolls everything back
	// instead of leaving a partially seeded store.
	err := db.Transaction(func(tx *gorm.DB) error {
		if opts.Clear {
			log.Println("clearing existing data...")
			// Child tables first to satisfy foreign keys.
			for _, table := range []string{"reviews", "bookings", "listings", "users"} {
				if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
					return fmt.Errorf("clear %s: %w", table, err)
				}
			}
		}

		users, err := createUsers(tx, rng, opts.Count)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		listings, err := createListings(tx, rng, opts.Count, users)
		if err != nil {
			return fmt.Errorf("seed listings: %w", err)
		}

		bookings, err := createBookings(tx, rng, opts.Count, listings, users)
		if err != nil {
			return fmt.Errorf("seed bookings: %w", err)
		}

		reviews, err := createReviews(tx, rng, opts.Count, bookings)
		if err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}

		result = &Result{
			Users:    len(users),
			Listings: len(listings),
			Bookings: len(bookings),
			Reviews:  reviews,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func createUsers(db *gorm.DB, rng *rand.Rand, count int) ([]models.User, error) {
	// Offset usernames past existing rows so append runs stay unique.
	var existing int64
	if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last), int(existing)+i+1)

		user := models.User{
			Username:  username,
			FirstName: first,
			LastName:  last,
			Email:     username + "@example.com",
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createListings(db *gorm.DB, rng *rand.Rand, count int, users []models.User) ([]models.Listing, error) {
	listings := make([]models.Listing, 0, count)
	for i := 0; i < count; i++ {
		propertyType := propertyTypes[rng.Intn(len(propertyTypes))]
		city := cities[rng.Intn(len(cities))]
		host := users[rng.Intn(len(users))]

		listing := models.Listing{
			HostID:        host.ID,
			Title:         listingTitle(rng, propertyType, city),
			Description:   descriptions[rng.Intn(len(descriptions))],
			Location:      fmt.Sprintf("%s, %s", city, states[rng.Intn(len(states))]),
			PricePerNight: float64(50 + rng.Intn(451)),
			PropertyType:  propertyType,
			MaxGuests:     1 + rng.Intn(8),
			Bedrooms:      1 + rng.Intn(4),
			Bathrooms:     1 + rng.Intn(3),
			Amenities:     amenitySets[rng.Intn(len(amenitySets))],
			Available:     rng.Intn(4) != 0, // 75% available
		}
		if err := db.Create(&listing).Error; err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func listingTitle(rng *rand.Rand, propertyType models.PropertyType, city string) string {
	templates := []string{
		"Cozy %s in %s",
		"Spacious %s in downtown %s",
		"Luxury %s in %s center",
		"Charming %s near %s attractions",
		"Modern %s with great %s views",
	}
	name := strings.ToUpper(string(propertyType)[:1]) + string(propertyType)[1:]
	return fmt.Sprintf(templates[rng.Intn(len(templates))], name, city)
}

type dateRange struct {
	in, out time.Time
}

func rangesOverlap(a, b dateRange) bool {
	return a.in.Before(b.out) && a.out.After(b.in)
}

func createBookings(db *gorm.DB, rng *rand.Rand, count int, listings []models.Listing, users []models.User) ([]models.Booking, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	booked := make(map[int][]dateRange, len(listings))

	bookings := make([]models.Booking, 0, count)
	for i := 0; i < count; i++ {
		listingIdx := rng.Intn(len(listings))
		listing := listings[listingIdx]

		guest := users[rng.Intn(len(users))]
		for guest.ID == listing.HostID {
			guest = users[rng.Intn(len(users))]
		}

		checkIn := today.AddDate(0, 0, -rng.Intn(180))
		nights := 1 + rng.Intn(14)
		checkOut := checkIn.AddDate(0, 0, nights)

		// Skip candidates that would double-book the listing; matches how
		// real booking creation rejects overlapping pending/confirmed stays.
		candidate := dateRange{in: checkIn, out: checkOut}
		conflict := false
		for _, r := range booked[listingIdx] {
			if rangesOverlap(candidate, r) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		booking := models.Booking{
			ListingID:      listing.ID,
			GuestID:        guest.ID,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			NumberOfGuests: 1 + rng.Intn(listing.MaxGuests),
			TotalPrice:     listing.PricePerNight * float64(nights),
			Status:         statusForDates(rng, today, checkIn, checkOut),
		}
		if err := db.Create(&booking).Error; err != nil {
			return nil, err
		}
		if booking.Status == models.StatusPending || booking.Status == models.StatusConfirmed {
			booked[listingIdx] = append(booked[listingIdx], candidate)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// statusForDates mirrors how real bookings age: past stays are mostly
// completed, in-progress stays are confirmed, future ones mixed.
func statusForDates(rng *rand.Rand, today, checkIn, checkOut time.Time) models.BookingStatus {
	switch {
	case checkOut.Before(today):
		if rng.Intn(5) == 0 {
			return models.StatusCancelled
		}
		return models.StatusCompleted
	case !checkIn.After(today) && !checkOut.Before(today):
		return models.StatusConfirmed
	default:
		switch rng.Intn(10) {
		case 0:
			return models.StatusCancelled
		case 1, 2, 3:
			return models.StatusConfirmed
		default:
			return models.StatusPending
		}
	}
}

func createReviews(db *gorm.DB, rng *rand.Rand, count int, bookings []models.Booking) (int, error) {
	type pair struct{ listing, guest string }
	seen := make(map[pair]bool)

	created := 0
	for i := range bookings {
		if created >= count {
			break
		}
		booking := &bookings[i]
		if booking.Status != models.StatusCompleted {
			continue
		}
		key := pair{booking.ListingID.String(), booking.GuestID.String()}
		if seen[key] {
			continue
		}
		seen[key] = true

		comment := comments[rng.Intn(len(comments))]
		review := models.Review{
			ListingID: booking.ListingID,
			GuestID:   booking.GuestID,
			BookingID: &booking.ID,
			Rating:    ratingForComment(rng, comment),
			Comment:   comment,
		}
		if err := db.Create(&review).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// ratingForComment keeps the score roughly in line with the comment's tone.
func ratingForComment(rng *rand.Rand, comment string) int {
	lower := strings.ToLower(comment)
	switch {
	case strings.Contains(lower, "great") || strings.Contains(lower, "perfect") || strings.Contains(lower, "exceeded"):
		return 4 + rng.Intn(2)
	case strings.Contains(lower, "decent") || strings.Contains(lower, "solid") || strings.Contains(lower, "minor issues"):
		return 3 + rng.Intn(2)
	default:
		return 3 + rng.Intn(3)
	}
}

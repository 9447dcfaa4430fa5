//go:build integration

package integration

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-api/internal/models"
	"travel-api/internal/seed"
)

func TestSeedCounts(t *testing.T) {
	cleanTables()

	result, err := seed.Run(testDB, seed.Options{
		Count: 10,
		Rand:  rand.New(rand.NewSource(42)),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.Users)
	assert.Equal(t, 10, result.Listings)

	var userCount, listingCount int64
	testDB.Model(&models.User{}).Count(&userCount)
	testDB.Model(&models.Listing{}).Count(&listingCount)
	assert.Equal(t, int64(10), userCount)
	assert.Equal(t, int64(10), listingCount)
}

func TestSeedRejectedCountWritesNothing(t *testing.T) {
	cleanTables()

	// A single user cannot host and guest the same booking, so the run is
	// rejected before touching the database.
	_, err := seed.Run(testDB, seed.Options{Count: 1})
	require.Error(t, err)

	var userCount int64
	testDB.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(0), userCount, "a rejected run must not persist partial data")
}

func TestSeedReferentialIntegrity(t *testing.T) {
	cleanTables()

	_, err := seed.Run(testDB, seed.Options{
		Count: 10,
		Rand:  rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)

	var dangling int64
	testDB.Raw(`
		SELECT COUNT(*) FROM bookings b
		LEFT JOIN listings l ON l.id = b.listing_id
		LEFT JOIN users u ON u.id = b.guest_id
		WHERE l.id IS NULL OR u.id IS NULL
	`).Scan(&dangling)
	assert.Equal(t, int64(0), dangling, "every booking must reference a seeded listing and guest")

	testDB.Raw(`
		SELECT COUNT(*) FROM reviews r
		LEFT JOIN listings l ON l.id = r.listing_id
		LEFT JOIN users u ON u.id = r.guest_id
		WHERE l.id IS NULL OR u.id IS NULL
	`).Scan(&dangling)
	assert.Equal(t, int64(0), dangling, "every review must reference a seeded listing and guest")

	// No guest may book their own listing.
	var selfBookings int64
	testDB.Raw(`
		SELECT COUNT(*) FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		WHERE l.host_id = b.guest_id
	`).Scan(&selfBookings)
	assert.Equal(t, int64(0), selfBookings)
}

func TestSeedDataInvariants(t *testing.T) {
	cleanTables()

	_, err := seed.Run(testDB, seed.Options{
		Count: 25,
		Rand:  rand.New(rand.NewSource(99)),
	})
	require.NoError(t, err)

	var listings []models.Listing
	require.NoError(t, testDB.Find(&listings).Error)
	for _, l := range listings {
		assert.Greater(t, l.PricePerNight, 0.0)
		assert.GreaterOrEqual(t, l.MaxGuests, 1)
		assert.True(t, l.PropertyType.Valid(), "property type %q", l.PropertyType)
	}

	var bookings []models.Booking
	require.NoError(t, testDB.Find(&bookings).Error)
	for _, b := range bookings {
		assert.True(t, b.CheckOutDate.After(b.CheckInDate))
		assert.GreaterOrEqual(t, b.NumberOfGuests, 1)
		assert.True(t, b.Status.Valid(), "status %q", b.Status)
	}

	var reviews []models.Review
	require.NoError(t, testDB.Find(&reviews).Error)
	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.Rating, models.MinRating)
		assert.LessOrEqual(t, r.Rating, models.MaxRating)
	}
}

func TestSeedClear(t *testing.T) {
	cleanTables()

	_, err := seed.Run(testDB, seed.Options{Count: 5, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	_, err = seed.Run(testDB, seed.Options{Count: 5, Clear: true, Rand: rand.New(rand.NewSource(2))})
	require.NoError(t, err)

	var userCount int64
	testDB.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(5), userCount, "clear run should replace, not append")
}

func TestSeedAppendKeepsUsernamesUnique(t *testing.T) {
	cleanTables()

	_, err := seed.Run(testDB, seed.Options{Count: 5, Rand: rand.New(rand.NewSource(3))})
	require.NoError(t, err)

	_, err = seed.Run(testDB, seed.Options{Count: 5, Rand: rand.New(rand.NewSource(3))})
	require.NoError(t, err, "append run must not collide on usernames")

	var userCount int64
	testDB.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(10), userCount)
}

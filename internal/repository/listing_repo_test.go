package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB opens a connection-less gorm handle that only builds SQL, so
// generated statements can be inspected without a live database.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=postgres dbname=travel_db",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	var captured []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = append(captured, tx.Statement.SQL.String())
	}))
	return db, &captured
}

func TestListingFindByIDForUpdate_TakesRowLock(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewListingRepository(db)

	_, _ = repo.FindByIDForUpdate(context.Background(), db, uuid.New())

	require.NotEmpty(t, *captured)
	assert.Contains(t, (*captured)[0], "FOR UPDATE")
}

func TestBookingFindByIDForUpdate_TakesRowLock(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewBookingRepository(db)

	_, _ = repo.FindByIDForUpdate(context.Background(), db, uuid.New())

	require.NotEmpty(t, *captured)
	assert.Contains(t, (*captured)[0], "FOR UPDATE")
}

func TestListingFilterLimits(t *testing.T) {
	page, size := ListingFilter{}.Limits()
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, size)

	page, size = ListingFilter{Page: 3, PageSize: 50}.Limits()
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, size)

	page, size = ListingFilter{Page: -1, PageSize: 500}.Limits()
	assert.Equal(t, 1, page)
	assert.Equal(t, MaxPageSize, size)
}

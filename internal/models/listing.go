package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyCondo     PropertyType = "condo"
	PropertyVilla     PropertyType = "villa"
	PropertyCabin     PropertyType = "cabin"
	PropertyLoft      PropertyType = "loft"
	PropertyStudio    PropertyType = "studio"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyApartment, PropertyHouse, PropertyCondo, PropertyVilla,
		PropertyCabin, PropertyLoft, PropertyStudio:
		return true
	}
	return false
}

type Listing struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"listing_id"`
	HostID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"host_id"`
	Title         string       `gorm:"size:255;not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	Location      string       `gorm:"size:255;not null" json:"location"`
	PricePerNight float64      `gorm:"not null" json:"price_per_night"`
	PropertyType  PropertyType `gorm:"type:varchar(20);not null" json:"property_type"`
	MaxGuests     int          `gorm:"not null" json:"max_guests"`
	Bedrooms      int          `gorm:"not null;default:1" json:"bedrooms"`
	Bathrooms     int          `gorm:"not null;default:1" json:"bathrooms"`
	Amenities     string       `gorm:"type:text" json:"amenities"`
	Available     bool         `gorm:"not null;default:true" json:"available"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	Host *User `gorm:"foreignKey:HostID" json:"host,omitempty"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// AmenitiesList parses the stored comma-delimited amenities string into an
// ordered list of names. Empty or malformed input yields an empty slice.
func (l *Listing) AmenitiesList() []string {
	return ParseAmenities(l.Amenities)
}

func ParseAmenities(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func JoinAmenities(names []string) string {
	return strings.Join(names, ",")
}

package models

import (
	"fmt"
	"time"
)

type PropertyType string

const (
	PropertyResidential PropertyType = "RESIDENTIAL"
	PropertyCondo       PropertyType = "CONDO"
)

func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case PropertyResidential, PropertyCondo:
		return PropertyType(s), nil
	}
	return "", fmt.Errorf("unknown property type %q", s)
}

type Home struct {
	ID           string       `json:"id"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	Price        float64      `json:"price"`
	Bedrooms     int          `json:"numberOfBedrooms"`
	Bathrooms    int          `json:"numberOfBathrooms"`
	LandSize     float64      `json:"landSize"`
	PropertyType PropertyType `json:"propertyType"`
	Image        string       `json:"image,omitempty"`
	RealtorID    string       `json:"realtorId"`
	ListedAt     time.Time    `json:"listedDate"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// HomeUpdate carries the mutable subset of Home; nil fields are left as-is.
type HomeUpdate struct {
	Address      *string       `json:"address"`
	City         *string       `json:"city"`
	Price        *float64      `json:"price"`
	Bedrooms     *int          `json:"numberOfBedrooms"`
	Bathrooms    *int          `json:"numberOfBathrooms"`
	LandSize     *float64      `json:"landSize"`
	PropertyType *PropertyType `json:"propertyType"`
}

// Message is a buyer inquiry attached to a home.
type Message struct {
	ID        string    `json:"id"`
	HomeID    string    `json:"homeId"`
	BuyerID   string    `json:"buyerId"`
	RealtorID string    `json:"realtorId"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

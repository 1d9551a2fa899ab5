package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusMaintenance CarStatus = "maintenance"
	CarStatusUnavailable CarStatus = "unavailable"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarStatusAvailable, CarStatusMaintenance, CarStatusUnavailable:
		return true
	}
	return false
}

type Car struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	PlateNumber string          `json:"plate_number"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	Status      CarStatus       `json:"status"`
	Km          int             `json:"km"`
	Servicing   *Date           `json:"servicing,omitempty"`
	NTA         *Date           `json:"nta,omitempty"`
	PSV         *Date           `json:"psv,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	// Opaque image payload; encoding is handled by the client.
	ImageBase64 string    `json:"image_base64,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Label is how the planner names a car: "plate – name"
func (c *Car) Label() string {
	if c.PlateNumber == "" {
		return c.Name
	}
	return c.PlateNumber + " – " + c.Name
}

// ExternalCar is a vehicle sub-rented from a partner agency
type ExternalCar struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Model       string          `json:"model,omitempty"`
	Year        int             `json:"year,omitempty"`
	PlateNumber string          `json:"plate_number,omitempty"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

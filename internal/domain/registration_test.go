package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campus-parking/registration-api/internal/domain"
)

func TestRegistration_Summary(t *testing.T) {
	reg := domain.Registration{
		ReferenceID: "REF-ABC123-XYZ01",
		FullName:    "Jane Smith",
		StudentID:   "654321",
		Email:       "jane@example.edu",
		Phone:       "555-0100",
		GradeLevel:  domain.GradeJunior,
		SpotType:    domain.SpotSolo,
		ParkingLot:  "Lot A",
		ParkingSpot: "A-5",
		SubmittedAt: time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC),
	}

	summary := reg.Summary()

	assert.Contains(t, summary, "Reference: REF-ABC123-XYZ01")
	assert.Contains(t, summary, "Name: Jane Smith")
	assert.Contains(t, summary, "Parking Lot: Lot A")
	assert.Contains(t, summary, "Spot: A-5")
	assert.NotContains(t, summary, "Partner:")
}

func TestRegistration_Summary_Shared(t *testing.T) {
	reg := domain.Registration{
		ReferenceID:     "REF-ABC123-XYZ02",
		FullName:        "Sam Lee",
		SpotType:        domain.SpotShared,
		ParkingLot:      "Lot B",
		ParkingSpot:     "B-2",
		PartnerName:     "Alex Kim",
		PartnerSchedule: "Tuesday/Thursday",
		Schedule:        "Monday/Wednesday/Friday",
		SubmittedAt:     time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC),
	}

	summary := reg.Summary()

	assert.Contains(t, summary, "Partner: Alex Kim")
	assert.Contains(t, summary, "Your Schedule: Monday/Wednesday/Friday")
}

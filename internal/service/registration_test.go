package service_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/service"
)

func soloInput() service.SubmitInput {
	return service.SubmitInput{
		FullName:   "Jane Smith",
		StudentID:  "654321",
		Email:      "jane@example.edu",
		Phone:      "555-0100",
		GradeLevel: domain.GradeJunior,
	}
}

func TestRegistrationService_Submit_Solo(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		selection: &domain.Selection{
			SpotID:  "A-5",
			LotKey:  "lota",
			LotName: "Lot A",
			Type:    domain.SpotSolo,
		},
	}
	inventory := newTestInventory(t)
	svc := service.NewRegistrationService(state, inventory)

	reg, err := svc.Submit(ctx, soloInput())
	require.NoError(t, err)

	assert.Equal(t, "Lot A", reg.ParkingLot)
	assert.Equal(t, "A-5", reg.ParkingSpot)
	assert.Equal(t, domain.SpotSolo, reg.SpotType)
	assert.Regexp(t, regexp.MustCompile(`^REF-[0-9A-Z]+-[0-9A-Z]{5}$`), reg.ReferenceID)
	assert.False(t, reg.SubmittedAt.IsZero())

	// Appended to the list, stored as current, selection consumed.
	require.Len(t, state.list, 1)
	assert.Equal(t, reg.ReferenceID, state.list[0].ReferenceID)
	require.NotNil(t, state.current)
	assert.Nil(t, state.selection)

	// The in-memory inventory reflects the claim.
	spot, err := inventory.Spot("lota", "A-5")
	require.NoError(t, err)
	assert.Equal(t, domain.SpotTaken, spot.Status)
	require.NotNil(t, spot.AssignedTo)
	assert.Equal(t, reg.ReferenceID, *spot.AssignedTo)
}

func TestRegistrationService_Submit_Shared(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		selection: &domain.Selection{
			SpotID:  "A-4",
			LotKey:  "lota",
			LotName: "Lot A",
			Type:    domain.SpotShared,
			Half:    domain.HalfA,
		},
	}
	svc := service.NewRegistrationService(state, newTestInventory(t))

	input := soloInput()
	input.PartnerName = "Alex Kim"
	input.PartnerSchedule = "Tuesday/Thursday"

	reg, err := svc.Submit(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, domain.SpotShared, reg.SpotType)
	assert.Equal(t, "Alex Kim", reg.PartnerName)
	assert.Equal(t, "Monday/Wednesday/Friday", reg.Schedule)
}

func TestRegistrationService_Submit_SharedMissingPartner(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		selection: &domain.Selection{
			SpotID:  "A-4",
			LotKey:  "lota",
			LotName: "Lot A",
			Type:    domain.SpotShared,
			Half:    domain.HalfB,
		},
	}
	svc := service.NewRegistrationService(state, newTestInventory(t))

	_, err := svc.Submit(ctx, soloInput())
	require.ErrorIs(t, err, service.ErrPartnerNameRequired)
	assert.EqualError(t, err, "Partner name is required for shared spots")

	// Nothing mutated: no append, no current record, selection kept.
	assert.Empty(t, state.list)
	assert.Nil(t, state.current)
	assert.NotNil(t, state.selection)

	input := soloInput()
	input.PartnerName = "Alex Kim"
	_, err = svc.Submit(ctx, input)
	assert.ErrorIs(t, err, service.ErrPartnerScheduleRequired)
}

func TestRegistrationService_Submit_NoSelection(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{}
	svc := service.NewRegistrationService(state, newTestInventory(t))

	_, err := svc.Submit(ctx, soloInput())
	assert.ErrorIs(t, err, service.ErrNoSelection)
	assert.Empty(t, state.list)
}

func TestRegistrationService_Submit_AppendsInOrder(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		list: []domain.Registration{
			{ReferenceID: "REF-EXISTING-AAAAA", ParkingSpot: "B-3"},
		},
		selection: &domain.Selection{
			SpotID:  "A-5",
			LotKey:  "lota",
			LotName: "Lot A",
			Type:    domain.SpotSolo,
		},
	}
	svc := service.NewRegistrationService(state, newTestInventory(t))

	reg, err := svc.Submit(ctx, soloInput())
	require.NoError(t, err)

	require.Len(t, state.list, 2)
	assert.Equal(t, "REF-EXISTING-AAAAA", state.list[0].ReferenceID)
	assert.Equal(t, reg.ReferenceID, state.list[1].ReferenceID)
}

func TestRegistrationService_Current(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{}
	svc := service.NewRegistrationService(state, newTestInventory(t))

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, service.ErrNoRegistration)

	state.current = &domain.Registration{ReferenceID: "REF-1-AAAAA"}

	reg, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "REF-1-AAAAA", reg.ReferenceID)
}

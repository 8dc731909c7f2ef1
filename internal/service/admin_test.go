package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-parking/registration-api/internal/config"
	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/service"
)

func newAdminService(t *testing.T, state *fakeState) (*service.AdminService, *service.InventoryService) {
	t.Helper()

	inventory := newTestInventory(t)
	conf := &config.AdminConfig{Password: "letmein"}

	return service.NewAdminService(conf, state, inventory), inventory
}

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{}
	svc, _ := newAdminService(t, state)

	session, err := svc.Login(ctx, "letmein")
	require.NoError(t, err)

	assert.True(t, session.Authenticated)
	assert.False(t, session.LoginTime.IsZero())
	assert.NotEmpty(t, session.SessionID)
	require.NotNil(t, state.session)
	assert.Equal(t, session.SessionID, state.session.SessionID)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{}
	svc, _ := newAdminService(t, state)

	_, err := svc.Login(ctx, "guess")
	assert.ErrorIs(t, err, service.ErrWrongPassword)
	assert.Nil(t, state.session)
}

func TestAdminService_Login_HashedSecret(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	conf := &config.AdminConfig{PasswordHash: string(hash)}
	svc := service.NewAdminService(conf, &fakeState{}, newTestInventory(t))

	_, err = svc.Login(ctx, "letmein")
	assert.NoError(t, err)

	_, err = svc.Login(ctx, "guess")
	assert.ErrorIs(t, err, service.ErrWrongPassword)
}

func TestAdminService_VerifySession(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{}
	svc, _ := newAdminService(t, state)

	_, err := svc.VerifySession(ctx, "nope")
	assert.ErrorIs(t, err, service.ErrInvalidSession)

	session, err := svc.Login(ctx, "letmein")
	require.NoError(t, err)

	got, err := svc.VerifySession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, got.SessionID)

	_, err = svc.VerifySession(ctx, "some-other-id")
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}

func TestAdminService_VerifySession_SweepsStaleRecord(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		session: &domain.AdminSession{Authenticated: false, SessionID: "stale"},
	}
	svc, _ := newAdminService(t, state)

	_, err := svc.VerifySession(ctx, "stale")
	assert.ErrorIs(t, err, service.ErrInvalidSession)
	assert.Nil(t, state.session, "structurally invalid record should be cleared")
}

func TestAdminService_Logout(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{}
	svc, _ := newAdminService(t, state)

	_, err := svc.Login(ctx, "letmein")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, state.session)
}

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		list: []domain.Registration{
			{ReferenceID: "REF-1-AAAAA"},
			{ReferenceID: "REF-2-BBBBB"},
		},
	}
	svc, _ := newAdminService(t, state)

	counts, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, counts.TotalSpots)
	assert.Equal(t, 4, counts.AvailableSpots)
	assert.Equal(t, 1, counts.TakenSpots)
	assert.Equal(t, 2, counts.TotalRegistrations)
}

func TestAdminService_RemoveRegistration(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		list: []domain.Registration{
			{ReferenceID: "REF-1-AAAAA"},
			{ReferenceID: "REF-2-BBBBB"},
			{ReferenceID: "REF-3-CCCCC"},
		},
	}
	svc, _ := newAdminService(t, state)

	require.NoError(t, svc.RemoveRegistration(ctx, "REF-2-BBBBB"))

	require.Len(t, state.list, 2)
	assert.Equal(t, "REF-1-AAAAA", state.list[0].ReferenceID)
	assert.Equal(t, "REF-3-CCCCC", state.list[1].ReferenceID)

	err := svc.RemoveRegistration(ctx, "REF-2-BBBBB")
	assert.ErrorIs(t, err, service.ErrRegistrationNotFound)
}

func TestAdminService_Spots_Filter(t *testing.T) {
	svc, _ := newAdminService(t, &fakeState{})

	all := svc.Spots("")
	assert.Len(t, all, 5)

	lotA := svc.Spots("Lot A")
	require.Len(t, lotA, 3)
	for _, row := range lotA {
		assert.Equal(t, "Lot A", row.LotName)
	}

	assert.Empty(t, svc.Spots("Lot Z"))
}

func TestAdminService_ClearSpot(t *testing.T) {
	ctx := context.Background()
	ref := "REF-9-ZZZZZ"
	state := &fakeState{
		list: []domain.Registration{
			{ReferenceID: "REF-1-AAAAA", ParkingSpot: "B-3"},
			{ReferenceID: ref, ParkingSpot: "A-9"},
		},
	}
	svc, inventory := newAdminService(t, state)

	require.NoError(t, svc.ClearSpot(ctx, "lota", "A-9"))

	spot, err := inventory.Spot("lota", "A-9")
	require.NoError(t, err)
	assert.Equal(t, domain.SpotAvailable, spot.Status)
	assert.Nil(t, spot.AssignedTo)

	require.Len(t, state.list, 1)
	assert.Equal(t, "REF-1-AAAAA", state.list[0].ReferenceID)
}

func TestAdminService_ResetAll(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		list: []domain.Registration{
			{ReferenceID: "REF-1-AAAAA", ParkingSpot: "A-9"},
		},
		current: &domain.Registration{ReferenceID: "REF-1-AAAAA"},
	}
	svc, inventory := newAdminService(t, state)

	require.NoError(t, svc.ResetAll(ctx))

	assert.Empty(t, state.list)
	assert.Nil(t, state.current)

	counts := inventory.Counts()
	assert.Equal(t, counts.TotalSpots, counts.AvailableSpots)
	assert.Zero(t, counts.TakenSpots)
}

func TestAdminService_Export(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		list: []domain.Registration{
			{ReferenceID: "REF-1-AAAAA"},
		},
	}
	svc, _ := newAdminService(t, state)

	doc, err := svc.Export(ctx)
	require.NoError(t, err)

	assert.False(t, doc.ExportedAt.IsZero())
	assert.Len(t, doc.Inventory.Lots, 2)
	assert.Len(t, doc.Registrations, 1)
	assert.Equal(t, 1, doc.Summary.TotalRegistrations)
	assert.Equal(t, 5, doc.Summary.TotalSpots)
}

func TestAdminService_RegistrationSummary(t *testing.T) {
	ctx := context.Background()
	state := &fakeState{
		list: []domain.Registration{
			{ReferenceID: "REF-1-AAAAA", FullName: "Jane Smith", ParkingLot: "Lot A", ParkingSpot: "A-5"},
		},
	}
	svc, _ := newAdminService(t, state)

	summary, err := svc.RegistrationSummary(ctx, "REF-1-AAAAA")
	require.NoError(t, err)
	assert.Contains(t, summary, "Name: Jane Smith")

	_, err = svc.RegistrationSummary(ctx, "REF-0-00000")
	assert.ErrorIs(t, err, service.ErrRegistrationNotFound)
}

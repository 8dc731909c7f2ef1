package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/repository"
	"github.com/campus-parking/registration-api/internal/service"
)

// fakeState is an in-memory stand-in for the persisted key-value state,
// satisfying every service-side repository interface.
type fakeState struct {
	selection *domain.Selection
	current   *domain.Registration
	list      []domain.Registration
	session   *domain.AdminSession
	theme     domain.ThemePreference
}

func (f *fakeState) Selection(_ context.Context) (domain.Selection, error) {
	if f.selection == nil {
		return domain.Selection{}, repository.ErrNoSelection
	}

	return *f.selection, nil
}

func (f *fakeState) SaveSelection(_ context.Context, sel domain.Selection) error {
	f.selection = &sel

	return nil
}

func (f *fakeState) ClearSelection(_ context.Context) error {
	f.selection = nil

	return nil
}

func (f *fakeState) CurrentRegistration(_ context.Context) (domain.Registration, error) {
	if f.current == nil {
		return domain.Registration{}, repository.ErrNoRegistration
	}

	return *f.current, nil
}

func (f *fakeState) SaveCurrentRegistration(_ context.Context, reg domain.Registration) error {
	f.current = &reg

	return nil
}

func (f *fakeState) ClearCurrentRegistration(_ context.Context) error {
	f.current = nil

	return nil
}

func (f *fakeState) Registrations(_ context.Context) ([]domain.Registration, error) {
	list := make([]domain.Registration, len(f.list))
	copy(list, f.list)

	return list, nil
}

func (f *fakeState) SaveRegistrations(_ context.Context, list []domain.Registration) error {
	f.list = list

	return nil
}

func (f *fakeState) ClearRegistrations(_ context.Context) error {
	f.list = nil

	return nil
}

func (f *fakeState) AdminSession(_ context.Context) (domain.AdminSession, error) {
	if f.session == nil {
		return domain.AdminSession{}, repository.ErrNoSession
	}

	return *f.session, nil
}

func (f *fakeState) SaveAdminSession(_ context.Context, session domain.AdminSession) error {
	f.session = &session

	return nil
}

func (f *fakeState) ClearAdminSession(_ context.Context) error {
	f.session = nil

	return nil
}

func (f *fakeState) Theme(_ context.Context) (domain.ThemePreference, error) {
	if f.theme == "" {
		return "", repository.ErrNoTheme
	}

	return f.theme, nil
}

func (f *fakeState) SaveTheme(_ context.Context, theme domain.ThemePreference) error {
	f.theme = theme

	return nil
}

type fixtureLoader struct {
	inv domain.Inventory
	err error
}

func (l fixtureLoader) Load() (domain.Inventory, error) {
	return l.inv, l.err
}

func fixtureInventory() domain.Inventory {
	return domain.Inventory{
		Lots: []domain.Lot{
			{
				Key:  "lota",
				Name: "Lot A",
				Spots: []domain.Spot{
					{ID: "A-4", Status: domain.SpotAvailable, Type: domain.SpotShared},
					{ID: "A-5", Status: domain.SpotAvailable, Type: domain.SpotSolo},
					{ID: "A-9", Status: domain.SpotTaken, Type: domain.SpotSolo},
				},
			},
			{
				Key:  "lotb",
				Name: "Lot B",
				Spots: []domain.Spot{
					{ID: "B-2", Status: domain.SpotAvailable, Type: domain.SpotShared},
					{ID: "B-3", Status: domain.SpotAvailable, Type: domain.SpotSolo},
				},
			},
		},
	}
}

func newTestInventory(t *testing.T) *service.InventoryService {
	t.Helper()

	svc := service.NewInventoryService(fixtureLoader{inv: fixtureInventory()})
	require.NoError(t, svc.Load())

	return svc
}

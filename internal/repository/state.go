package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/repository/dao"
)

var (
	ErrNoSelection    = errors.New("no selection found")
	ErrNoRegistration = errors.New("no registration found")
	ErrNoSession      = errors.New("no admin session found")
	ErrNoTheme        = errors.New("no theme preference found")
)

// Storage keys. These mirror the original browser storage layout; each
// key holds one whole JSON document.
const (
	KeySelection           = "parking_selected_spot"
	KeyCurrentRegistration = "parking_current_registration"
	KeyRegistrationList    = "parking_registrations"
	KeyAdminSession        = "parking_admin_session"
	KeyTheme               = "parking_theme"
)

type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Insert(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// StateRepository gives typed access to the persisted application state.
// A corrupt document under any key is logged and treated as absent
// rather than propagated.
type StateRepository struct {
	kv KVStore
}

func NewStateRepository(kv KVStore) *StateRepository {
	return &StateRepository{
		kv: kv,
	}
}

func (r *StateRepository) Selection(ctx context.Context) (domain.Selection, error) {
	var sel domain.Selection
	if err := r.getJSON(ctx, KeySelection, &sel); err != nil {
		if errors.Is(err, dao.ErrKeyNotFound) {
			return domain.Selection{}, ErrNoSelection
		}

		return domain.Selection{}, fmt.Errorf("r.getJSON -> %w", err)
	}

	return sel, nil
}

func (r *StateRepository) SaveSelection(ctx context.Context, sel domain.Selection) error {
	return r.setJSON(ctx, KeySelection, sel)
}

func (r *StateRepository) ClearSelection(ctx context.Context) error {
	return r.kv.Remove(ctx, KeySelection)
}

func (r *StateRepository) CurrentRegistration(ctx context.Context) (domain.Registration, error) {
	var reg domain.Registration
	if err := r.getJSON(ctx, KeyCurrentRegistration, &reg); err != nil {
		if errors.Is(err, dao.ErrKeyNotFound) {
			return domain.Registration{}, ErrNoRegistration
		}

		return domain.Registration{}, fmt.Errorf("r.getJSON -> %w", err)
	}

	return reg, nil
}

func (r *StateRepository) SaveCurrentRegistration(ctx context.Context, reg domain.Registration) error {
	return r.setJSON(ctx, KeyCurrentRegistration, reg)
}

func (r *StateRepository) ClearCurrentRegistration(ctx context.Context) error {
	return r.kv.Remove(ctx, KeyCurrentRegistration)
}

// Registrations returns the full insertion-ordered list. Absence and
// corrupt documents both come back as an empty list.
func (r *StateRepository) Registrations(ctx context.Context) ([]domain.Registration, error) {
	var list []domain.Registration
	if err := r.getJSON(ctx, KeyRegistrationList, &list); err != nil {
		if errors.Is(err, dao.ErrKeyNotFound) {
			return []domain.Registration{}, nil
		}

		return nil, fmt.Errorf("r.getJSON -> %w", err)
	}

	return list, nil
}

// SaveRegistrations rewrites the whole list. Every mutation is a full
// read-modify-write; concurrent writers are last-write-wins.
func (r *StateRepository) SaveRegistrations(ctx context.Context, list []domain.Registration) error {
	return r.setJSON(ctx, KeyRegistrationList, list)
}

func (r *StateRepository) ClearRegistrations(ctx context.Context) error {
	return r.kv.Remove(ctx, KeyRegistrationList)
}

func (r *StateRepository) AdminSession(ctx context.Context) (domain.AdminSession, error) {
	var session domain.AdminSession
	if err := r.getJSON(ctx, KeyAdminSession, &session); err != nil {
		if errors.Is(err, dao.ErrKeyNotFound) {
			return domain.AdminSession{}, ErrNoSession
		}

		return domain.AdminSession{}, fmt.Errorf("r.getJSON -> %w", err)
	}

	return session, nil
}

func (r *StateRepository) SaveAdminSession(ctx context.Context, session domain.AdminSession) error {
	return r.setJSON(ctx, KeyAdminSession, session)
}

func (r *StateRepository) ClearAdminSession(ctx context.Context) error {
	return r.kv.Remove(ctx, KeyAdminSession)
}

func (r *StateRepository) Theme(ctx context.Context) (domain.ThemePreference, error) {
	var theme domain.ThemePreference
	if err := r.getJSON(ctx, KeyTheme, &theme); err != nil {
		if errors.Is(err, dao.ErrKeyNotFound) {
			return "", ErrNoTheme
		}

		return "", fmt.Errorf("r.getJSON -> %w", err)
	}

	return theme, nil
}

func (r *StateRepository) SaveTheme(ctx context.Context, theme domain.ThemePreference) error {
	return r.setJSON(ctx, KeyTheme, theme)
}

func (r *StateRepository) getJSON(ctx context.Context, key string, out interface{}) error {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("r.kv.Get -> %w", err)
	}

	if err = json.Unmarshal([]byte(raw), out); err != nil {
		zap.L().Warn("corrupt document in kv store, treating as absent",
			zap.String("key", key),
			zap.Error(err),
		)

		return fmt.Errorf("json.Unmarshal -> %w", dao.ErrKeyNotFound)
	}

	return nil
}

func (r *StateRepository) setJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = r.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("r.kv.Set -> %w", err)
	}

	return nil
}

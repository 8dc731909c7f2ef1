package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-parking/registration-api/internal/config"
	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/repository"
)

var (
	ErrWrongPassword          = errors.New("wrong password")
	ErrInvalidSession         = errors.New("invalid admin session")
	ErrRegistrationNotFound   = errors.New("registration not found")
	ErrAdminSecretUnavailable = errors.New("admin secret is not configured")
)

type AdminStateRepository interface {
	AdminSession(ctx context.Context) (domain.AdminSession, error)
	SaveAdminSession(ctx context.Context, session domain.AdminSession) error
	ClearAdminSession(ctx context.Context) error
	Registrations(ctx context.Context) ([]domain.Registration, error)
	SaveRegistrations(ctx context.Context, list []domain.Registration) error
	ClearRegistrations(ctx context.Context) error
	ClearCurrentRegistration(ctx context.Context) error
}

type AdminInventory interface {
	Load() error
	FilterSpots(lotName string) []domain.LotSpot
	ClearSpot(lotKey, spotID string) error
	ResetAll()
	Counts() domain.SpotCounts
	Snapshot() domain.Inventory
}

// AdminService backs the administration console: a two-screen state
// machine (logged out / dashboard) over the shared persisted state.
type AdminService struct {
	conf      *config.AdminConfig
	repo      AdminStateRepository
	inventory AdminInventory
}

func NewAdminService(conf *config.AdminConfig, repo AdminStateRepository, inventory AdminInventory) *AdminService {
	return &AdminService{
		conf:      conf,
		repo:      repo,
		inventory: inventory,
	}
}

// Login checks the password against the configured secret and persists
// a fresh session record. The secret comparison is plain equality
// unless a bcrypt hash is configured, which then takes precedence.
func (s *AdminService) Login(ctx context.Context, password string) (domain.AdminSession, error) {
	if err := s.checkPassword(password); err != nil {
		return domain.AdminSession{}, err
	}

	session := domain.AdminSession{
		Authenticated: true,
		LoginTime:     time.Now().UTC(),
		SessionID:     uuid.NewString(),
	}

	if err := s.repo.SaveAdminSession(ctx, session); err != nil {
		return domain.AdminSession{}, fmt.Errorf("s.repo.SaveAdminSession -> %w", err)
	}

	return session, nil
}

func (s *AdminService) checkPassword(password string) error {
	if s.conf.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.conf.PasswordHash), []byte(password)); err != nil {
			return ErrWrongPassword
		}

		return nil
	}

	if s.conf.Password == "" {
		return ErrAdminSecretUnavailable
	}

	if password != s.conf.Password {
		return ErrWrongPassword
	}

	return nil
}

// VerifySession is the dashboard entry check: the stored record must
// exist, be structurally valid, and match the presented session id.
// There is no expiry. A structurally invalid record is swept.
func (s *AdminService) VerifySession(ctx context.Context, sessionID string) (domain.AdminSession, error) {
	session, err := s.repo.AdminSession(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return domain.AdminSession{}, ErrInvalidSession
		}

		return domain.AdminSession{}, fmt.Errorf("s.repo.AdminSession -> %w", err)
	}

	if !session.IsValid() {
		if err = s.repo.ClearAdminSession(ctx); err != nil {
			return domain.AdminSession{}, fmt.Errorf("s.repo.ClearAdminSession -> %w", err)
		}

		return domain.AdminSession{}, ErrInvalidSession
	}

	if session.SessionID != sessionID {
		return domain.AdminSession{}, ErrInvalidSession
	}

	return session, nil
}

func (s *AdminService) Logout(ctx context.Context) error {
	if err := s.repo.ClearAdminSession(ctx); err != nil {
		return fmt.Errorf("s.repo.ClearAdminSession -> %w", err)
	}

	return nil
}

// Stats scans all lots' spots and the registration list.
func (s *AdminService) Stats(ctx context.Context) (domain.SpotCounts, error) {
	list, err := s.repo.Registrations(ctx)
	if err != nil {
		return domain.SpotCounts{}, fmt.Errorf("s.repo.Registrations -> %w", err)
	}

	counts := s.inventory.Counts()
	counts.TotalRegistrations = len(list)

	return counts, nil
}

func (s *AdminService) Registrations(ctx context.Context) ([]domain.Registration, error) {
	list, err := s.repo.Registrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Registrations -> %w", err)
	}

	return list, nil
}

func (s *AdminService) RegistrationSummary(ctx context.Context, referenceID string) (string, error) {
	list, err := s.repo.Registrations(ctx)
	if err != nil {
		return "", fmt.Errorf("s.repo.Registrations -> %w", err)
	}

	for _, reg := range list {
		if reg.ReferenceID == referenceID {
			return reg.Summary(), nil
		}
	}

	return "", ErrRegistrationNotFound
}

// RemoveRegistration splices one entry out by reference id and rewrites
// the list, preserving the order of the rest.
func (s *AdminService) RemoveRegistration(ctx context.Context, referenceID string) error {
	list, err := s.repo.Registrations(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.Registrations -> %w", err)
	}

	idx := -1
	for i, reg := range list {
		if reg.ReferenceID == referenceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrRegistrationNotFound
	}

	list = append(list[:idx], list[idx+1:]...)
	if err = s.repo.SaveRegistrations(ctx, list); err != nil {
		return fmt.Errorf("s.repo.SaveRegistrations -> %w", err)
	}

	return nil
}

// Spots returns the spots table, filtered by exact lot display name
// when the filter is non-empty.
func (s *AdminService) Spots(lotName string) []domain.LotSpot {
	return s.inventory.FilterSpots(lotName)
}

// ClearSpot frees the spot in the in-memory inventory and removes any
// registration claiming that spot id from the list.
func (s *AdminService) ClearSpot(ctx context.Context, lotKey, spotID string) error {
	if err := s.inventory.ClearSpot(lotKey, spotID); err != nil {
		return fmt.Errorf("s.inventory.ClearSpot -> %w", err)
	}

	list, err := s.repo.Registrations(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.Registrations -> %w", err)
	}

	kept := list[:0]
	for _, reg := range list {
		if reg.ParkingSpot != spotID {
			kept = append(kept, reg)
		}
	}

	if len(kept) != len(list) {
		if err = s.repo.SaveRegistrations(ctx, kept); err != nil {
			return fmt.Errorf("s.repo.SaveRegistrations -> %w", err)
		}
	}

	return nil
}

// Refresh reloads the inventory from its source; the registration list
// is re-read from storage on every access already.
func (s *AdminService) Refresh(ctx context.Context) error {
	if err := s.inventory.Load(); err != nil {
		return fmt.Errorf("s.inventory.Load -> %w", err)
	}

	return nil
}

// ResetAll frees every spot and deletes both the registration list and
// the current-registration record.
func (s *AdminService) ResetAll(ctx context.Context) error {
	s.inventory.ResetAll()

	if err := s.repo.ClearRegistrations(ctx); err != nil {
		return fmt.Errorf("s.repo.ClearRegistrations -> %w", err)
	}

	if err := s.repo.ClearCurrentRegistration(ctx); err != nil {
		return fmt.Errorf("s.repo.ClearCurrentRegistration -> %w", err)
	}

	return nil
}

// Export snapshots the inventory, the registration list and the summary
// counts into one downloadable document.
func (s *AdminService) Export(ctx context.Context) (domain.ExportDocument, error) {
	list, err := s.repo.Registrations(ctx)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("s.repo.Registrations -> %w", err)
	}

	counts := s.inventory.Counts()
	counts.TotalRegistrations = len(list)

	return domain.ExportDocument{
		ExportedAt:    time.Now().UTC(),
		Inventory:     s.inventory.Snapshot(),
		Registrations: list,
		Summary:       counts,
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/pkg/refid"
	"github.com/campus-parking/registration-api/internal/repository"
)

var (
	ErrNoRegistration = repository.ErrNoRegistration

	// Fixed messages surfaced verbatim to the form.
	ErrPartnerNameRequired     = errors.New("Partner name is required for shared spots")
	ErrPartnerScheduleRequired = errors.New("Day schedule is required for shared spots")
)

type RegistrationStateRepository interface {
	Selection(ctx context.Context) (domain.Selection, error)
	ClearSelection(ctx context.Context) error
	CurrentRegistration(ctx context.Context) (domain.Registration, error)
	SaveCurrentRegistration(ctx context.Context, reg domain.Registration) error
	Registrations(ctx context.Context) ([]domain.Registration, error)
	SaveRegistrations(ctx context.Context, list []domain.Registration) error
}

type SpotAssigner interface {
	MarkTaken(lotKey, spotID, referenceID string) error
}

// SubmitInput carries the form fields. Field-shape validation happens
// at the request layer; the shared-spot partner rules live here because
// they depend on the persisted selection.
type SubmitInput struct {
	FullName        string
	StudentID       string
	Email           string
	Phone           string
	GradeLevel      domain.GradeLevel
	PartnerName     string
	PartnerSchedule string
}

type RegistrationService struct {
	repo     RegistrationStateRepository
	assigner SpotAssigner
}

func NewRegistrationService(repo RegistrationStateRepository, assigner SpotAssigner) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		assigner: assigner,
	}
}

// Submit merges the form fields with the persisted selection, stamps a
// reference id and timestamp, stores the result as the current
// registration and appends it to the list. The selection is consumed.
//
// The append deliberately performs no check that the spot is still
// unclaimed in the list; two submissions can claim the same spot,
// matching the optimistic behavior this system inherits.
func (s *RegistrationService) Submit(ctx context.Context, input SubmitInput) (domain.Registration, error) {
	sel, err := s.repo.Selection(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSelection) {
			return domain.Registration{}, ErrNoSelection
		}

		return domain.Registration{}, fmt.Errorf("s.repo.Selection -> %w", err)
	}

	if sel.Type == domain.SpotShared {
		if input.PartnerName == "" {
			return domain.Registration{}, ErrPartnerNameRequired
		}
		if input.PartnerSchedule == "" {
			return domain.Registration{}, ErrPartnerScheduleRequired
		}
	}

	reg := domain.Registration{
		ReferenceID: refid.New(),
		FullName:    input.FullName,
		StudentID:   input.StudentID,
		Email:       input.Email,
		Phone:       input.Phone,
		GradeLevel:  input.GradeLevel,
		SpotType:    sel.Type,
		ParkingLot:  sel.LotName,
		ParkingSpot: sel.SpotID,
		SubmittedAt: time.Now().UTC(),
	}
	if sel.Type == domain.SpotShared {
		reg.PartnerName = input.PartnerName
		reg.PartnerSchedule = input.PartnerSchedule
		reg.Schedule = sel.ScheduleLabel()
	}

	if err = s.repo.SaveCurrentRegistration(ctx, reg); err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.SaveCurrentRegistration -> %w", err)
	}

	list, err := s.repo.Registrations(ctx)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Registrations -> %w", err)
	}

	list = append(list, reg)
	if err = s.repo.SaveRegistrations(ctx, list); err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.SaveRegistrations -> %w", err)
	}

	if err = s.repo.ClearSelection(ctx); err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.ClearSelection -> %w", err)
	}

	// The inventory copy of the claim is in-memory only and
	// best-effort; the list above is the durable record.
	if err = s.assigner.MarkTaken(sel.LotKey, sel.SpotID, reg.ReferenceID); err != nil {
		zap.L().Warn("could not mark spot taken in inventory",
			zap.String("lot", sel.LotKey),
			zap.String("spot", sel.SpotID),
			zap.Error(err),
		)
	}

	return reg, nil
}

// Current returns the most recently submitted registration.
func (s *RegistrationService) Current(ctx context.Context) (domain.Registration, error) {
	reg, err := s.repo.CurrentRegistration(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoRegistration) {
			return domain.Registration{}, ErrNoRegistration
		}

		return domain.Registration{}, fmt.Errorf("s.repo.CurrentRegistration -> %w", err)
	}

	return reg, nil
}

func (s *RegistrationService) List(ctx context.Context) ([]domain.Registration, error) {
	list, err := s.repo.Registrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Registrations -> %w", err)
	}

	return list, nil
}

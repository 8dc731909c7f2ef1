package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/repository"
)

var ErrNoTheme = repository.ErrNoTheme

type PreferenceStateRepository interface {
	Theme(ctx context.Context) (domain.ThemePreference, error)
	SaveTheme(ctx context.Context, theme domain.ThemePreference) error
}

// PreferenceService persists cosmetic preferences. Only the theme key
// exists today.
type PreferenceService struct {
	repo PreferenceStateRepository
}

func NewPreferenceService(repo PreferenceStateRepository) *PreferenceService {
	return &PreferenceService{
		repo: repo,
	}
}

func (s *PreferenceService) Theme(ctx context.Context) (domain.ThemePreference, error) {
	theme, err := s.repo.Theme(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoTheme) {
			return "", ErrNoTheme
		}

		return "", fmt.Errorf("s.repo.Theme -> %w", err)
	}

	return theme, nil
}

func (s *PreferenceService) SaveTheme(ctx context.Context, theme domain.ThemePreference) error {
	if err := s.repo.SaveTheme(ctx, theme); err != nil {
		return fmt.Errorf("s.repo.SaveTheme -> %w", err)
	}

	return nil
}

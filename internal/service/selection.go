package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/repository"
)

var (
	ErrNoSelection  = repository.ErrNoSelection
	ErrSpotTaken    = errors.New("spot is already taken")
	ErrHalfRequired = errors.New("shared spots require half A or B")
	ErrHalfNotValid = errors.New("solo spots cannot be selected by half")
)

type SelectionStateRepository interface {
	Selection(ctx context.Context) (domain.Selection, error)
	SaveSelection(ctx context.Context, sel domain.Selection) error
	ClearSelection(ctx context.Context) error
}

type SelectionInventory interface {
	Lot(key string) (domain.Lot, error)
	Spot(lotKey, spotID string) (domain.Spot, error)
}

// SelectionService handles the spot-picking step. There is no
// reservation: a selection only records intent, and two sessions may
// select the same spot. The registration step's append resolves it
// last-write-wins.
type SelectionService struct {
	repo      SelectionStateRepository
	inventory SelectionInventory
}

func NewSelectionService(repo SelectionStateRepository, inventory SelectionInventory) *SelectionService {
	return &SelectionService{
		repo:      repo,
		inventory: inventory,
	}
}

// Select validates the target against the inventory and persists the
// new selection, replacing any previous one.
func (s *SelectionService) Select(ctx context.Context, lotKey, spotID string, half domain.ShareHalf) (domain.Selection, error) {
	lot, err := s.inventory.Lot(lotKey)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("s.inventory.Lot -> %w", err)
	}

	spot, err := s.inventory.Spot(lotKey, spotID)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("s.inventory.Spot -> %w", err)
	}

	if spot.Status == domain.SpotTaken {
		return domain.Selection{}, ErrSpotTaken
	}

	switch spot.Type {
	case domain.SpotShared:
		if !half.IsValid() {
			return domain.Selection{}, ErrHalfRequired
		}
	default:
		if half != "" {
			return domain.Selection{}, ErrHalfNotValid
		}
	}

	sel := domain.Selection{
		SpotID:  spot.ID,
		LotKey:  lot.Key,
		LotName: lot.Name,
		Type:    spot.Type,
		Half:    half,
	}

	if err = s.repo.SaveSelection(ctx, sel); err != nil {
		return domain.Selection{}, fmt.Errorf("s.repo.SaveSelection -> %w", err)
	}

	return sel, nil
}

// Current restores the persisted selection, if any.
func (s *SelectionService) Current(ctx context.Context) (domain.Selection, error) {
	sel, err := s.repo.Selection(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSelection) {
			return domain.Selection{}, ErrNoSelection
		}

		return domain.Selection{}, fmt.Errorf("s.repo.Selection -> %w", err)
	}

	return sel, nil
}

func (s *SelectionService) Clear(ctx context.Context) error {
	if err := s.repo.ClearSelection(ctx); err != nil {
		return fmt.Errorf("s.repo.ClearSelection -> %w", err)
	}

	return nil
}

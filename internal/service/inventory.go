package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/campus-parking/registration-api/internal/domain"
)

var (
	ErrInventoryUnavailable = errors.New("parking inventory is unavailable")
	ErrLotNotFound          = errors.New("parking lot not found")
	ErrSpotNotFound         = errors.New("parking spot not found")
)

type InventoryLoader interface {
	Load() (domain.Inventory, error)
}

// InventoryService owns the in-memory inventory. The loaded structure
// is the only copy; admin mutations (clear, reset) change it in place
// and are never written back to the source file.
type InventoryService struct {
	loader InventoryLoader

	mu  sync.RWMutex
	inv domain.Inventory
}

func NewInventoryService(loader InventoryLoader) *InventoryService {
	return &InventoryService{
		loader: loader,
	}
}

// Load reads the inventory source. On failure the inventory is left
// empty and dependent operations report it unavailable; there is no
// retry.
func (s *InventoryService) Load() error {
	inv, err := s.loader.Load()
	if err != nil {
		s.mu.Lock()
		s.inv = domain.Inventory{}
		s.mu.Unlock()

		return fmt.Errorf("s.loader.Load -> %w", err)
	}

	s.mu.Lock()
	s.inv = inv
	s.mu.Unlock()

	zap.L().Info("inventory loaded", zap.Int("lots", len(inv.Lots)))

	return nil
}

func (s *InventoryService) Lots() ([]domain.Lot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.inv.IsEmpty() {
		return nil, ErrInventoryUnavailable
	}

	lots := make([]domain.Lot, len(s.inv.Lots))
	copy(lots, s.inv.Lots)

	return lots, nil
}

func (s *InventoryService) Lot(key string) (domain.Lot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.inv.IsEmpty() {
		return domain.Lot{}, ErrInventoryUnavailable
	}

	lot, ok := s.inv.Lot(key)
	if !ok {
		return domain.Lot{}, ErrLotNotFound
	}

	return lot, nil
}

func (s *InventoryService) Spot(lotKey, spotID string) (domain.Spot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.inv.IsEmpty() {
		return domain.Spot{}, ErrInventoryUnavailable
	}

	spot, ok := s.inv.Spot(lotKey, spotID)
	if !ok {
		return domain.Spot{}, ErrSpotNotFound
	}

	return spot, nil
}

// FilterSpots flattens the inventory into table rows, keeping only lots
// whose display name matches exactly. An empty filter keeps everything.
func (s *InventoryService) FilterSpots(lotName string) []domain.LotSpot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]domain.LotSpot, 0)
	for _, lot := range s.inv.Lots {
		if lotName != "" && lot.Name != lotName {
			continue
		}

		for _, spot := range lot.Spots {
			rows = append(rows, domain.LotSpot{
				LotKey:  lot.Key,
				LotName: lot.Name,
				Spot:    spot,
			})
		}
	}

	return rows
}

// MarkTaken records a registration's claim on a spot in memory. Nothing
// prevents a second claim elsewhere; the registration list is the
// durable record.
func (s *InventoryService) MarkTaken(lotKey, spotID, referenceID string) error {
	return s.updateSpot(lotKey, spotID, func(spot *domain.Spot) {
		spot.Status = domain.SpotTaken
		spot.AssignedTo = &referenceID
	})
}

func (s *InventoryService) ClearSpot(lotKey, spotID string) error {
	return s.updateSpot(lotKey, spotID, func(spot *domain.Spot) {
		spot.Status = domain.SpotAvailable
		spot.AssignedTo = nil
	})
}

func (s *InventoryService) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for li := range s.inv.Lots {
		for si := range s.inv.Lots[li].Spots {
			s.inv.Lots[li].Spots[si].Status = domain.SpotAvailable
			s.inv.Lots[li].Spots[si].AssignedTo = nil
		}
	}
}

func (s *InventoryService) Counts() domain.SpotCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := domain.SpotCounts{}
	for _, lot := range s.inv.Lots {
		for _, spot := range lot.Spots {
			counts.TotalSpots++
			switch spot.Status {
			case domain.SpotTaken:
				counts.TakenSpots++
			default:
				counts.AvailableSpots++
			}
		}
	}

	return counts
}

// Snapshot returns a deep copy of the current inventory for export.
func (s *InventoryService) Snapshot() domain.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := domain.Inventory{
		Lots: make([]domain.Lot, len(s.inv.Lots)),
	}
	for i, lot := range s.inv.Lots {
		spots := make([]domain.Spot, len(lot.Spots))
		copy(spots, lot.Spots)
		snapshot.Lots[i] = domain.Lot{
			Key:   lot.Key,
			Name:  lot.Name,
			Spots: spots,
		}
	}

	return snapshot
}

func (s *InventoryService) updateSpot(lotKey, spotID string, update func(*domain.Spot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inv.IsEmpty() {
		return ErrInventoryUnavailable
	}

	for li := range s.inv.Lots {
		if s.inv.Lots[li].Key != lotKey {
			continue
		}

		for si := range s.inv.Lots[li].Spots {
			if s.inv.Lots[li].Spots[si].ID == spotID {
				update(&s.inv.Lots[li].Spots[si])

				return nil
			}
		}

		return ErrSpotNotFound
	}

	return ErrLotNotFound
}

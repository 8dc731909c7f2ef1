package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/campus-parking/registration-api/internal/domain"
)

// InventoryRepository reads the bundled lot description. The document
// is an object keyed by lowercase lot key, each value carrying the
// display name and the spots array.
type InventoryRepository struct {
	path string
}

func NewInventoryRepository(path string) *InventoryRepository {
	return &InventoryRepository{
		path: path,
	}
}

type lotDocument struct {
	Name  string        `json:"name"`
	Spots []domain.Spot `json:"spots"`
}

func (r *InventoryRepository) Load() (domain.Inventory, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("os.ReadFile -> %w", err)
	}

	var doc map[string]lotDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return domain.Inventory{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	inv := domain.Inventory{
		Lots: make([]domain.Lot, 0, len(keys)),
	}
	for _, key := range keys {
		inv.Lots = append(inv.Lots, domain.Lot{
			Key:   key,
			Name:  doc[key].Name,
			Spots: doc[key].Spots,
		})
	}

	return inv, nil
}

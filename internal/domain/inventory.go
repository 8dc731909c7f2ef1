package domain

type SpotStatus string

const (
	SpotAvailable SpotStatus = "available"
	SpotTaken     SpotStatus = "taken"
)

type SpotType string

const (
	SpotSolo   SpotType = "solo"
	SpotShared SpotType = "shared"
)

// ShareHalf is one of the two independently assignable time-slices of a
// shared spot.
type ShareHalf string

const (
	HalfA ShareHalf = "A"
	HalfB ShareHalf = "B"
)

// ScheduleLabel returns the fixed day schedule attached to a half.
func (h ShareHalf) ScheduleLabel() string {
	switch h {
	case HalfA:
		return "Monday/Wednesday/Friday"
	case HalfB:
		return "Tuesday/Thursday"
	default:
		return ""
	}
}

// Other returns the opposite half, the one a partner would hold.
func (h ShareHalf) Other() ShareHalf {
	switch h {
	case HalfA:
		return HalfB
	case HalfB:
		return HalfA
	default:
		return ""
	}
}

func (h ShareHalf) IsValid() bool {
	return h == HalfA || h == HalfB
}

type Spot struct {
	ID     string     `json:"id"`
	Status SpotStatus `json:"status"`
	Type   SpotType   `json:"type"`
	// AssignedTo holds the reference id of the claiming registration,
	// nil while the spot is unassigned.
	AssignedTo *string `json:"assignedTo"`
}

type Lot struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Spots []Spot `json:"spots"`
}

// Inventory is the full set of lots, ordered by lot key. It lives in
// memory only; admin mutations do not persist it.
type Inventory struct {
	Lots []Lot `json:"lots"`
}

func (inv Inventory) IsEmpty() bool {
	return len(inv.Lots) == 0
}

func (inv Inventory) Lot(key string) (Lot, bool) {
	for _, lot := range inv.Lots {
		if lot.Key == key {
			return lot, true
		}
	}

	return Lot{}, false
}

func (inv Inventory) Spot(lotKey, spotID string) (Spot, bool) {
	lot, ok := inv.Lot(lotKey)
	if !ok {
		return Spot{}, false
	}

	for _, spot := range lot.Spots {
		if spot.ID == spotID {
			return spot, true
		}
	}

	return Spot{}, false
}

// LotSpot is one row of the admin spots table: a spot together with the
// lot it belongs to.
type LotSpot struct {
	LotKey  string `json:"lotKey"`
	LotName string `json:"lotName"`
	Spot    Spot   `json:"spot"`
}

// SpotCounts is the dashboard summary computed by scanning every lot.
type SpotCounts struct {
	TotalSpots         int `json:"totalSpots"`
	AvailableSpots     int `json:"availableSpots"`
	TakenSpots         int `json:"takenSpots"`
	TotalRegistrations int `json:"totalRegistrations"`
}

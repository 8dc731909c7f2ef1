package response

import "github.com/campus-parking/registration-api/internal/domain"

type LoginResponse struct {
	Token   string              `json:"token"`
	Session domain.AdminSession `json:"session"`
}

// LotOverview is the selector page's lot tab: the lot plus how many
// spots are still open.
type LotOverview struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	TotalSpots     int    `json:"totalSpots"`
	AvailableSpots int    `json:"availableSpots"`
}

func NewLotOverview(lot domain.Lot) LotOverview {
	overview := LotOverview{
		Key:        lot.Key,
		Name:       lot.Name,
		TotalSpots: len(lot.Spots),
	}
	for _, spot := range lot.Spots {
		if spot.Status == domain.SpotAvailable {
			overview.AvailableSpots++
		}
	}

	return overview
}

// SpotTarget is one activation target on the selector: solo spots have
// one, shared spots have one per half with its schedule label.
type SpotTarget struct {
	Half     string `json:"half,omitempty"`
	Schedule string `json:"schedule,omitempty"`
}

type SpotResponse struct {
	ID      string            `json:"id"`
	Status  domain.SpotStatus `json:"status"`
	Type    domain.SpotType   `json:"type"`
	Targets []SpotTarget      `json:"targets"`
}

func NewSpotResponse(spot domain.Spot) SpotResponse {
	resp := SpotResponse{
		ID:     spot.ID,
		Status: spot.Status,
		Type:   spot.Type,
	}

	switch spot.Type {
	case domain.SpotShared:
		resp.Targets = []SpotTarget{
			{Half: string(domain.HalfA), Schedule: domain.HalfA.ScheduleLabel()},
			{Half: string(domain.HalfB), Schedule: domain.HalfB.ScheduleLabel()},
		}
	default:
		resp.Targets = []SpotTarget{{}}
	}

	return resp
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type ThemeResponse struct {
	Theme domain.ThemePreference `json:"theme"`
}

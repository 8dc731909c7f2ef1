package domain

// Selection is the student's in-progress spot choice. At most one
// exists per session; submitting a registration consumes it.
type Selection struct {
	SpotID  string    `json:"spotId"`
	LotKey  string    `json:"lotKey"`
	LotName string    `json:"lotName"`
	Type    SpotType  `json:"spotType"`
	Half    ShareHalf `json:"half,omitempty"`
}

// ScheduleLabel is the student's own day schedule for a shared
// selection, empty for solo spots.
func (s Selection) ScheduleLabel() string {
	if s.Type != SpotShared {
		return ""
	}

	return s.Half.ScheduleLabel()
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// SelectSpotRequest picks one spot, or one half of a shared spot. Half
// is required for shared spots, which the service enforces against the
// inventory.
type SelectSpotRequest struct {
	LotKey string `json:"lotKey"`
	SpotID string `json:"spotId"`
	Half   string `json:"half,omitempty"`
}

func (req *SelectSpotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.LotKey, validation.Required.Error("Parking lot is required")),
		validation.Field(&req.SpotID, validation.Required.Error("Parking spot is required")),
		validation.Field(&req.Half, validation.In("A", "B").Error("Half must be A or B")),
	)
}

package dto

type SlotDTO struct {
	Start     string `json:"start"` // "15:04" in the salon's timezone
	End       string `json:"end"`
	Available bool   `json:"available"`
}

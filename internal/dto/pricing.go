package dto

type SetWeeklyPriceRequestDTO struct {
	FieldID    int      `json:"field_id" validate:"required,gt=0" example:"1"`
	DayOfWeeks []string `json:"day_of_weeks" validate:"required,min=1,dive,oneof=mon tue wed thu fri sat sun" example:"mon,tue"`
	StartAt    string   `json:"start_at" validate:"required,clock" example:"08:00"`
	EndAt      string   `json:"end_at" validate:"required,clock" example:"10:00"`
	Price      int64    `json:"price" validate:"gte=0" example:"100000"`
}

type SetSpecialPriceRequestDTO struct {
	FieldID int    `json:"field_id" validate:"required,gt=0" example:"1"`
	StartAt string `json:"start_at" validate:"required,datetime" example:"2024-05-13 08:00"`
	EndAt   string `json:"end_at" validate:"required,datetime" example:"2024-05-13 08:30"`
	Price   int64  `json:"price" validate:"gte=0" example:"150000"`
}

type PriceRangeDTO struct {
	StartAt string `json:"start_at" example:"08:00"`
	EndAt   string `json:"end_at" example:"10:00"`
	Price   int64  `json:"price" example:"100000"`
}

type DayPricingDTO struct {
	DayOfWeek string          `json:"day_of_week" example:"mon"`
	Prices    []PriceRangeDTO `json:"prices"`
}

type WeeklyPricingResponseDTO struct {
	FieldID int             `json:"field_id" example:"1"`
	Days    []DayPricingDTO `json:"day_of_weeks"`
}

type SpecialPricingResponseDTO struct {
	FieldID int             `json:"field_id" example:"1"`
	Prices  []PriceRangeDTO `json:"prices"`
}

type ResolvedPricingResponseDTO struct {
	FieldID int             `json:"field_id" example:"1"`
	Date    string          `json:"date" example:"2024-05-13"`
	Prices  []PriceRangeDTO `json:"prices"`
}

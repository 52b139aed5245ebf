package pricing

//go:generate mockgen -source=pricing.go -destination=mock_pricing.go -package=pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/dto"
	"github.com/GlebRadaev/fieldbook/internal/service/pricingservice"
	"github.com/GlebRadaev/fieldbook/internal/timegrid"
	"github.com/GlebRadaev/fieldbook/pkg/utils"
	"github.com/GlebRadaev/fieldbook/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

type Service interface {
	SetWeeklyPrice(ctx context.Context, fieldID int, days []domain.DayOfWeek, start, end timegrid.Clock, price int64) error
	SetSpecialPrice(ctx context.Context, fieldID int, start, end time.Time, price int64) error
	WeeklySchedule(ctx context.Context, fieldID int) ([]pricingservice.DaySchedule, error)
	SpecialSchedule(ctx context.Context, fieldID int) ([]pricingservice.SpecialRange, error)
	Resolve(ctx context.Context, fieldID int, date time.Time) ([]timegrid.PricedSlot, error)
}

type PricingHandler struct {
	pricingService Service
}

func New(pricingService Service) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// SetWeeklyPrice godoc
//
//	@Summary		Set a weekly price
//	@Description	Replace the active price of every slot in [start_at, end_at) on the given days.
//	@Tags			Pricing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetWeeklyPriceRequestDTO	true	"Weekly price"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Field not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/field-pricings [post]
func (h *PricingHandler) SetWeeklyPrice(w http.ResponseWriter, r *http.Request) {
	var req dto.SetWeeklyPriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	days := make([]domain.DayOfWeek, 0, len(req.DayOfWeeks))
	for _, d := range req.DayOfWeeks {
		day, err := domain.ParseDayOfWeek(d)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		days = append(days, day)
	}
	start, err := timegrid.ParseClock(req.StartAt)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := timegrid.ParseClock(req.EndAt)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.pricingService.SetWeeklyPrice(r.Context(), req.FieldID, days, start, end, req.Price); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "Weekly price saved"})
}

// SetSpecialPrice godoc
//
//	@Summary		Set a special price
//	@Description	Override the price of every slot in [start_at, end_at), read in the venue's time zone.
//	@Tags			Pricing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetSpecialPriceRequestDTO	true	"Special price"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Field not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/field-pricings/special [post]
func (h *PricingHandler) SetSpecialPrice(w http.ResponseWriter, r *http.Request) {
	var req dto.SetSpecialPriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	start, err := time.Parse(validate.DateTimeLayout, req.StartAt)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "start_at must be yyyy-mm-dd HH:MM")
		return
	}
	end, err := time.Parse(validate.DateTimeLayout, req.EndAt)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "end_at must be yyyy-mm-dd HH:MM")
		return
	}

	if err := h.pricingService.SetSpecialPrice(r.Context(), req.FieldID, start, end, req.Price); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "Special price saved"})
}

// GetWeekly godoc
//
//	@Summary		Weekly prices of a field
//	@Tags			Pricing
//	@Produce		json
//	@Param			field_id	path		int	true	"Field id"
//	@Success		200			{object}	dto.WeeklyPricingResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid field id"
//	@Failure		404			{object}	utils.Response	"Field not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/field-pricings/{field_id} [get]
func (h *PricingHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	fieldID, ok := pathID(w, r)
	if !ok {
		return
	}
	schedule, err := h.pricingService.WeeklySchedule(r.Context(), fieldID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := dto.WeeklyPricingResponseDTO{FieldID: fieldID, Days: make([]dto.DayPricingDTO, 0, len(schedule))}
	for _, day := range schedule {
		resp.Days = append(resp.Days, dto.DayPricingDTO{DayOfWeek: string(day.Day), Prices: clockRanges(day.Prices)})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetSpecial godoc
//
//	@Summary		Special prices of a field
//	@Tags			Pricing
//	@Produce		json
//	@Param			field_id	path		int	true	"Field id"
//	@Success		200			{object}	dto.SpecialPricingResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid field id"
//	@Failure		404			{object}	utils.Response	"Field not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/field-pricings/special/{field_id} [get]
func (h *PricingHandler) GetSpecial(w http.ResponseWriter, r *http.Request) {
	fieldID, ok := pathID(w, r)
	if !ok {
		return
	}
	ranges, err := h.pricingService.SpecialSchedule(r.Context(), fieldID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	prices := lo.Map(ranges, func(sr pricingservice.SpecialRange, _ int) dto.PriceRangeDTO {
		return dto.PriceRangeDTO{
			StartAt: sr.Start.Format(validate.DateTimeLayout),
			EndAt:   sr.End.Format(validate.DateTimeLayout),
			Price:   sr.Price,
		}
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.SpecialPricingResponseDTO{FieldID: fieldID, Prices: prices})
}

// Resolve godoc
//
//	@Summary		Price timeline of a field on a date
//	@Description	Weekly prices of the weekday with that day's special prices laid over them.
//	@Tags			Pricing
//	@Produce		json
//	@Param			field_id	path		int		true	"Field id"
//	@Param			date		query		string	true	"yyyy-mm-dd"
//	@Success		200			{object}	dto.ResolvedPricingResponseDTO
//	@Success		204			{object}	utils.Response	"No pricing configured"
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		404			{object}	utils.Response	"Field not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/field-pricings/{field_id}/resolve [get]
func (h *PricingHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	fieldID, ok := pathID(w, r)
	if !ok {
		return
	}
	raw := r.URL.Query().Get("date")
	date, err := time.Parse(validate.DateLayout, raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "date must be yyyy-mm-dd")
		return
	}

	slots, err := h.pricingService.Resolve(r.Context(), fieldID, date)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(slots) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, utils.Response{Message: "No pricing configured"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ResolvedPricingResponseDTO{FieldID: fieldID, Date: raw, Prices: clockRanges(slots)})
}

func clockRanges(slots []timegrid.PricedSlot) []dto.PriceRangeDTO {
	return lo.Map(slots, func(s timegrid.PricedSlot, _ int) dto.PriceRangeDTO {
		return dto.PriceRangeDTO{StartAt: s.Start.String(), EndAt: s.End.String(), Price: s.Price}
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "field_id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid field id")
		return 0, false
	}
	return id, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pricingservice.ErrInvalidRange):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pricingservice.ErrFieldNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

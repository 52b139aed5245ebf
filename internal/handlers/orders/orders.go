package orders

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/dto"
	"github.com/GlebRadaev/fieldbook/internal/gateway"
	orderservice "github.com/GlebRadaev/fieldbook/internal/service/orderservice"
	"github.com/GlebRadaev/fieldbook/internal/timegrid"
	"github.com/GlebRadaev/fieldbook/pkg/utils"
	"github.com/GlebRadaev/fieldbook/pkg/validate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Service interface {
	CreateReservation(ctx context.Context, req orderservice.ReservationRequest) (*orderservice.Reservation, error)
	HandleSettlement(ctx context.Context, orderRef int64, code string) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*orderservice.OrderView, error)
	ForceStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*orderservice.OrderView, error)
	ListPaidByStore(ctx context.Context, storeID string, filter domain.PaidOrderFilter) ([]orderservice.OrderView, error)
	ListPaidByUser(ctx context.Context, userID string) ([]orderservice.OrderView, error)
}

type WebhookVerifier interface {
	VerifyWebhook(data json.RawMessage, signature string) error
}

type OrderHandler struct {
	orderService Service
	verifier     WebhookVerifier
	loc          *time.Location
}

func New(orderService Service, verifier WebhookVerifier, loc *time.Location) *OrderHandler {
	if loc == nil {
		loc = time.Local
	}
	return &OrderHandler{
		orderService: orderService,
		verifier:     verifier,
		loc:          loc,
	}
}

// CreatePayment godoc
//
//	@Summary		Create a reservation
//	@Description	Store a PENDING order for the chosen slots and open a checkout session for it.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Reservation"
//	@Success		200		{object}	dto.CreatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Field not found"
//	@Failure		502		{object}	utils.Response	"Payment gateway unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/create-payment [post]
func (h *OrderHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := time.Parse(validate.DateLayout, req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "date must be yyyy-mm-dd")
		return
	}
	items := make([]orderservice.Item, 0, len(req.Items))
	for _, it := range req.Items {
		start, err := timegrid.ParseClock(it.StartAt)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		end, err := timegrid.ParseClock(it.EndAt)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		items = append(items, orderservice.Item{FieldID: it.FieldID, Name: it.Name, Start: start, End: end, Price: it.Price})
	}

	res, err := h.orderService.CreateReservation(r.Context(), orderservice.ReservationRequest{
		UserID:      req.UserID,
		StoreID:     req.StoreID,
		Items:       items,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreatePaymentResponseDTO{
		OrderCode:   res.OrderRef,
		Amount:      res.Amount,
		CheckoutURL: res.CheckoutURL,
		Description: res.Description,
	})
}

// Webhook godoc
//
//	@Summary		Payment settlement callback
//	@Description	Called by the payment gateway. Code "00" pays the order, anything else fails it.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WebhookRequestDTO	true	"Settlement"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body or signature"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/webhook [post]
func (h *OrderHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Data) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var data dto.WebhookDataDTO
	if err := json.Unmarshal(req.Data, &data); err != nil || data.OrderCode == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid webhook data")
		return
	}
	if h.verifier != nil {
		if err := h.verifier.VerifyWebhook(req.Data, req.Signature); err != nil {
			zap.L().Warn("webhook signature rejected", zap.Int64("order_ref", data.OrderCode))
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid signature")
			return
		}
	}

	code := data.Code
	if code == "" {
		code = req.Code
	}
	order, err := h.orderService.HandleSettlement(r.Context(), data.OrderCode, code)
	switch {
	case errors.Is(err, orderservice.ErrOrderFinalized):
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order already finalized"})
		return
	case err != nil:
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order "+string(order.Status)})
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Description	Order with merged details. status_payment applies the operator override first.
//	@Tags			Orders
//	@Produce		json
//	@Param			order_id		path		int		true	"Order id"
//	@Param			status_payment	query		string	false	"Forced status"	Enums(PAID, FAILED)
//	@Success		200				{object}	dto.OrderResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid order id or status"
//	@Failure		404				{object}	utils.Response	"Order not found"
//	@Failure		409				{object}	utils.Response	"Transition not allowed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/{order_id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}

	var view *orderservice.OrderView
	var err error
	if status := r.URL.Query().Get("status_payment"); status != "" {
		view, err = h.orderService.ForceStatus(r.Context(), orderID, domain.OrderStatus(status))
	} else {
		view, err = h.orderService.GetOrder(r.Context(), orderID)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponse(*view))
}

// UpdateStatus godoc
//
//	@Summary		Override an order status
//	@Description	Allowed: PENDING to PAID, PENDING to FAILED, FAILED to PAID.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		int							true	"Order id"
//	@Param			request		body		dto.UpdateStatusRequestDTO	true	"Target status"
//	@Success		200			{object}	dto.OrderResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		404			{object}	utils.Response	"Order not found"
//	@Failure		409			{object}	utils.Response	"Transition not allowed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/{order_id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.orderService.ForceStatus(r.Context(), orderID, domain.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponse(*view))
}

// GetStoreOrders godoc
//
//	@Summary		Paid orders of a store
//	@Description	start_time/end_time bound creation, play_date_start/play_date_end bound play time. Each accepts yyyy-mm-dd or RFC3339.
//	@Tags			Orders
//	@Produce		json
//	@Param			store_id		path	string	true	"Store id"
//	@Param			start_time		query	string	false	"Created from"
//	@Param			end_time		query	string	false	"Created to"
//	@Param			play_date_start	query	string	false	"Play from"
//	@Param			play_date_end	query	string	false	"Play to"
//	@Success		200				{array}		dto.OrderResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid filter"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/store/{store_id} [get]
func (h *OrderHandler) GetStoreOrders(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	q := r.URL.Query()

	var filter domain.PaidOrderFilter
	bounds := []struct {
		param string
		dst   *time.Time
		end   bool
	}{
		{"start_time", &filter.CreatedFrom, false},
		{"end_time", &filter.CreatedTo, true},
		{"play_date_start", &filter.PlayFrom, false},
		{"play_date_end", &filter.PlayTo, true},
	}
	for _, b := range bounds {
		t, err := h.parseBound(q.Get(b.param), b.end)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, b.param+" must be yyyy-mm-dd or RFC3339")
			return
		}
		*b.dst = t
	}

	views, err := h.orderService.ListPaidByStore(r.Context(), storeID, filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponses(views))
}

// GetUserOrders godoc
//
//	@Summary		Paid orders of a user
//	@Tags			Orders
//	@Produce		json
//	@Param			user_id	path		string	true	"User id"
//	@Success		200		{array}		dto.OrderResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/user/{user_id} [get]
func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	views, err := h.orderService.ListPaidByUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponses(views))
}

// parseBound reads a filter bound. A bare date used as an upper bound
// covers the whole day.
func (h *OrderHandler) parseBound(s string, end bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(validate.DateLayout, s, h.loc)
	if err != nil {
		return time.Time{}, err
	}
	if end {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "order_id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return id, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderservice.ErrValidation), errors.Is(err, orderservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, orderservice.ErrOrderNotFound), errors.Is(err, orderservice.ErrFieldNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrTransitionNotAllowed), errors.Is(err, orderservice.ErrOrderFinalized):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, orderservice.ErrGateway), errors.Is(err, gateway.ErrUnexpectedResponse):
		utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *OrderHandler) toResponses(views []orderservice.OrderView) []dto.OrderResponseDTO {
	out := make([]dto.OrderResponseDTO, 0, len(views))
	for _, v := range views {
		out = append(out, h.toResponse(v))
	}
	return out
}

func (h *OrderHandler) toResponse(v orderservice.OrderView) dto.OrderResponseDTO {
	resp := dto.OrderResponseDTO{
		ID:           v.ID,
		OrderCode:    v.OrderRef,
		UserID:       v.UserID,
		StoreID:      v.StoreID,
		Status:       string(v.Status),
		Cost:         v.Cost,
		Description:  v.Description,
		CreatedAt:    v.CreatedAt.In(h.loc).Format(time.RFC3339),
		OrderDetails: make([]dto.OrderDetailDTO, 0, len(v.Details)),
	}
	for _, d := range v.Details {
		resp.OrderDetails = append(resp.OrderDetails, dto.OrderDetailDTO{
			FieldID:   d.FieldID,
			StartTime: d.StartTime.In(h.loc).Format(time.RFC3339),
			EndTime:   d.EndTime.In(h.loc).Format(time.RFC3339),
			Price:     d.Price,
		})
	}
	if v.Store != nil {
		resp.Store = &dto.StoreDTO{ID: v.Store.ID, Name: v.Store.Name, Address: v.Store.Address, Phone: v.Store.Phone}
	}
	if v.User != nil {
		resp.User = &dto.UserDTO{ID: v.User.ID, Name: v.User.Name, Email: v.User.Email, Phone: v.User.Phone}
	}
	return resp
}

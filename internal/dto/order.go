package dto

import "encoding/json"

type OrderItemDTO struct {
	FieldID int    `json:"field_id" validate:"required,gt=0" example:"1"`
	Name    string `json:"name" example:"Pitch A"`
	StartAt string `json:"start_at" validate:"required,clock" example:"08:00"`
	EndAt   string `json:"end_at" validate:"required,clock" example:"08:30"`
	Price   int64  `json:"price" validate:"gte=0" example:"100000"`
}

type CreatePaymentRequestDTO struct {
	Amount      int64          `json:"amount" validate:"required,gt=0" example:"200000"`
	Description string         `json:"description" validate:"required,max=255" example:"Pitch A evening"`
	Items       []OrderItemDTO `json:"items" validate:"required,min=1,dive"`
	StoreID     string         `json:"store_id" validate:"required" example:"store-1"`
	UserID      string         `json:"user_id" validate:"required" example:"user-1"`
	Date        string         `json:"date" validate:"required,date" example:"2024-05-13"`
}

type CreatePaymentResponseDTO struct {
	OrderCode   int64  `json:"orderCode" example:"1715000000000"`
	Amount      int64  `json:"amount" example:"200000"`
	CheckoutURL string `json:"checkoutUrl" example:"https://pay.payos.vn/web/abc"`
	Description string `json:"description" example:"Pitch A evening"`
}

// WebhookRequestDTO is the gateway's settlement callback. Data is kept raw
// so its signature can be checked over the exact fields sent.
type WebhookRequestDTO struct {
	Code      string          `json:"code" example:"00"`
	Desc      string          `json:"desc" example:"success"`
	Success   bool            `json:"success" example:"true"`
	Data      json.RawMessage `json:"data" swaggertype:"object"`
	Signature string          `json:"signature"`
}

type WebhookDataDTO struct {
	OrderCode int64  `json:"orderCode" example:"1715000000000"`
	Amount    int64  `json:"amount" example:"200000"`
	Code      string `json:"code" example:"00"`
	Desc      string `json:"desc" example:"success"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=PENDING PAID FAILED" example:"PAID"`
}

type OrderDetailDTO struct {
	FieldID   int    `json:"field_id" example:"1"`
	StartTime string `json:"start_time" example:"2024-05-13T08:00:00+07:00"`
	EndTime   string `json:"end_time" example:"2024-05-13T09:30:00+07:00"`
	Price     int64  `json:"price" example:"100000"`
}

type StoreDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type OrderResponseDTO struct {
	ID           int              `json:"id" example:"42"`
	OrderCode    int64            `json:"orderCode" example:"1715000000000"`
	UserID       string           `json:"user_id" example:"user-1"`
	StoreID      string           `json:"store_id" example:"store-1"`
	Status       string           `json:"status" example:"PAID"`
	Cost         int64            `json:"cost" example:"200000"`
	Description  string           `json:"description" example:"Pitch A evening"`
	CreatedAt    string           `json:"created_at" example:"2024-05-06T16:00:00+07:00"`
	OrderDetails []OrderDetailDTO `json:"orderDetails"`
	Store        *StoreDTO        `json:"store"`
	User         *UserDTO         `json:"user"`
}

type SweepResponseDTO struct {
	Failed    int64  `json:"failed" example:"3"`
	Threshold string `json:"threshold" example:"2m0s"`
}

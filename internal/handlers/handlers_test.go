package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/handlers/orders"
	"github.com/GlebRadaev/fieldbook/internal/handlers/pricing"
	"github.com/GlebRadaev/fieldbook/internal/service"
	"github.com/GlebRadaev/fieldbook/internal/sweeper"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		OrderService:    orders.NewMockService(ctrl),
		PricingService:  pricing.NewMockService(ctrl),
		WebhookVerifier: orders.NewMockWebhookVerifier(ctrl),
		Sweeper:         sweeper.New(sweeper.NewMockService(ctrl), time.Second, time.Minute),
		Location:        time.UTC,
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.OrderHandler)
	assert.NotNil(t, h.PricingHandler)
	assert.NotNil(t, h.OpsHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockPricingHandler := NewMockPricingHandler(ctrl)
	mockOpsHandler := NewMockOpsHandler(ctrl)

	mockOrderHandler.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetStoreOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetUserOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().SetWeeklyPrice(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().SetSpecialPrice(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().GetWeekly(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().GetSpecial(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().Resolve(gomock.Any(), gomock.Any()).AnyTimes()
	mockOpsHandler.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		OrderHandler:   mockOrderHandler,
		PricingHandler: mockPricingHandler,
		OpsHandler:     mockOpsHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/v1/orders/create-payment", http.StatusOK},
		{"POST", "/api/v1/orders/webhook", http.StatusOK},
		{"GET", "/api/v1/orders/42", http.StatusOK},
		{"PUT", "/api/v1/orders/42/status", http.StatusOK},
		{"GET", "/api/v1/orders/store/s1", http.StatusOK},
		{"GET", "/api/v1/orders/user/u1", http.StatusOK},
		{"POST", "/api/v1/field-pricings", http.StatusOK},
		{"POST", "/api/v1/field-pricings/special", http.StatusOK},
		{"GET", "/api/v1/field-pricings/1", http.StatusOK},
		{"GET", "/api/v1/field-pricings/special/1", http.StatusOK},
		{"GET", "/api/v1/field-pricings/1/resolve", http.StatusOK},
		{"POST", "/api/v1/ops/sweep-expired", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"DELETE", "/api/v1/orders/42", http.StatusMethodNotAllowed},
		{"GET", "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

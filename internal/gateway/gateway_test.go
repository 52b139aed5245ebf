package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/fieldbook/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T, checksumKey string) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	cfg := Config{Address: "http://gateway/", ClientID: "cid", APIKey: "key", ChecksumKey: checksumKey}
	return New(cfg, client), client
}

func TestClient_CreateCheckout(t *testing.T) {
	req := CheckoutRequest{
		OrderCode:   1715000000000,
		Amount:      200000,
		Description: "Field 1",
		Items:       []Item{{Name: "Field 1 08:00-09:00", Quantity: 1, Price: 200000}},
		ReturnURL:   "http://app/success",
		CancelURL:   "http://app/cancel",
	}

	tests := []struct {
		name      string
		mockSetup func(client *clients.MockHTTPClientI)
		expectErr error
		want      *Checkout
	}{
		{
			name: "Session created",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), "http://gateway/v2/payment-requests", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, error) {
						assert.Equal(t, "cid", headers.Get("x-client-id"))
						assert.Equal(t, "key", headers.Get("x-api-key"))

						var sent checkoutBody
						require.NoError(t, json.Unmarshal(body, &sent))
						assert.Equal(t, req.OrderCode, sent.OrderCode)
						assert.Equal(t, Sign("secret", map[string]string{
							"amount":      "200000",
							"cancelUrl":   req.CancelURL,
							"description": req.Description,
							"orderCode":   "1715000000000",
							"returnUrl":   req.ReturnURL,
						}), sent.Signature)

						return http.StatusOK, []byte(`{"code":"00","desc":"success","data":{"checkoutUrl":"https://pay/abc","orderCode":1715000000000,"paymentLinkId":"abc","status":"PENDING"}}`), nil
					})
			},
			want: &Checkout{CheckoutURL: "https://pay/abc", OrderCode: 1715000000000, PaymentLinkID: "abc", Status: "PENDING"},
		},
		{
			name: "Gateway rejects the request",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"code":"231","desc":"order exists","data":null}`), nil)
			},
			expectErr: ErrUnexpectedResponse,
		},
		{
			name: "Non 200 status",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadGateway, nil, nil)
			},
			expectErr: ErrUnexpectedResponse,
		},
		{
			name: "Malformed body",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`not json`), nil)
			},
			expectErr: ErrUnexpectedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, client := NewMock(t, "secret")
			tt.mockSetup(client)

			got, err := gw.CreateCheckout(context.Background(), req)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_CreateCheckoutTransportError(t *testing.T) {
	gw, client := NewMock(t, "")
	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil, errors.New("connection refused"))

	_, err := gw.CreateCheckout(context.Background(), CheckoutRequest{OrderCode: 1})

	assert.Error(t, err)
}

func TestSign(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("a=1&b=x"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, Sign("secret", map[string]string{"b": "x", "a": "1"}))
	assert.True(t, Verify("secret", map[string]string{"a": "1", "b": "x"}, want))
	assert.False(t, Verify("other", map[string]string{"a": "1", "b": "x"}, want))
}

func TestClient_VerifyWebhook(t *testing.T) {
	data := json.RawMessage(`{"orderCode":123,"amount":200000,"code":"00","desc":"success","reference":null,"paid":true}`)
	signature := Sign("secret", map[string]string{
		"orderCode": "123",
		"amount":    "200000",
		"code":      "00",
		"desc":      "success",
		"reference": "",
		"paid":      "true",
	})

	gw, _ := NewMock(t, "secret")
	assert.True(t, gw.SignatureRequired())
	assert.NoError(t, gw.VerifyWebhook(data, signature))
	assert.ErrorIs(t, gw.VerifyWebhook(data, "deadbeef"), ErrInvalidSignature)
	assert.ErrorIs(t, gw.VerifyWebhook(json.RawMessage(`[1,2]`), signature), ErrInvalidSignature)

	open, _ := NewMock(t, "")
	assert.False(t, open.SignatureRequired())
	assert.NoError(t, open.VerifyWebhook(data, ""))
}

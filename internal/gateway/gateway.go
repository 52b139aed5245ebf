// Package gateway is a client for a PayOS-style payment gateway: it opens
// hosted checkout sessions and verifies settlement webhooks.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/metrics"
	"github.com/GlebRadaev/fieldbook/pkg/clients"
	"go.uber.org/zap"
)

const (
	checkoutPath = "/v2/payment-requests"
	// SuccessCode is the gateway's settlement code for a paid order.
	SuccessCode = "00"
)

var (
	ErrUnexpectedResponse = errors.New("unexpected payment gateway response")
	ErrInvalidSignature   = errors.New("invalid payment gateway signature")
)

type Config struct {
	Address     string
	ClientID    string
	APIKey      string
	ChecksumKey string
}

type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type CheckoutRequest struct {
	OrderCode   int64
	Amount      int64
	Description string
	Items       []Item
	ReturnURL   string
	CancelURL   string
}

type Checkout struct {
	CheckoutURL   string `json:"checkoutUrl"`
	OrderCode     int64  `json:"orderCode"`
	PaymentLinkID string `json:"paymentLinkId"`
	Status        string `json:"status"`
}

type checkoutBody struct {
	OrderCode   int64  `json:"orderCode"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
	CancelURL   string `json:"cancelUrl"`
	ReturnURL   string `json:"returnUrl"`
	Signature   string `json:"signature,omitempty"`
}

type envelope struct {
	Code string          `json:"code"`
	Desc string          `json:"desc"`
	Data json.RawMessage `json:"data"`
}

type Client struct {
	cfg    Config
	client clients.HTTPClientI
}

func New(cfg Config, client clients.HTTPClientI) *Client {
	cfg.Address = strings.TrimRight(cfg.Address, "/")
	return &Client{cfg: cfg, client: client}
}

// CreateCheckout opens a hosted checkout session for one order.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	body := checkoutBody{
		OrderCode:   req.OrderCode,
		Amount:      req.Amount,
		Description: req.Description,
		Items:       req.Items,
		CancelURL:   req.CancelURL,
		ReturnURL:   req.ReturnURL,
	}
	if c.cfg.ChecksumKey != "" {
		body.Signature = Sign(c.cfg.ChecksumKey, map[string]string{
			"amount":      fmt.Sprint(req.Amount),
			"cancelUrl":   req.CancelURL,
			"description": req.Description,
			"orderCode":   fmt.Sprint(req.OrderCode),
			"returnUrl":   req.ReturnURL,
		})
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode checkout request: %w", err)
	}

	started := time.Now()
	statusCode, respBody, err := c.client.Post(ctx, c.cfg.Address+checkoutPath, c.headers(), payload)
	outcome := "ok"
	defer func() {
		metrics.GatewayRequestDuration.WithLabelValues("create_checkout", outcome).Observe(time.Since(started).Seconds())
	}()
	if err != nil {
		outcome = "error"
		zap.L().Error("payment gateway unreachable", zap.Int64("order_ref", req.OrderCode), zap.Error(err))
		return nil, err
	}
	if statusCode != http.StatusOK {
		outcome = "error"
		zap.L().Error("unexpected payment gateway status", zap.Int("status", statusCode), zap.Int64("order_ref", req.OrderCode))
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, statusCode)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		outcome = "error"
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if env.Code != SuccessCode {
		outcome = "rejected"
		zap.L().Warn("payment gateway rejected checkout", zap.String("code", env.Code), zap.String("desc", env.Desc))
		return nil, fmt.Errorf("%w: code %s: %s", ErrUnexpectedResponse, env.Code, env.Desc)
	}

	var checkout Checkout
	if err := json.Unmarshal(env.Data, &checkout); err != nil || checkout.CheckoutURL == "" {
		outcome = "error"
		return nil, fmt.Errorf("%w: missing checkout url", ErrUnexpectedResponse)
	}
	if checkout.OrderCode == 0 {
		checkout.OrderCode = req.OrderCode
	}
	return &checkout, nil
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if c.cfg.ClientID != "" {
		h.Set("x-client-id", c.cfg.ClientID)
	}
	if c.cfg.APIKey != "" {
		h.Set("x-api-key", c.cfg.APIKey)
	}
	return h
}

// SignatureRequired reports whether webhooks must carry a valid signature.
func (c *Client) SignatureRequired() bool {
	return c.cfg.ChecksumKey != ""
}

// VerifyWebhook checks signature against the raw webhook data object. It
// accepts anything when no checksum key is configured.
func (c *Client) VerifyWebhook(data json.RawMessage, signature string) error {
	if c.cfg.ChecksumKey == "" {
		return nil
	}
	fields, err := flatten(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !Verify(c.cfg.ChecksumKey, fields, signature) {
		return ErrInvalidSignature
	}
	return nil
}

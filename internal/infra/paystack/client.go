// Package paystack implements the payment gateway against the Paystack REST API.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"campusmarket/config"
	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// client talks to the Paystack transaction API. Amounts cross the wire in
// minor units (pesewas for GHS), so every request multiplies by 100 and
// every response divides back.
type client struct {
	baseURL     string
	secretKey   string
	callbackURL string
	currency    string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a Paystack gateway client from configuration
func NewClient(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Paystack == nil {
		return nil, errors.New("paystack configuration is required")
	}
	if cfg.Paystack.BaseURL == "" || cfg.Paystack.SecretKey == "" {
		return nil, errors.New("paystack base URL and secret key are required")
	}

	return &client{
		baseURL:     cfg.Paystack.BaseURL,
		secretKey:   cfg.Paystack.SecretKey,
		callbackURL: cfg.Paystack.CallbackURL,
		currency:    cfg.Paystack.Currency,
		httpClient: &http.Client{
			Timeout: cfg.Paystack.Timeout,
		},
		logger: logger,
	}, nil
}

// envelope is the outer shape of every Paystack response
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeRequest struct {
	Email       string       `json:"email"`
	Amount      int64        `json:"amount"`
	Currency    string       `json:"currency,omitempty"`
	Channels    []string     `json:"channels,omitempty"`
	CallbackURL string       `json:"callback_url,omitempty"`
	MobileMoney *mobileMoney `json:"mobile_money,omitempty"`
}

// mobileMoney identifies the wallet a momo charge is billed to
type mobileMoney struct {
	Phone string `json:"phone"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
}

// Initialize opens a gateway transaction and returns the provider reference
// with the checkout URL.
func (c *client) Initialize(ctx context.Context, req *service.InitializeRequest) (*service.InitializeResult, error) {
	payload := initializeRequest{
		Email:       req.Email,
		Amount:      toMinorUnits(req.Amount),
		Currency:    c.currency,
		Channels:    channelsFor(req.Method),
		CallbackURL: c.callbackURL,
	}
	if req.Method == entity.MethodMobileMoney && req.Phone != "" {
		payload.MobileMoney = &mobileMoney{Phone: req.Phone}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var data initializeData
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body), &data); err != nil {
		return nil, err
	}

	c.logger.Info("[Paystack] Transaction initialized",
		slog.String("reference", data.Reference),
	)

	return &service.InitializeResult{
		Reference:        data.Reference,
		AuthorizationURL: data.AuthorizationURL,
	}, nil
}

// Verify fetches the authoritative state of a transaction.
func (c *client) Verify(ctx context.Context, reference string) (*service.VerifyResult, error) {
	var data verifyData
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &data); err != nil {
		return nil, err
	}

	status := data.Status
	if status != service.GatewayStatusSuccess {
		// Paystack reports several non-success states (failed, abandoned,
		// reversed); all of them read as failed here.
		status = service.GatewayStatusFailed
	}

	return &service.VerifyResult{
		Reference: data.Reference,
		Status:    status,
		Amount:    fromMinorUnits(data.Amount),
	}, nil
}

func (c *client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "paystack request failed")
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrap(err, "failed to decode paystack response")
	}

	if !env.Status {
		c.logger.Warn("[Paystack] Request rejected",
			slog.String("path", path),
			slog.Int("http_status", resp.StatusCode),
			slog.String("message", env.Message),
		)

		return domainerrors.NewGatewayError(env.Message)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode paystack data")
		}
	}

	return nil
}

// channelsFor maps a payment method to the gateway channel list
func channelsFor(method entity.PaymentMethod) []string {
	switch method {
	case entity.MethodMobileMoney:
		return []string{"mobile_money"}
	case entity.MethodCard:
		return []string{"card"}
	default:
		return nil
	}
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}

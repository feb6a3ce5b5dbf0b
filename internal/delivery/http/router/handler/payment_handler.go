package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"campusmarket/internal/delivery/http/response"
	"campusmarket/internal/domain/entity"
	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment-related handlers
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// InitiatePaymentView is the wire shape of a freshly opened payment
type InitiatePaymentView struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	QRCode           string `json:"qr_code,omitempty"` // Base64 PNG of the checkout link.
}

// PaymentView is the wire shape of a payment record
type PaymentView struct {
	Reference string `json:"reference"`
	OrderID   int64  `json:"order_id"`
	Amount    string `json:"amount"`
	Method    string `json:"payment_method"`
	Status    string `json:"status"`
}

func toPaymentView(payment *entity.Payment) *PaymentView {
	return &PaymentView{
		Reference: payment.Reference,
		OrderID:   payment.OrderID,
		Amount:    payment.Amount.StringFixed(2),
		Method:    payment.Method.String(),
		Status:    payment.Status.String(),
	}
}

// InitiatePayment handles opening a gateway transaction for an order
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req usecase.InitiatePaymentInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.paymentUC.InitiatePayment(c.Request().Context(), actor, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	view := &InitiatePaymentView{
		Reference:        result.Reference,
		AuthorizationURL: result.AuthorizationURL,
	}
	if len(result.QRCode) > 0 {
		view.QRCode = base64.StdEncoding.EncodeToString(result.QRCode)
	}

	return response.Success(c, http.StatusOK, view, "Payment initiated successfully")
}

// VerifyPayment handles reconciling a payment with the gateway
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	reference := c.Param("reference")
	if reference == "" {
		return response.BadRequest(c, "MISSING_REFERENCE", "Payment reference is required")
	}

	payment, err := h.paymentUC.VerifyPayment(c.Request().Context(), actor, reference)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentView(payment), "Payment verified successfully")
}

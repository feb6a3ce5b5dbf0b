package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"campusmarket/internal/delivery/http/response"
	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// DashboardHandler holds dependencies for reporting handlers
type DashboardHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// GetSummary handles the staff sales dashboard
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	input := &usecase.SummaryInput{
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
	}
	if shopParam := c.QueryParam("shop_id"); shopParam != "" {
		shopID, err := strconv.ParseInt(shopParam, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_SHOP_ID", "Invalid shop ID")
		}
		input.ShopID = &shopID
	}

	summary, err := h.reportUC.Summarize(c.Request().Context(), actor, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Summary retrieved successfully")
}

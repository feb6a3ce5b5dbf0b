package usecase

import (
	"context"

	"campusmarket/internal/domain/entity"
)

// SummaryInput represents the dashboard query. Dates use the YYYY-MM-DD
// format; both default to today when omitted.
type SummaryInput struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	ShopID    *int64 `json:"shop_id,omitempty"`
}

// ItemSalesOutput is one row of the best-seller ranking
type ItemSalesOutput struct {
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
	Revenue  string `json:"revenue"`
}

// SummaryOutput represents the aggregated dashboard figures. Only orders
// that are both delivered and successfully paid count.
type SummaryOutput struct {
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
	TotalOrders       int64             `json:"total_orders"`
	TotalSales        string            `json:"total_sales"`
	AverageOrderValue string            `json:"average_order_value"`
	TopItems          []ItemSalesOutput `json:"top_items"`
}

// ReportUsecase defines the interface for dashboard reporting use cases
type ReportUsecase interface {
	// Summarize aggregates settled sales over an inclusive date range
	Summarize(ctx context.Context, actor *entity.Actor, input *SummaryInput) (*SummaryOutput, error)
}

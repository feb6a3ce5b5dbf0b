package impl

import (
	"context"
	"time"

	"campusmarket/config"
	"campusmarket/internal/domain/constants"
	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/usecase"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type reportService struct {
	orderRepo repository.OrderRepository
	location  *time.Location
}

// NewReportService creates a new report service instance
func NewReportService(orderRepo repository.OrderRepository, cfg *config.Config) (usecase.ReportUsecase, error) {
	location := time.UTC
	if cfg.Reporting != nil && cfg.Reporting.Timezone != "" {
		loaded, err := time.LoadLocation(cfg.Reporting.Timezone)
		if err != nil {
			return nil, err
		}
		location = loaded
	}

	return &reportService{
		orderRepo: orderRepo,
		location:  location,
	}, nil
}

// Summarize aggregates settled sales over an inclusive date range.
func (s *reportService) Summarize(ctx context.Context, actor *entity.Actor, input *usecase.SummaryInput) (*usecase.SummaryOutput, error) {
	if actor.Role != entity.RoleSuperAdmin {
		return nil, domainerrors.ErrPermissionDenied
	}

	if input == nil {
		input = &usecase.SummaryInput{}
	}

	start, end, err := s.resolveRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	// The range is inclusive of the end date, so the query bound is the
	// following midnight.
	from := start
	to := end.AddDate(0, 0, 1)

	summary, err := s.orderRepo.SalesSummary(ctx, from, to, input.ShopID, constants.TopItemsLimit)
	if err != nil {
		return nil, err
	}

	average := decimal.Zero
	if summary.TotalOrders > 0 {
		average = summary.TotalRevenue.
			Div(decimal.NewFromInt(summary.TotalOrders)).
			Round(2)
	}

	topItems := make([]usecase.ItemSalesOutput, 0, len(summary.TopItems))
	for _, item := range summary.TopItems {
		topItems = append(topItems, usecase.ItemSalesOutput{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Revenue:  item.Revenue.StringFixed(2),
		})
	}

	return &usecase.SummaryOutput{
		StartDate:         start.Format(dateLayout),
		EndDate:           end.Format(dateLayout),
		TotalOrders:       summary.TotalOrders,
		TotalSales:        summary.TotalRevenue.StringFixed(2),
		AverageOrderValue: average.StringFixed(2),
		TopItems:          topItems,
	}, nil
}

// resolveRange parses the date bounds, defaulting both to today.
func (s *reportService) resolveRange(startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	start := today
	if startDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, startDate, s.location)
		if err != nil {
			return time.Time{}, time.Time{}, domainerrors.ErrInvalidRange.WithDetails("start_date must be YYYY-MM-DD")
		}
		start = parsed
	}

	end := today
	if endDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, endDate, s.location)
		if err != nil {
			return time.Time{}, time.Time{}, domainerrors.ErrInvalidRange.WithDetails("end_date must be YYYY-MM-DD")
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, domainerrors.ErrInvalidRange.WithDetails("end_date precedes start_date")
	}

	return start, end, nil
}

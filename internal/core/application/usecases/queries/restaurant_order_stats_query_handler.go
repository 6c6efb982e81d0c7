package queries

import (
	"context"

	"foodorder/internal/core/application/auth"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RestaurantOrderStatsQueryHandler aggregates order counts and revenue per
// restaurant in one grouped query.
type RestaurantOrderStatsQueryHandler struct {
	db     *gorm.DB
	policy auth.Policy
}

// NewRestaurantOrderStatsQueryHandler creates a handler for restaurant
// statistics.
func NewRestaurantOrderStatsQueryHandler(db *gorm.DB, policy auth.Policy) RestaurantOrderStatsQueryHandler {
	return RestaurantOrderStatsQueryHandler{db: db, policy: policy}
}

// Handle returns the restaurant's statistics. The per-status counts always
// sum to the total count; revenue only includes delivered orders; active
// orders are those in a non-terminal status. "Today" is the server's UTC
// calendar day.
func (h RestaurantOrderStatsQueryHandler) Handle(ctx context.Context, query RestaurantOrderStatsQuery) (RestaurantOrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantOrderStatsResponse{}, err
	}
	if err := h.policy.CanViewRestaurantOrders(query.Principal(), query.RestaurantID()); err != nil {
		return RestaurantOrderStatsResponse{}, err
	}

	resp := RestaurantOrderStatsResponse{
		RestaurantID:      query.RestaurantID(),
		StatusCounts:      make(map[string]int),
		TodayStatusCounts: make(map[string]int),
		TotalRevenue:      decimal.Zero,
		TodayRevenue:      decimal.Zero,
	}
	for _, s := range order.AllStatuses() {
		resp.StatusCounts[s.String()] = 0
		resp.TodayStatusCounts[s.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS total_count,
			COUNT(*) FILTER (WHERE created_at >= date_trunc('day', now() AT TIME ZONE 'UTC')) AS today_count,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COALESCE(SUM(total_amount) FILTER (WHERE created_at >= date_trunc('day', now() AT TIME ZONE 'UTC')), 0) AS today_amount
		FROM orders
		WHERE restaurant_id = ?
		GROUP BY status
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return RestaurantOrderStatsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var totalCount, todayCount int
		var totalAmount, todayAmount decimal.Decimal

		if err = rows.Scan(&status, &totalCount, &todayCount, &totalAmount, &todayAmount); err != nil {
			return RestaurantOrderStatsResponse{}, err
		}

		resp.StatusCounts[status] = totalCount
		resp.TodayStatusCounts[status] = todayCount
		resp.TotalOrders += totalCount
		resp.TodayOrders += todayCount

		parsed, parseErr := order.StatusFromString(status)
		if parseErr != nil {
			return RestaurantOrderStatsResponse{}, parseErr
		}
		if !parsed.IsTerminal() {
			resp.ActiveOrders += totalCount
		}
		if parsed == order.Delivered {
			resp.TotalRevenue = resp.TotalRevenue.Add(totalAmount)
			resp.TodayRevenue = resp.TodayRevenue.Add(todayAmount)
		}
	}

	if err = rows.Err(); err != nil {
		return RestaurantOrderStatsResponse{}, err
	}

	return resp, nil
}

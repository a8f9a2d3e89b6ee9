// Package reports builds the admin dashboard aggregates. Nothing is cached:
// every call recomputes from the orders and users tables.
package reports

import (
	"time"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

type SalesSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int64   `json:"total_orders"`
	PaidOrders   int64   `json:"paid_orders"`
}

type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type CountPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type Progress struct {
	OrdersByStatus    []StatusCount  `json:"orders_by_status"`
	RevenueLast7Days  []RevenuePoint `json:"revenue_last_7_days"`
	NewUsersLast7Days []CountPoint   `json:"new_users_last_7_days"`
}

const dateLayout = "2006-01-02"

// Summary computes total revenue over paid orders plus order counts.
func Summary(db *gorm.DB) (*SalesSummary, error) {
	var s SalesSummary
	err := db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&s.TotalRevenue).Error
	if err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Count(&s.TotalOrders).Error; err != nil {
		return nil, err
	}
	err = db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPaid).
		Count(&s.PaidOrders).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// BuildProgress assembles the dashboard time series relative to now.
//
// orders_by_status always lists the six known statuses, zero-filled. The two
// 7-day series cover today and the six preceding calendar days, bucketed on the
// date component only and zero-filled for empty days. Bucketing happens here in
// Go rather than in SQL so the output is identical across database dialects.
func BuildProgress(db *gorm.DB, now time.Time) (*Progress, error) {
	type statusRow struct {
		OrderStatus models.OrderStatus
		N           int64
	}
	var rows []statusRow
	err := db.Model(&models.Order{}).
		Select("order_status, COUNT(*) AS n").
		Group("order_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.OrderStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.OrderStatus] = r.N
	}
	byStatus := make([]StatusCount, 0, len(models.AllOrderStatuses))
	for _, s := range models.AllOrderStatuses {
		byStatus = append(byStatus, StatusCount{Status: s, Count: counts[s]})
	}

	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -6)

	var paid []models.Order
	err = db.Where("payment_status = ? AND order_date >= ?", models.PaymentPaid, start).
		Find(&paid).Error
	if err != nil {
		return nil, err
	}
	revenueByDate := make(map[string]float64)
	for _, o := range paid {
		revenueByDate[o.OrderDate.Format(dateLayout)] += o.TotalAmount
	}

	var users []models.User
	if err := db.Where("created_at >= ?", start).Find(&users).Error; err != nil {
		return nil, err
	}
	usersByDate := make(map[string]int64)
	for _, u := range users {
		usersByDate[u.CreatedAt.Format(dateLayout)]++
	}

	revenue := make([]RevenuePoint, 0, 7)
	newUsers := make([]CountPoint, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		revenue = append(revenue, RevenuePoint{Date: date, Revenue: revenueByDate[date]})
		newUsers = append(newUsers, CountPoint{Date: date, Count: usersByDate[date]})
	}

	return &Progress{
		OrdersByStatus:    byStatus,
		RevenueLast7Days:  revenue,
		NewUsersLast7Days: newUsers,
	}, nil
}

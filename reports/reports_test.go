package reports

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, createdAt time.Time) models.User {
	t.Helper()
	user := models.User{Name: "U", Email: email, PasswordHash: "hash", CreatedAt: createdAt}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

var orderSeq atomic.Int64

func seedOrder(t *testing.T, db *gorm.DB, userID uint, amount float64, paid models.PaymentStatus, status models.OrderStatus, date time.Time) {
	t.Helper()
	order := models.Order{
		OrderNumber:   fmt.Sprintf("ORD%d%d-%d", date.UnixNano(), userID, orderSeq.Add(1)),
		UserID:        userID,
		TotalAmount:   amount,
		PaymentStatus: paid,
		OrderStatus:   status,
		OrderDate:     date,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
}

func TestProgressEmptyDatabase(t *testing.T) {
	db := setupDB(t)
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	progress, err := BuildProgress(db, now)
	if err != nil {
		t.Fatalf("BuildProgress: %v", err)
	}

	if len(progress.OrdersByStatus) != len(models.AllOrderStatuses) {
		t.Fatalf("got %d status buckets, want %d", len(progress.OrdersByStatus), len(models.AllOrderStatuses))
	}
	for i, sc := range progress.OrdersByStatus {
		if sc.Status != models.AllOrderStatuses[i] {
			t.Errorf("bucket %d = %q, want %q", i, sc.Status, models.AllOrderStatuses[i])
		}
		if sc.Count != 0 {
			t.Errorf("status %q count = %d on empty database", sc.Status, sc.Count)
		}
	}

	if len(progress.RevenueLast7Days) != 7 || len(progress.NewUsersLast7Days) != 7 {
		t.Fatalf("series lengths = %d/%d, want 7/7",
			len(progress.RevenueLast7Days), len(progress.NewUsersLast7Days))
	}
	for i, point := range progress.RevenueLast7Days {
		want := now.AddDate(0, 0, i-6).Format("2006-01-02")
		if point.Date != want {
			t.Errorf("revenue date[%d] = %q, want %q", i, point.Date, want)
		}
		if point.Revenue != 0 {
			t.Errorf("revenue[%d] = %v on empty database", i, point.Revenue)
		}
	}
	if last := progress.RevenueLast7Days[6].Date; last != now.Format("2006-01-02") {
		t.Errorf("series must end today, got %q", last)
	}
}

func TestProgressBucketsAndWindow(t *testing.T) {
	db := setupDB(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	user := seedUser(t, db, "buyer@x.com", now.AddDate(0, 0, -3))
	seedUser(t, db, "old@x.com", now.AddDate(0, 0, -30)) // outside window

	// Two paid orders today, one paid order outside the window, one unpaid today.
	seedOrder(t, db, user.ID, 10, models.PaymentPaid, models.StatusDelivered, now)
	seedOrder(t, db, user.ID, 5, models.PaymentPaid, models.StatusPending, now.Add(-time.Hour))
	seedOrder(t, db, user.ID, 99, models.PaymentPaid, models.StatusDelivered, now.AddDate(0, 0, -8))
	seedOrder(t, db, user.ID, 7, models.PaymentPending, models.StatusPending, now)

	progress, err := BuildProgress(db, now)
	if err != nil {
		t.Fatalf("BuildProgress: %v", err)
	}

	byStatus := make(map[models.OrderStatus]int64)
	for _, sc := range progress.OrdersByStatus {
		byStatus[sc.Status] = sc.Count
	}
	if byStatus[models.StatusDelivered] != 2 {
		t.Errorf("delivered count = %d, want 2", byStatus[models.StatusDelivered])
	}
	if byStatus[models.StatusPending] != 2 {
		t.Errorf("pending count = %d, want 2", byStatus[models.StatusPending])
	}
	if byStatus[models.StatusCancelled] != 0 {
		t.Errorf("cancelled count = %d, want 0", byStatus[models.StatusCancelled])
	}

	today := now.Format("2006-01-02")
	for _, point := range progress.RevenueLast7Days {
		var want float64
		if point.Date == today {
			want = 15 // paid only; the pending order is excluded
		}
		if point.Revenue != want {
			t.Errorf("revenue on %s = %v, want %v", point.Date, point.Revenue, want)
		}
	}

	threeDaysAgo := now.AddDate(0, 0, -3).Format("2006-01-02")
	for _, point := range progress.NewUsersLast7Days {
		var want int64
		if point.Date == threeDaysAgo {
			want = 1
		}
		if point.Count != want {
			t.Errorf("new users on %s = %d, want %d", point.Date, point.Count, want)
		}
	}
}

func TestSummaryCountsPaidOnly(t *testing.T) {
	db := setupDB(t)
	now := time.Now()
	user := seedUser(t, db, "buyer@x.com", now)

	seedOrder(t, db, user.ID, 20, models.PaymentPaid, models.StatusDelivered, now)
	seedOrder(t, db, user.ID, 30, models.PaymentPaid, models.StatusPending, now)
	seedOrder(t, db, user.ID, 40, models.PaymentPending, models.StatusPending, now)

	summary, err := Summary(db)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalRevenue != 50 {
		t.Errorf("total_revenue = %v, want 50", summary.TotalRevenue)
	}
	if summary.TotalOrders != 3 {
		t.Errorf("total_orders = %d, want 3", summary.TotalOrders)
	}
	if summary.PaidOrders != 2 {
		t.Errorf("paid_orders = %d, want 2", summary.PaidOrders)
	}
}

func TestSummaryEmptyDatabase(t *testing.T) {
	db := setupDB(t)

	summary, err := Summary(db)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalRevenue != 0 || summary.TotalOrders != 0 || summary.PaidOrders != 0 {
		t.Errorf("expected all-zero summary, got %+v", summary)
	}
}

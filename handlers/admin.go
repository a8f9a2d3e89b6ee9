package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/reports"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminGetUsers returns the most recent users (admin only)
func AdminGetUsers(c *gin.Context) {
	var users []models.User
	err := config.DB.
		Select("id, name, email, phone, city, created_at, role").
		Order("id DESC").
		Limit(200).
		Find(&users).Error
	if err != nil {
		log.Println("Admin users error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// adminOrderRow is an order joined with the customer's name and email
type adminOrderRow struct {
	ID            uint                 `json:"id"`
	OrderNumber   string               `json:"order_number"`
	TotalAmount   float64              `json:"total_amount"`
	DeliveryFee   float64              `json:"delivery_fee"`
	PaymentMethod string               `json:"payment_method"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	OrderStatus   models.OrderStatus   `json:"order_status"`
	OrderDate     time.Time            `json:"order_date"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
}

// AdminGetOrders returns the most recent orders with payment status (admin only)
func AdminGetOrders(c *gin.Context) {
	var rows []adminOrderRow
	err := config.DB.Model(&models.Order{}).
		Select(`orders.id, orders.order_number, orders.total_amount, orders.delivery_fee,
			orders.payment_method, orders.payment_status, orders.order_status, orders.order_date,
			users.name AS customer_name, users.email AS customer_email`).
		Joins("JOIN users ON orders.user_id = users.id").
		Order("orders.order_date DESC").
		Limit(200).
		Scan(&rows).Error
	if err != nil {
		log.Println("Admin orders error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetSalesSummary returns revenue and order counts (admin only)
func GetSalesSummary(c *gin.Context) {
	summary, err := reports.Summary(config.DB)
	if err != nil {
		log.Println("Admin sales summary error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetProgress returns the dashboard time series (admin only)
func GetProgress(c *gin.Context) {
	progress, err := reports.BuildProgress(config.DB, time.Now())
	if err != nil {
		log.Println("Admin progress error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// SeedDemoData creates a demo user with one delivered, paid order so the
// dashboard has something to show (admin only)
func SeedDemoData(c *gin.Context) {
	const demoEmail = "demo.user@example.com"

	var demoUser models.User
	if err := config.DB.Where("email = ?", demoEmail).First(&demoUser).Error; err != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if hashErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		demoUser = models.User{
			Name:         "Demo User",
			Email:        demoEmail,
			Phone:        "1234567890",
			Address:      "123 Demo Street",
			City:         "DemoCity",
			PasswordHash: string(hash),
		}
		if err := config.DB.Create(&demoUser).Error; err != nil {
			log.Println("Admin demo seed error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	totalAmount := 1000.0
	var item models.MenuItem
	hasMenuItem := config.DB.Order("id").First(&item).Error == nil
	if hasMenuItem {
		totalAmount = item.Price
	}

	order := models.Order{
		OrderNumber:     fmt.Sprintf("DEMO%d", time.Now().UnixMilli()),
		UserID:          demoUser.ID,
		TotalAmount:     totalAmount,
		DeliveryAddress: "123 Demo Street",
		DeliveryCity:    "DemoCity",
		PaymentMethod:   "card",
		PaymentStatus:   models.PaymentPaid,
		OrderStatus:     models.StatusDelivered,
		OrderDate:       time.Now(),
	}
	if err := config.DB.Create(&order).Error; err != nil {
		log.Println("Admin demo seed error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if hasMenuItem {
		line := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: item.ID,
			ItemName:   item.Name,
			Quantity:   1,
			UnitPrice:  item.Price,
			TotalPrice: item.Price,
		}
		if err := config.DB.Create(&line).Error; err != nil {
			log.Println("Admin demo seed error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	payment := models.Payment{
		OrderID: order.ID,
		UserID:  demoUser.ID,
		Method:  "card",
		Status:  models.PaymentRecordSucceeded,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		log.Println("Admin demo seed error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Demo data seeded",
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
	})
}

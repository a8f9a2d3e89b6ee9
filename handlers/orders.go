package handlers

import (
	"log"
	"net/http"

	"food-ordering-api/checkout"
	"food-ordering-api/config"
	"food-ordering-api/metrics"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// CreateOrder places an order from the submitted cart snapshot. The write
// sequence (order, items, cart drain, optional payment) runs in one transaction
// inside the checkout package; any failure rolls it all back and surfaces a
// generic 500.
func CreateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := checkout.PlaceOrder(config.DB, userID, &req)
	if err != nil {
		log.Println("Create order error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	metrics.OrdersPlaced.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order created successfully",
		"orderId":     result.OrderID,
		"orderNumber": result.OrderNumber,
	})
}

// GetOrders lists the caller's orders, newest first, with line items
func GetOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var orders []models.Order
	err := config.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		log.Println("Get orders error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// orderDetail flattens the order with the customer's contact fields
type orderDetail struct {
	models.Order
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// GetOrder returns one order with items and customer info. Scoped to the
// requesting user: someone else's order id is a 404, not a 403.
func GetOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	err := config.DB.Preload("Items").Preload("User").
		Where("id = ? AND user_id = ?", c.Param("orderId"), userID).
		First(&order).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, orderDetail{
		Order:        order,
		CustomerName: order.User.Name,
		Email:        order.User.Email,
		Phone:        order.User.Phone,
	})
}

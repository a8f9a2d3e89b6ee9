package handlers

import (
	"log"
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

type UpdateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// cartLine joins a cart row against the live catalog; price, name, and flags
// reflect the menu at read time, not a snapshot.
type cartLine struct {
	ID           uint    `json:"id"`
	Quantity     int     `json:"quantity"`
	MenuItemID   uint    `json:"menu_item_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	IsSpicy      bool    `json:"is_spicy"`
	IsVegetarian bool    `json:"is_vegetarian"`
}

// GetCart lists the caller's cart joined with current menu item data
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	lines := []cartLine{}
	err := config.DB.Table("cart").
		Select(`cart.id, cart.quantity, menu_items.id AS menu_item_id, menu_items.name,
			menu_items.description, menu_items.price, menu_items.image_url,
			menu_items.is_spicy, menu_items.is_vegetarian`).
		Joins("JOIN menu_items ON cart.menu_item_id = menu_items.id").
		Where("cart.user_id = ?", userID).
		Scan(&lines).Error
	if err != nil {
		log.Println("Get cart error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, lines)
}

// AddToCart inserts a cart line, or bumps the quantity when the caller already
// has that item in the cart. Quantity defaults to 1.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	var existing models.CartItem
	result := config.DB.Where("user_id = ? AND menu_item_id = ?", userID, req.MenuItemID).First(&existing)
	if result.Error == nil {
		err := config.DB.Model(&existing).Update("quantity", existing.Quantity+req.Quantity).Error
		if err != nil {
			log.Println("Add to cart error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	} else {
		line := models.CartItem{UserID: userID, MenuItemID: req.MenuItemID, Quantity: req.Quantity}
		if err := config.DB.Create(&line).Error; err != nil {
			log.Println("Add to cart error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart successfully"})
}

// UpdateCartItem overwrites a line's quantity; zero or negative removes it.
// Both paths are scoped to the caller so one user cannot touch another's cart.
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	if *req.Quantity <= 0 {
		err = config.DB.Where("id = ? AND user_id = ?", itemID, userID).
			Delete(&models.CartItem{}).Error
	} else {
		err = config.DB.Model(&models.CartItem{}).
			Where("id = ? AND user_id = ?", itemID, userID).
			Update("quantity", *req.Quantity).Error
	}
	if err != nil {
		log.Println("Update cart error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

// RemoveFromCart deletes one line, scoped to the caller
func RemoveFromCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := config.DB.Where("id = ? AND user_id = ?", c.Param("itemId"), userID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		log.Println("Remove from cart error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}

// ClearCart deletes every line for the caller
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := config.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		log.Println("Clear cart error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}

package handlers

import (
	"log"
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// menuItemRow is a MenuItem joined with its category name
type menuItemRow struct {
	models.MenuItem
	CategoryName string `json:"category_name"`
}

// GetCategories lists active menu categories (public)
func GetCategories(c *gin.Context) {
	var categories []models.Category
	err := config.DB.Where("is_active = ?", true).Order("id").Find(&categories).Error
	if err != nil {
		log.Println("Get categories error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetMenuItems lists all available items with their category name (public)
func GetMenuItems(c *gin.Context) {
	var items []menuItemRow
	err := config.DB.Model(&models.MenuItem{}).
		Select("menu_items.*, categories.name AS category_name").
		Joins("JOIN categories ON menu_items.category_id = categories.id").
		Where("menu_items.is_available = ?", true).
		Order("categories.id, menu_items.name").
		Scan(&items).Error
	if err != nil {
		log.Println("Get menu items error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuByCategory lists available items of one category (public)
func GetMenuByCategory(c *gin.Context) {
	var items []models.MenuItem
	err := config.DB.
		Where("category_id = ? AND is_available = ?", c.Param("categoryId"), true).
		Order("name").
		Find(&items).Error
	if err != nil {
		log.Println("Get menu by category error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// SearchMenu matches available items by name or description (public).
// An empty query returns an empty list, not everything.
func SearchMenu(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []models.MenuItem{})
		return
	}

	var items []models.MenuItem
	pattern := "%" + q + "%"
	err := config.DB.
		Where("(name LIKE ? OR description LIKE ?) AND is_available = ?", pattern, pattern, true).
		Find(&items).Error
	if err != nil {
		log.Println("Search menu error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

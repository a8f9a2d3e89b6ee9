package handlers

import (
	"log"
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	CategoryID   uint    `json:"category_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	ImageURL     string  `json:"image_url"`
	IsSpicy      bool    `json:"is_spicy"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsAvailable  *bool   `json:"is_available"`
}

// AdminListMenuItems lists all items, including unavailable ones (admin only)
func AdminListMenuItems(c *gin.Context) {
	var items []menuItemRow
	err := config.DB.Model(&models.MenuItem{}).
		Select("menu_items.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON menu_items.category_id = categories.id").
		Order("menu_items.id DESC").
		Scan(&items).Error
	if err != nil {
		log.Println("Admin list menu items error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AdminCreateMenuItem adds a catalog item (admin only)
func AdminCreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := models.MenuItem{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsSpicy:      req.IsSpicy,
		IsVegetarian: req.IsVegetarian,
		IsAvailable:  available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		log.Println("Admin create menu item error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": item.ID})
}

// AdminUpdateMenuItem overwrites all fields of an item (admin only)
func AdminUpdateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	err := config.DB.Model(&models.MenuItem{}).Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"category_id":   req.CategoryID,
			"name":          req.Name,
			"description":   req.Description,
			"price":         req.Price,
			"image_url":     req.ImageURL,
			"is_spicy":      req.IsSpicy,
			"is_vegetarian": req.IsVegetarian,
			"is_available":  available,
		}).Error
	if err != nil {
		log.Println("Admin update menu item error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated"})
}

// AdminDeleteMenuItem removes an item unconditionally (admin only). Existing
// order items keep their snapshot name and price, so history survives.
func AdminDeleteMenuItem(c *gin.Context) {
	if err := config.DB.Where("id = ?", c.Param("id")).Delete(&models.MenuItem{}).Error; err != nil {
		log.Println("Admin delete menu item error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

package models

// CartItem is one line of a user's cart. A (user, menu item) pair maps to a single
// row; re-adding the same item increments the quantity instead of duplicating it.
type CartItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	UserID     uint     `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItem   MenuItem `json:"-" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
}

// TableName keeps the original schema's singular table name.
func (CartItem) TableName() string { return "cart" }

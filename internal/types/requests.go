package types

// DeleteItemRequest represents the request body for removing a menu item
type DeleteItemRequest struct {
	Item string `json:"item" binding:"required"`
}

// AddToCartRequest represents the request body for adding an item to the cart
type AddToCartRequest struct {
	Cafe string `json:"cafe" binding:"required"`
	Item string `json:"item" binding:"required"`
}

// MessageResponse is the body returned for status messages and errors
type MessageResponse struct {
	Message string `json:"message"`
}

// ItemResponse echoes the item affected by a mutating menu request
type ItemResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

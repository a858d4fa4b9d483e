package dto

import "github.com/Minyanaing/item-market/internal/domain/entity"

// MarketForm represents one market page submission. Both fields are
// optional; a missing field means no action of that kind was requested.
type MarketForm struct {
	PurchasedItem *string `form:"purchased_item"`
	SoldItem      *string `form:"sold_item"`
}

// ItemResponse represents one catalog item in API responses
type ItemResponse struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Barcode string `json:"barcode"`
	Price   string `json:"price"`
}

// NotificationResponse represents one flash message for display
type NotificationResponse struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// CatalogResponse represents the market page data for one user
type CatalogResponse struct {
	Balance       string                 `json:"balance"`
	Items         []ItemResponse         `json:"items"`
	OwnedItems    []ItemResponse         `json:"ownedItems"`
	Notifications []NotificationResponse `json:"notifications,omitempty"`
}

// ItemToResponse converts an item entity to its API representation
func ItemToResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:      item.ID,
		Name:    item.Name,
		Barcode: item.Barcode,
		Price:   item.FormattedPrice(),
	}
}

// ItemsToResponse converts a slice of item entities
func ItemsToResponse(items []*entity.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ItemToResponse(item))
	}
	return responses
}

// NotificationsToResponse converts notifications to their API representation
func NotificationsToResponse(notifications []entity.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, NotificationResponse{
			Message:  n.Message,
			Category: string(n.Category),
		})
	}
	return responses
}

package inventory

import (
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

// savedItemFromRequest is used when the backend acknowledges a save with only
// a message.
func savedItemFromRequest(request *requests.SaveInventoryItem) *responses.InventoryItem {
	item := &responses.InventoryItem{
		ID:           request.ID,
		MedicineName: request.MedicineName,
		BatchNumber:  request.BatchNumber,
		Manufacturer: request.Manufacturer,
		Quantity:     request.Quantity,
		UnitPrice:    request.UnitPrice,
	}
	if request.Category != "" {
		category := request.Category
		item.Category = &category
	}
	if request.ExpiryDate != "" {
		expiry := request.ExpiryDate
		item.ExpiryDate = &expiry
	}
	return item
}

func hasItemFields(body []byte) bool {
	var probe struct {
		MedicineName *string `json:"medicineName"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	return probe.MedicineName != nil
}

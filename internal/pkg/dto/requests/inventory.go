package requests

// SaveInventoryItem creates an item when ID is zero and updates it otherwise.
type SaveInventoryItem struct {
	ID           int     `json:"id"`
	UserID       string  `json:"userId,omitempty"`
	MedicineName string  `json:"medicineName"`
	BatchNumber  string  `json:"batchNumber,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Category     string  `json:"category,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	ExpiryDate   string  `json:"expiryDate,omitempty"`
}

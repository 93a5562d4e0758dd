package responses

type InventoryItem struct {
	ID           int      `json:"id"`
	MedicineName string   `json:"medicineName"`
	BatchNumber  string   `json:"batchNumber,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Quantity     int      `json:"quantity"`
	UnitPrice    float64  `json:"unitPrice"`
	ExpiryDate   *string  `json:"expiryDate,omitempty"`
	Mrp          *float64 `json:"mrp,omitempty"`
}

package responses

type PrescriptionUpload struct {
	PrescriptionID FlexibleID `json:"prescriptionId"`
	FileURL        string     `json:"fileUrl,omitempty"`
	Message        string     `json:"message,omitempty"`
	ArchiveObject  string     `json:"archiveObject,omitempty"`
}

type Prescription struct {
	ID         FlexibleID `json:"id"`
	PatientID  FlexibleID `json:"patientId"`
	FileURL    string     `json:"fileUrl,omitempty"`
	Status     string     `json:"status,omitempty"`
	UploadedAt string     `json:"uploadedAt,omitempty"`
}

type InvoiceLine struct {
	InventoryID  int     `json:"inventoryId"`
	MedicineName string  `json:"medicineName,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	LineTotal    float64 `json:"lineTotal"`
}

type Invoice struct {
	InvoiceID          FlexibleID    `json:"invoiceId"`
	PrescriptionID     FlexibleID    `json:"prescriptionId,omitempty"`
	PatientID          FlexibleID    `json:"patientId,omitempty"`
	Items              []InvoiceLine `json:"items,omitempty"`
	SubTotal           float64       `json:"subTotal"`
	DiscountPercentage float64       `json:"discountPercentage"`
	DiscountAmount     float64       `json:"discountAmount"`
	TotalAmount        float64       `json:"totalAmount"`
	CreatedAt          string        `json:"createdAt,omitempty"`
	Message            string        `json:"message,omitempty"`
}

type PrescriptionInvoice struct {
	Prescription PrescriptionUpload `json:"prescription"`
	Invoice      Invoice            `json:"invoice"`
}

package requests

type UploadPrescription struct {
	PatientID   string
	FileName    string
	ContentType string
	Content     []byte
}

type InvoiceLine struct {
	InventoryID int `json:"inventoryId"`
	Quantity    int `json:"quantity"`
}

type GenerateInvoice struct {
	PrescriptionID string        `json:"prescriptionId"`
	PatientID      string        `json:"patientId"`
	Items          []InvoiceLine `json:"items,omitempty"`
}

// UploadAndGenerateInvoice feeds both steps of the compound operation. The
// prescription id for the invoice comes from the upload result.
type UploadAndGenerateInvoice struct {
	Upload UploadPrescription
	Items  []InvoiceLine
}

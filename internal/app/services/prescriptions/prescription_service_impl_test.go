package prescriptions

import (
	"context"
	"errors"
	"io"
	"net/http"
	"pharmacy-client/internal/app/services/shared/httpclient/httpclienttest"
	"pharmacy-client/internal/pkg/dto/requests"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockArchive struct {
	mock.Mock
}

func (m *mockArchive) Archive(ctx context.Context, patientID, fileName, contentType string, content []byte) (string, error) {
	args := m.Called(ctx, patientID, fileName, contentType, content)
	return args.String(0), args.Error(1)
}

type prescriptionBackend struct {
	uploadStatus   int
	uploadPayload  interface{}
	invoiceStatus  int
	invoicePayload interface{}

	uploadCalls  int32
	invoiceCalls int32
	invoiceBody  requests.GenerateInvoice
	uploadedFile string
}

func (b *prescriptionBackend) router() chi.Router {
	router := chi.NewRouter()
	router.Post("/api/prescription/uploadPrescription", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.uploadCalls, 1)
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			if file, _, err := r.FormFile("file"); err == nil {
				content, _ := io.ReadAll(file)
				b.uploadedFile = string(content)
				file.Close()
			}
		}
		httpclienttest.WriteJSON(w, b.uploadStatus, b.uploadPayload)
	})
	router.Post("/api/Prescription/GenerateInvoice", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.invoiceCalls, 1)
		httpclienttest.ReadJSON(r, &b.invoiceBody)
		httpclienttest.WriteJSON(w, b.invoiceStatus, b.invoicePayload)
	})
	return router
}

func uploadRequest() *requests.UploadAndGenerateInvoice {
	return &requests.UploadAndGenerateInvoice{
		Upload: requests.UploadPrescription{
			PatientID:   "17",
			FileName:    "rx.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4"),
		},
		Items: []requests.InvoiceLine{{InventoryID: 1, Quantity: 2}},
	}
}

func TestPrescriptionService_UploadAndGenerateInvoice(t *testing.T) {
	t.Run("Upload Failure Skips Invoice", func(t *testing.T) {
		fake := &prescriptionBackend{
			uploadStatus:  http.StatusBadRequest,
			uploadPayload: map[string]string{"message": "Unsupported file type"},
		}
		backend := httpclienttest.NewBackend(t, fake.router())
		service := NewPrescriptionService(backend.Client, nil, zap.NewNop())

		result := service.UploadAndGenerateInvoice(context.Background(), uploadRequest())

		assert.False(t, result.Success)
		assert.Nil(t, result.Data)
		assert.Equal(t, "Unsupported file type", result.Error)
		assert.Equal(t, int32(1), atomic.LoadInt32(&fake.uploadCalls))
		assert.Equal(t, int32(0), atomic.LoadInt32(&fake.invoiceCalls))
	})

	t.Run("Invoice Failure After Upload", func(t *testing.T) {
		fake := &prescriptionBackend{
			uploadStatus:   http.StatusOK,
			uploadPayload:  map[string]interface{}{"prescriptionId": 55, "fileUrl": "/files/rx.pdf"},
			invoiceStatus:  http.StatusInternalServerError,
			invoicePayload: map[string]string{"message": "Stock unavailable"},
		}
		backend := httpclienttest.NewBackend(t, fake.router())
		service := NewPrescriptionService(backend.Client, nil, zap.NewNop())

		result := service.UploadAndGenerateInvoice(context.Background(), uploadRequest())

		assert.False(t, result.Success)
		assert.Equal(t, "Stock unavailable", result.Error)
		assert.Equal(t, int32(1), atomic.LoadInt32(&fake.invoiceCalls))
	})

	t.Run("Both Steps Succeed", func(t *testing.T) {
		fake := &prescriptionBackend{
			uploadStatus:  http.StatusOK,
			uploadPayload: map[string]interface{}{"data": map[string]interface{}{"prescriptionId": "55", "fileUrl": "/files/rx.pdf"}},
			invoiceStatus: http.StatusOK,
			invoicePayload: map[string]interface{}{
				"invoiceId":          900,
				"subTotal":           100,
				"discountPercentage": 20,
				"discountAmount":     20,
				"totalAmount":        80,
				"items":              []map[string]interface{}{{"inventoryId": 1, "quantity": 2, "unitPrice": 50, "lineTotal": 100}},
			},
		}
		backend := httpclienttest.NewBackend(t, fake.router())
		service := NewPrescriptionService(backend.Client, nil, zap.NewNop())

		result := service.UploadAndGenerateInvoice(context.Background(), uploadRequest())

		require.True(t, result.Success)
		assert.Equal(t, "55", result.Data.Prescription.PrescriptionID.String())
		assert.Equal(t, "900", result.Data.Invoice.InvoiceID.String())
		assert.Equal(t, float64(80), result.Data.Invoice.TotalAmount)
		assert.Equal(t, "55", result.Data.Invoice.PrescriptionID.String())
		assert.Equal(t, "Invoice generated successfully", result.Message)

		assert.Equal(t, "55", fake.invoiceBody.PrescriptionID)
		assert.Equal(t, "17", fake.invoiceBody.PatientID)
		assert.Equal(t, []requests.InvoiceLine{{InventoryID: 1, Quantity: 2}}, fake.invoiceBody.Items)
		assert.Equal(t, "%PDF-1.4", fake.uploadedFile)
	})
}

func TestPrescriptionService_UploadPrescription_Archive(t *testing.T) {
	fake := &prescriptionBackend{
		uploadStatus:  http.StatusOK,
		uploadPayload: map[string]interface{}{"prescriptionId": 55},
	}
	backend := httpclienttest.NewBackend(t, fake.router())
	upload := uploadRequest().Upload

	t.Run("Archived Copy Recorded", func(t *testing.T) {
		archive := new(mockArchive)
		archive.On("Archive", mock.Anything, "17", "rx.pdf", "application/pdf", upload.Content).
			Return("patients/17/abc-rx.pdf", nil)
		service := NewPrescriptionService(backend.Client, archive, zap.NewNop())

		result := service.UploadPrescription(context.Background(), &upload)

		require.True(t, result.Success)
		assert.Equal(t, "patients/17/abc-rx.pdf", result.Data.ArchiveObject)
		assert.Equal(t, "Prescription uploaded successfully", result.Message)
		archive.AssertExpectations(t)
	})

	t.Run("Archive Failure Does Not Fail Upload", func(t *testing.T) {
		archive := new(mockArchive)
		archive.On("Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("minio down"))
		service := NewPrescriptionService(backend.Client, archive, zap.NewNop())

		result := service.UploadPrescription(context.Background(), &upload)

		require.True(t, result.Success)
		assert.Equal(t, "55", result.Data.PrescriptionID.String())
		assert.Empty(t, result.Data.ArchiveObject)
	})
}

func TestPrescriptionService_UploadPrescription_MissingID(t *testing.T) {
	fake := &prescriptionBackend{
		uploadStatus:  http.StatusOK,
		uploadPayload: map[string]string{"message": "uploaded"},
	}
	backend := httpclienttest.NewBackend(t, fake.router())
	service := NewPrescriptionService(backend.Client, nil, zap.NewNop())
	upload := uploadRequest().Upload

	result := service.UploadPrescription(context.Background(), &upload)

	assert.False(t, result.Success)
	assert.Equal(t, "An unexpected error occurred", result.Error)
}

func TestPrescriptionService_GetPrescriptionsByPatient(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/Prescription/GetPrescriptionsByPatient", func(w http.ResponseWriter, r *http.Request) {
		httpclienttest.WriteJSON(w, http.StatusOK, []map[string]interface{}{
			{"id": 1, "patientId": r.URL.Query().Get("patientId"), "status": "Invoiced"},
		})
	})
	backend := httpclienttest.NewBackend(t, router)
	service := NewPrescriptionService(backend.Client, nil, zap.NewNop())

	result := service.GetPrescriptionsByPatient(context.Background(), "17")

	require.True(t, result.Success)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "17", result.Data[0].PatientID.String())
}

package main

import (
	"pharmacy-client/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name            string
		form            interface{}
		expectedMessage string
	}{
		{
			name:            "Valid Mobile",
			form:            &mobileForm{MobileNumber: "9876543210"},
			expectedMessage: "",
		},
		{
			name:            "Short Mobile",
			form:            &mobileForm{MobileNumber: "12345"},
			expectedMessage: "mobile number must be a valid 10 digit number",
		},
		{
			name:            "Bad Otp",
			form:            &otpForm{MobileNumber: "9876543210", Otp: "12"},
			expectedMessage: "otp must be 4 to 6 digits",
		},
		{
			name:            "Missing Medicine Name",
			form:            &inventoryForm{Quantity: 5},
			expectedMessage: "medicinename is required",
		},
		{
			name:            "Negative Quantity",
			form:            &inventoryForm{MedicineName: "Paracetamol", Quantity: -1},
			expectedMessage: "quantity must be greater than or equal to 0",
		},
		{
			name:            "Unknown Status",
			form:            &patientStatusForm{PatientID: "P-1", Status: "Archived"},
			expectedMessage: "status must be one of [Pending, Approved, Rejected]",
		},
		{
			name:            "Short Aadhaar",
			form:            &patientDetailsForm{FullName: "Asha", MobileNumber: "9876543210", AadhaarNumber: "1234"},
			expectedMessage: "aadhaarnumber must be 12 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateForm(tt.form)
			if tt.expectedMessage == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expectedMessage, exceptions.MessageOf(err, ""))
		})
	}
}

func TestParseInvoiceItems(t *testing.T) {
	items, err := parseInvoiceItems([]string{"12:2", " 7 : 1 "})
	require.NoError(t, err)
	assert.Equal(t, []invoiceItem{{InventoryID: 12, Quantity: 2}, {InventoryID: 7, Quantity: 1}}, items)

	items, err = parseInvoiceItems(nil)
	require.NoError(t, err)
	assert.Empty(t, items)

	for _, value := range []string{"12", "abc:1", "12:0", "0:3", "12:-1"} {
		_, err := parseInvoiceItems([]string{value})
		assert.Error(t, err, value)
	}
}

package main

import (
	"fmt"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"
	"strconv"
	"strings"
)

type loginForm struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=6"`
}

type mobileForm struct {
	MobileNumber string `validate:"required,mobile_number"`
}

type otpForm struct {
	MobileNumber string `validate:"required,mobile_number"`
	Otp          string `validate:"required,otp_code"`
}

type registerForm struct {
	MobileNumber string `validate:"required,mobile_number"`
	Email        string `validate:"omitempty,email"`
}

type inventoryForm struct {
	ID           int     `validate:"gte=0"`
	MedicineName string  `validate:"required,max=200"`
	BatchNumber  string  `validate:"omitempty,max=50"`
	Quantity     int     `validate:"gte=0"`
	UnitPrice    float64 `validate:"gte=0"`
	ExpiryDate   string  `validate:"omitempty,datetime=2006-01-02"`
}

type patientStatusForm struct {
	PatientID string `validate:"required"`
	Status    string `validate:"required,oneof=Pending Approved Rejected"`
	Remarks   string `validate:"max=500"`
}

type patientDetailsForm struct {
	FullName      string `validate:"required,min=2"`
	MobileNumber  string `validate:"required,mobile_number"`
	Email         string `validate:"omitempty,email"`
	Gender        string `validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth   string `validate:"omitempty,datetime=2006-01-02"`
	AadhaarNumber string `validate:"required,len=12,numeric"`
	AnnualIncome  int64  `validate:"gte=0"`
}

type uploadForm struct {
	PatientID string `validate:"required"`
	FilePath  string `validate:"required"`
}

// validateForm runs the struct tags and returns the first failure as a
// normalized error.
func validateForm(form interface{}) error {
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// parseInvoiceItems reads inventoryId:quantity pairs.
func parseInvoiceItems(values []string) ([]invoiceItem, error) {
	items := make([]invoiceItem, 0, len(values))
	for _, value := range values {
		parts := strings.SplitN(value, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("item %q must look like inventoryId:quantity", value)
		}
		inventoryID, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || inventoryID <= 0 {
			return nil, fmt.Errorf("item %q has an invalid inventory id", value)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || quantity <= 0 {
			return nil, fmt.Errorf("item %q has an invalid quantity", value)
		}
		items = append(items, invoiceItem{InventoryID: inventoryID, Quantity: quantity})
	}
	return items, nil
}

type invoiceItem struct {
	InventoryID int
	Quantity    int
}

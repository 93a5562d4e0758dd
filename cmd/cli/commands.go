package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"pharmacy-client/internal/app/config"
	"pharmacy-client/internal/app/models"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	app    *config.Bootstrap
	prompt *terminalPrompt
}

func newRootCommand(app *config.Bootstrap, prompt *terminalPrompt) *cobra.Command {
	c := &cli{app: app, prompt: prompt}

	rootCmd := &cobra.Command{
		Use:           "pharmacy",
		Short:         "Pharmacy management client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.app.Session.Restore(cmd.Context())
			if err != nil {
				c.app.Logger.Warn("Stored session not restored", zap.Error(err))
			}
			c.app.Logger.Debug("Session restored", zap.String("state", state.String()))
			return nil
		},
	}

	rootCmd.AddCommand(
		c.loginCmd(),
		c.registerCmd(),
		c.otpCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.inventoryCmd(),
		c.patientsCmd(),
		c.prescriptionCmd(),
		c.usersCmd(),
		c.biometricsCmd(),
	)
	return rootCmd
}

func (c *cli) loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an administrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			if password == "" && c.prompt != nil {
				answer, err := c.prompt.askSecret("Password: ")
				if err != nil {
					return renderResult[*models.User](cmd.OutOrStdout(), nil, "", exceptions.ErrInvalidArgument(err))
				}
				password = answer
			}

			request := &requests.AdminLogin{Username: username, Password: password}
			utils.SanitizeAdminLoginRequest(request)
			if err := validateForm(&loginForm{Username: request.Username, Password: request.Password}); err != nil {
				return renderResult[*models.User](cmd.OutOrStdout(), nil, "", err)
			}

			user, err := c.app.Session.Login(cmd.Context(), request.Username, request.Password)
			return renderResult(cmd.OutOrStdout(), user, constvars.SuccessLogin, err)
		},
	}
	cmd.Flags().StringP("username", "u", "", "admin username")
	cmd.Flags().StringP("password", "p", "", "admin password, asked on the terminal when omitted")
	return cmd
}

func (c *cli) registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a patient by mobile number",
		RunE: func(cmd *cobra.Command, args []string) error {
			mobile, _ := cmd.Flags().GetString("mobile")
			email, _ := cmd.Flags().GetString("email")

			request := &requests.CreateUser{
				Username:     mobile,
				MobileNumber: mobile,
				Email:        email,
				Role:         constvars.RolePatient,
			}
			utils.SanitizeCreateUserRequest(request)
			request.Username = request.MobileNumber
			if err := validateForm(&registerForm{MobileNumber: request.MobileNumber, Email: request.Email}); err != nil {
				return renderResult[*responses.User](cmd.OutOrStdout(), nil, "", err)
			}

			return renderEnvelope(cmd.OutOrStdout(), c.app.Users.CreateUser(cmd.Context(), request))
		},
	}
	cmd.Flags().StringP("mobile", "m", "", "10 digit mobile number")
	cmd.Flags().String("email", "", "optional email address")
	return cmd
}

func (c *cli) otpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Patient login with a one-time password",
	}

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send an OTP to a mobile number",
		RunE: func(cmd *cobra.Command, args []string) error {
			mobile, _ := cmd.Flags().GetString("mobile")
			mobile = utils.NormalizeMobileNumber(mobile)
			if err := validateForm(&mobileForm{MobileNumber: mobile}); err != nil {
				return renderResult[any](cmd.OutOrStdout(), nil, "", err)
			}

			message, err := c.app.Session.LoginPatient(cmd.Context(), mobile)
			return renderResult[any](cmd.OutOrStdout(), nil, message, err)
		},
	}
	sendCmd.Flags().StringP("mobile", "m", "", "10 digit mobile number")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the OTP and start a patient session",
		RunE: func(cmd *cobra.Command, args []string) error {
			mobile, _ := cmd.Flags().GetString("mobile")
			code, _ := cmd.Flags().GetString("code")

			request := &requests.VerifyOtp{MobileNumber: mobile, Otp: code}
			utils.SanitizeVerifyOtpRequest(request)
			if err := validateForm(&otpForm{MobileNumber: request.MobileNumber, Otp: request.Otp}); err != nil {
				return renderResult[*models.LoginOutcome](cmd.OutOrStdout(), nil, "", err)
			}

			outcome, err := c.app.Session.VerifyOtp(cmd.Context(), request.MobileNumber, request.Otp)
			message := constvars.SuccessOtpVerified
			if err == nil && outcome.FirstLogin {
				message = "Welcome! Complete your profile with `pharmacy patients save-details`."
			}
			return renderResult(cmd.OutOrStdout(), outcome, message, err)
		},
	}
	verifyCmd.Flags().StringP("mobile", "m", "", "10 digit mobile number")
	verifyCmd.Flags().StringP("code", "c", "", "OTP received by SMS")

	cmd.AddCommand(sendCmd, verifyCmd)
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.Session.Logout(cmd.Context())
			return renderResult[any](cmd.OutOrStdout(), nil, constvars.SuccessLogout, err)
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := c.app.Session.CurrentUser()
			if user == nil {
				return renderResult[*models.User](cmd.OutOrStdout(), nil, "", exceptions.ErrNotAuthenticated())
			}
			return renderResult(cmd.OutOrStdout(), user, "", nil)
		},
	}
}

func (c *cli) inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage medicine stock",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			if search != "" {
				return renderEnvelope(cmd.OutOrStdout(), c.app.Inventory.SearchInventory(cmd.Context(), search))
			}
			return renderEnvelope(cmd.OutOrStdout(), c.app.Inventory.GetInventoryList(cmd.Context()))
		},
	}
	listCmd.Flags().StringP("search", "s", "", "filter by medicine name, batch or manufacturer")

	getCmd := &cobra.Command{
		Use:   "get <inventoryId>",
		Short: "Show one inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inventoryID, err := strconv.Atoi(args[0])
			if err != nil {
				return renderResult[any](cmd.OutOrStdout(), nil, "", exceptions.ErrInvalidArgument(fmt.Errorf("inventory id %q is not a number", args[0])))
			}
			return renderEnvelope(cmd.OutOrStdout(), c.app.Inventory.GetInventoryItem(cmd.Context(), inventoryID))
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update an inventory item",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &requests.SaveInventoryItem{}
			request.ID, _ = cmd.Flags().GetInt("id")
			request.MedicineName, _ = cmd.Flags().GetString("name")
			request.BatchNumber, _ = cmd.Flags().GetString("batch")
			request.Manufacturer, _ = cmd.Flags().GetString("manufacturer")
			request.Category, _ = cmd.Flags().GetString("category")
			request.Quantity, _ = cmd.Flags().GetInt("quantity")
			request.UnitPrice, _ = cmd.Flags().GetFloat64("price")
			request.ExpiryDate, _ = cmd.Flags().GetString("expiry")

			utils.SanitizeSaveInventoryItemRequest(request)
			err := validateForm(&inventoryForm{
				ID:           request.ID,
				MedicineName: request.MedicineName,
				BatchNumber:  request.BatchNumber,
				Quantity:     request.Quantity,
				UnitPrice:    request.UnitPrice,
				ExpiryDate:   request.ExpiryDate,
			})
			if err != nil {
				return renderResult[*responses.InventoryItem](cmd.OutOrStdout(), nil, "", err)
			}
			return renderEnvelope(cmd.OutOrStdout(), c.app.Inventory.SaveInventoryItem(cmd.Context(), request))
		},
	}
	saveCmd.Flags().Int("id", 0, "existing item id, 0 creates a new item")
	saveCmd.Flags().String("name", "", "medicine name")
	saveCmd.Flags().String("batch", "", "batch number")
	saveCmd.Flags().String("manufacturer", "", "manufacturer")
	saveCmd.Flags().String("category", "", "category")
	saveCmd.Flags().Int("quantity", 0, "units in stock")
	saveCmd.Flags().Float64("price", 0, "unit price")
	saveCmd.Flags().String("expiry", "", "expiry date, YYYY-MM-DD")

	deleteCmd := &cobra.Command{
		Use:   "delete <inventoryId>",
		Short: "Delete an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inventoryID, err := strconv.Atoi(args[0])
			if err != nil {
				return renderResult[any](cmd.OutOrStdout(), nil, "", exceptions.ErrInvalidArgument(fmt.Errorf("inventory id %q is not a number", args[0])))
			}
			return renderEnvelope(cmd.OutOrStdout(), c.app.Inventory.DeleteInventoryItem(cmd.Context(), inventoryID))
		},
	}

	lowStockCmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List items at or below a quantity threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetInt("threshold")
			return renderEnvelope(cmd.OutOrStdout(), c.app.Inventory.LowStockItems(cmd.Context(), threshold))
		},
	}
	lowStockCmd.Flags().IntP("threshold", "t", 10, "quantity threshold")

	cmd.AddCommand(listCmd, getCmd, saveCmd, deleteCmd, lowStockCmd)
	return cmd
}

func (c *cli) patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Patient approval and profile",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List patients by approval status",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			return renderEnvelope(cmd.OutOrStdout(), c.app.Patients.GetPatientsByStatus(cmd.Context(), status))
		},
	}
	listCmd.Flags().String("status", constvars.PatientStatusPending, "Pending, Approved or Rejected")

	showCmd := &cobra.Command{
		Use:   "show <patientId>",
		Short: "Show a patient's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderEnvelope(cmd.OutOrStdout(), c.app.Patients.GetPatientDetails(cmd.Context(), args[0]))
		},
	}

	saveDetailsCmd := &cobra.Command{
		Use:   "save-details",
		Short: "Complete the logged in patient's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := c.app.Session.CurrentUser()
			if !user.IsPatient() {
				return renderResult[any](cmd.OutOrStdout(), nil, "", exceptions.ErrNotAuthenticated())
			}

			request := &requests.SavePatientDetails{PatientID: user.PatientID, MobileNumber: user.MobileNumber}
			request.FullName, _ = cmd.Flags().GetString("name")
			request.Email, _ = cmd.Flags().GetString("email")
			request.Gender, _ = cmd.Flags().GetString("gender")
			request.DateOfBirth, _ = cmd.Flags().GetString("dob")
			request.Address, _ = cmd.Flags().GetString("address")
			request.AadhaarNumber, _ = cmd.Flags().GetString("aadhaar")
			request.AnnualIncome, _ = cmd.Flags().GetInt64("income")

			utils.SanitizeSavePatientDetailsRequest(request)
			err := validateForm(&patientDetailsForm{
				FullName:      request.FullName,
				MobileNumber:  request.MobileNumber,
				Email:         request.Email,
				Gender:        request.Gender,
				DateOfBirth:   request.DateOfBirth,
				AadhaarNumber: request.AadhaarNumber,
				AnnualIncome:  request.AnnualIncome,
			})
			if err != nil {
				return renderResult[any](cmd.OutOrStdout(), nil, "", err)
			}

			result := c.app.Patients.SavePatientDetails(cmd.Context(), request)
			if result.Success {
				complete := true
				if _, err := c.app.Session.UpdateUser(cmd.Context(), models.UserPatch{IsProfileComplete: &complete}); err != nil {
					c.app.Logger.Warn("Profile saved but session snapshot not updated", zap.Error(err))
				}
			}
			return renderEnvelope(cmd.OutOrStdout(), result)
		},
	}
	saveDetailsCmd.Flags().String("name", "", "full name")
	saveDetailsCmd.Flags().String("email", "", "email address")
	saveDetailsCmd.Flags().String("gender", "", "Male, Female or Other")
	saveDetailsCmd.Flags().String("dob", "", "date of birth, YYYY-MM-DD")
	saveDetailsCmd.Flags().String("address", "", "postal address")
	saveDetailsCmd.Flags().String("aadhaar", "", "12 digit Aadhaar number")
	saveDetailsCmd.Flags().Int64("income", 0, "annual household income")

	kycCmd := &cobra.Command{
		Use:   "kyc <patientId>",
		Short: "Run KYC and assign the discount tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderEnvelope(cmd.OutOrStdout(), c.app.Patients.VerifyKyc(cmd.Context(), &requests.VerifyKyc{PatientID: args[0]}))
		},
	}

	cmd.AddCommand(
		listCmd,
		showCmd,
		c.patientStatusCmd("approve", constvars.PatientStatusApproved),
		c.patientStatusCmd("reject", constvars.PatientStatusRejected),
		saveDetailsCmd,
		kycCmd,
	)
	return cmd
}

func (c *cli) patientStatusCmd(use, status string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <patientId>",
		Short: "Mark a patient " + status,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remarks, _ := cmd.Flags().GetString("remarks")
			request := &requests.UpdatePatientStatus{PatientID: args[0], Status: status, Remarks: remarks}
			if err := validateForm(&patientStatusForm{PatientID: request.PatientID, Status: request.Status, Remarks: request.Remarks}); err != nil {
				return renderResult[any](cmd.OutOrStdout(), nil, "", err)
			}
			return renderEnvelope(cmd.OutOrStdout(), c.app.Patients.UpdatePatientStatus(cmd.Context(), request))
		},
	}
	cmd.Flags().String("remarks", "", "note stored with the decision")
	return cmd
}

func (c *cli) prescriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescription",
		Short: "Upload prescriptions and generate invoices",
	}

	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a prescription, and generate the invoice when items are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			filePath, _ := cmd.Flags().GetString("file")
			itemValues, _ := cmd.Flags().GetStringArray("item")
			if patientID == "" {
				if user := c.app.Session.CurrentUser(); user.IsPatient() {
					patientID = user.PatientID
				}
			}

			if err := validateForm(&uploadForm{PatientID: patientID, FilePath: filePath}); err != nil {
				return renderResult[any](cmd.OutOrStdout(), nil, "", err)
			}
			items, err := parseInvoiceItems(itemValues)
			if err != nil {
				return renderResult[any](cmd.OutOrStdout(), nil, "", exceptions.ErrInvalidArgument(err))
			}
			content, err := os.ReadFile(filePath)
			if err != nil {
				return renderResult[any](cmd.OutOrStdout(), nil, "", exceptions.ErrInvalidArgument(err))
			}

			upload := requests.UploadPrescription{
				PatientID:   patientID,
				FileName:    filepath.Base(filePath),
				ContentType: mime.TypeByExtension(filepath.Ext(filePath)),
				Content:     content,
			}
			if len(items) == 0 {
				return renderEnvelope(cmd.OutOrStdout(), c.app.Prescriptions.UploadPrescription(cmd.Context(), &upload))
			}

			lines := make([]requests.InvoiceLine, 0, len(items))
			for _, item := range items {
				lines = append(lines, requests.InvoiceLine{InventoryID: item.InventoryID, Quantity: item.Quantity})
			}
			return renderEnvelope(cmd.OutOrStdout(), c.app.Prescriptions.UploadAndGenerateInvoice(cmd.Context(), &requests.UploadAndGenerateInvoice{
				Upload: upload,
				Items:  lines,
			}))
		},
	}
	uploadCmd.Flags().String("patient", "", "patient id, defaults to the logged in patient")
	uploadCmd.Flags().StringP("file", "f", "", "prescription image or PDF")
	uploadCmd.Flags().StringArray("item", nil, "invoice line as inventoryId:quantity, repeatable")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a patient's prescriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			if patientID == "" {
				if user := c.app.Session.CurrentUser(); user.IsPatient() {
					patientID = user.PatientID
				}
			}
			return renderEnvelope(cmd.OutOrStdout(), c.app.Prescriptions.GetPrescriptionsByPatient(cmd.Context(), patientID))
		},
	}
	listCmd.Flags().String("patient", "", "patient id, defaults to the logged in patient")

	cmd.AddCommand(uploadCmd, listCmd)
	return cmd
}

func (c *cli) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User administration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderEnvelope(cmd.OutOrStdout(), c.app.Users.GetUsers(cmd.Context()))
		},
	})
	return cmd
}

func (c *cli) biometricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "biometrics",
		Short: "Biometric unlock for patient sessions (mobile variant)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Require identity confirmation before restoring a session",
			RunE: func(cmd *cobra.Command, args []string) error {
				err := c.app.Session.EnableBiometrics(cmd.Context())
				return renderResult[any](cmd.OutOrStdout(), nil, "Biometric unlock enabled", err)
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Restore sessions without identity confirmation",
			RunE: func(cmd *cobra.Command, args []string) error {
				err := c.app.Session.DisableBiometrics(cmd.Context())
				return renderResult[any](cmd.OutOrStdout(), nil, "Biometric unlock disabled", err)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether biometric unlock is enabled",
			RunE: func(cmd *cobra.Command, args []string) error {
				enabled, err := c.app.Session.IsBiometricEnabled(cmd.Context())
				return renderResult(cmd.OutOrStdout(), map[string]bool{"enabled": enabled}, "", err)
			},
		},
	)
	return cmd
}

package errors

// ErrorCode identifies an error condition returned by the API.
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthAccountLocked      ErrorCode = "AUTH_005"
	AuthEmailTaken         ErrorCode = "AUTH_006"
	AuthWeakPassword       ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryNoneFound     ErrorCode = "CATEGORY_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetGeneralExists     ErrorCode = "BUDGET_001"
	BudgetCategoryExists    ErrorCode = "BUDGET_002"
	BudgetGeneralNotFound   ErrorCode = "BUDGET_003"
	BudgetCategoryNotFound  ErrorCode = "BUDGET_004"
	BudgetNoGeneralLimit    ErrorCode = "BUDGET_005"
	BudgetInvalidBudgetPlan ErrorCode = "BUDGET_006"
)

// Saving plan error codes (SAVING_*)
const (
	SavingPlanNotFound      ErrorCode = "SAVING_001"
	SavingAmountBelowSaved  ErrorCode = "SAVING_002"
	SavingInvalidPercentage ErrorCode = "SAVING_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionInvalidCursor ErrorCode = "TRANSACTION_004"
)

// Recurring transaction error codes (RECURRING_*)
const (
	RecurringNotFound         ErrorCode = "RECURRING_001"
	RecurringInvalidFrequency ErrorCode = "RECURRING_002"
)

// Receipt error codes (RECEIPT_*)
const (
	ReceiptMissingFile     ErrorCode = "RECEIPT_001"
	ReceiptUnsupportedType ErrorCode = "RECEIPT_002"
	ReceiptTooLarge        ErrorCode = "RECEIPT_003"
	ReceiptOCRUnavailable  ErrorCode = "RECEIPT_004"
	ReceiptUnreadable      ErrorCode = "RECEIPT_005"
)

// Insight error codes (INSIGHT_*)
const (
	InsightNotConfigured ErrorCode = "INSIGHT_001"
	InsightUnavailable   ErrorCode = "INSIGHT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemNotFound           ErrorCode = "SYSTEM_005"
)

var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authentication credentials were not provided",
	AuthExpiredToken:       "Token has expired",
	AuthInvalidTokenFormat: "Token is invalid",
	AuthAccountLocked:      "Account is temporarily locked after repeated failed logins",
	AuthEmailTaken:         "A user with this email already exists",
	AuthWeakPassword:       "Password does not meet the password policy",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	CategoryNotFound:      "Category does not exist",
	CategoryAlreadyExists: "Category already exists",
	CategoryNoneFound:     "No categories found for this user",

	BudgetGeneralExists:     "User already has a General Budget",
	BudgetCategoryExists:    "Category already has a budget",
	BudgetGeneralNotFound:   "General Budget does not exist",
	BudgetCategoryNotFound:  "Budget for this Category does not exist",
	BudgetNoGeneralLimit:    "User does not have a general spending limit",
	BudgetInvalidBudgetPlan: "Budget plan must be Daily, Weekly or Monthly",

	SavingPlanNotFound:      "Saving Plan does not exist",
	SavingAmountBelowSaved:  "Your Saving Plan Amount Cannot be lower that the Amount you have saved",
	SavingInvalidPercentage: "Savings percentage must be between 0 and 100",

	TransactionNotFound:      "Transaction does not exist",
	TransactionInvalidAmount: "Transaction amount must be greater than zero",
	TransactionInvalidType:   "Transaction type must be Debit or Credit",
	TransactionInvalidCursor: "Invalid pagination cursor",

	RecurringNotFound:         "Recurring transaction does not exist",
	RecurringInvalidFrequency: "Frequency must be Daily, Weekly, Monthly or Yearly",

	ReceiptMissingFile:     "A receipt file is required",
	ReceiptUnsupportedType: "Receipt must be a PDF, PNG or JPEG file",
	ReceiptTooLarge:        "Receipt file is too large",
	ReceiptOCRUnavailable:  "Receipt scanning is not available on this server",
	ReceiptUnreadable:      "No text could be read from the receipt",

	InsightNotConfigured: "AI insights are not configured",
	InsightUnavailable:   "AI insights are temporarily unavailable",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is registered
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

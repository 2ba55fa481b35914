package apierrors

// Business error codes
const (
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidProductData = "INVALID_PRODUCT_DATA"
	ErrCodeInvalidFilter      = "INVALID_FILTER" // min greater than max and similar
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
)

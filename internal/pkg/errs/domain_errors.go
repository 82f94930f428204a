package errs

// Sentinels shared by the usecase and handler layers
var (
	// Order processing errors
	ErrInvalidOrder      = New("invalid order")
	ErrInsufficientStock = New("insufficient stock")
	ErrProcessingFailed  = New("order processing failed")

	// Query errors
	ErrOrderNotFound   = New("order not found")
	ErrProductNotFound = New("product not found")
)

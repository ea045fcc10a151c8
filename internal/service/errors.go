package service

// ValidationError is an input rejection whose text is meant for the user
// verbatim. Callers decide whether to re-prompt or redirect; nothing is
// retried.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrInvalidAmount       = ValidationError("Amount must be a positive number.")
	ErrInvalidType         = ValidationError("Type must be income or expense.")
	ErrCategoryRequired    = ValidationError("Category is required.")
	ErrInvalidCategory     = ValidationError("Invalid category.")
	ErrDateRequired        = ValidationError("Transaction date is required.")
	ErrTransactionNotFound = ValidationError("Transaction not found.")

	ErrCategoryNameRequired = ValidationError("Category name is required.")
	ErrCategoryNotFound     = ValidationError("Category not found.")
	ErrCategoryInUse        = ValidationError("Category is in use.")
)

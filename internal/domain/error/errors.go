package error

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation                = 4000
	CodeInsufficientBalance       = 4001
	CodeInvalidAmount             = 4002
	CodeInvalidUserID             = 4003
	CodeDuplicateTransaction      = 4004
	CodeConstraintViolation       = 4005
	CodeMessagingIdentityRequired = 4006
	CodeUnauthorized              = 4010
	CodeForbidden                 = 4030
	CodeUserNotFound              = 4040
	CodeLinkNotFound              = 4041
	CodeTransactionNotFound       = 4042
	CodeMessagingIdentityBound    = 4090
	CodeTransactionTerminal       = 4091
	CodeEmailInUse                = 4092
	CodeLinkExpired               = 4100
	CodeRateLimited               = 4290

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeUpstreamGateway = 5020
)

// Base error types
var (
	// ErrValidation is returned when request input fails domain validation
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientBalance is returned when a user cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a credit amount is zero, negative or out of range
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidReference is returned when a transaction reference is empty
	ErrInvalidReference = errors.New("transaction reference cannot be empty")

	// ErrDuplicateTransaction is returned when a transaction with the same reference already exists
	ErrDuplicateTransaction = errors.New("transaction with this reference already exists")

	ErrUserNotFound        = errors.New("user not found")
	ErrLinkNotFound        = errors.New("link not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrLinkExpired is returned when a public read hits a link past its expiry
	ErrLinkExpired = errors.New("link has expired")

	// ErrMessagingIdentityBound is returned when a messaging identity already belongs to another user
	ErrMessagingIdentityBound = errors.New("messaging identity is already bound to another account")

	// ErrMessagingIdentityRequired is returned when an operation needs a bound messaging identity
	ErrMessagingIdentityRequired = errors.New("a messaging identity must be bound before creating links")

	// ErrTransactionTerminal is returned when a transition is attempted on a settled transaction
	ErrTransactionTerminal = errors.New("transaction is already settled")

	// ErrUpstreamGateway is returned when the payment gateway is unreachable or answers garbage
	ErrUpstreamGateway = errors.New("payment gateway unavailable")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrRateLimited  = errors.New("too many requests")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrTransientConflict is returned when the database aborted a transaction because of concurrent access
	ErrTransientConflict = errors.New("concurrent update conflict")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrEmailInUse is returned when a new identity carries an email already
	// registered to a different account
	ErrEmailInUse = errors.New("email is registered to another account")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicatePublicID is returned when a generated link identifier collides
	ErrDuplicatePublicID = errors.New("link public identifier already exists")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidReference):
		return CodeValidation
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrMessagingIdentityRequired):
		return CodeMessagingIdentityRequired
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrLinkNotFound):
		return CodeLinkNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrEmailInUse):
		return CodeEmailInUse
	case errors.Is(err, ErrMessagingIdentityBound), errors.Is(err, ErrDuplicateUser):
		return CodeMessagingIdentityBound
	case errors.Is(err, ErrTransactionTerminal):
		return CodeTransactionTerminal
	case errors.Is(err, ErrLinkExpired):
		return CodeLinkExpired
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUpstreamGateway):
		return CodeUpstreamGateway
	default:
		return CodeInternalServer
	}
}

// ValidationError carries one message per offending field
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records another offending field
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = message
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns the error only when a field was recorded
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation",
		"fields":     e.Fields,
		"error_code": CodeValidation,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID    string
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID string, required, available int64) error {
	return &InsufficientBalanceError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// UpstreamGatewayError wraps a payment gateway failure. The wrapped cause is
// kept for logs only; Error() never exposes it to callers.
type UpstreamGatewayError struct {
	Operation string
	Reference string
	Retryable bool
	Err       error
}

// Error implements the error interface
func (e *UpstreamGatewayError) Error() string {
	return ErrUpstreamGateway.Error()
}

// Unwrap returns the underlying error
func (e *UpstreamGatewayError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrUpstreamGateway
func (e *UpstreamGatewayError) Is(target error) bool {
	return target == ErrUpstreamGateway
}

// LogFields returns a map of fields for structured logging
func (e *UpstreamGatewayError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "upstream_gateway",
		"operation":  e.Operation,
		"reference":  e.Reference,
		"retryable":  e.Retryable,
		"error_code": CodeUpstreamGateway,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewUpstreamGatewayError creates a retryable gateway error
func NewUpstreamGatewayError(operation, reference string, err error) error {
	return &UpstreamGatewayError{
		Operation: operation,
		Reference: reference,
		Retryable: true,
		Err:       err,
	}
}

// DuplicateTransactionError provides detailed information about duplicate transaction attempts
type DuplicateTransactionError struct {
	Reference string
	UserID    string
}

// Error implements the error interface
func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction detected: reference=%s for user %s", e.Reference, e.UserID)
}

// Is checks if the target error is an ErrDuplicateTransaction
func (e *DuplicateTransactionError) Is(target error) bool {
	return target == ErrDuplicateTransaction
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_transaction",
		"reference":  e.Reference,
		"user_id":    e.UserID,
		"error_code": CodeDuplicateTransaction,
	}
}

// NewDuplicateTransactionError creates a new detailed duplicate transaction error
func NewDuplicateTransactionError(reference, userID string) error {
	return &DuplicateTransactionError{Reference: reference, UserID: userID}
}

// LogFielder is implemented by errors that carry structured context
type LogFielder interface {
	LogFields() map[string]any
}

// LogFields extracts structured fields from err, falling back to its message
func LogFields(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	if err == nil {
		return map[string]any{}
	}
	return map[string]any{"error": err.Error(), "error_code": ErrorCode(err)}
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsValidationError checks if the error is a validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrLinkNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError checks if the error reports a state conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrMessagingIdentityBound) ||
		errors.Is(err, ErrTransactionTerminal) ||
		errors.Is(err, ErrDuplicateTransaction) ||
		errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrEmailInUse) ||
		errors.Is(err, ErrTransientConflict)
}

// IsUpstreamError checks if the error came from the payment gateway
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamGateway)
}

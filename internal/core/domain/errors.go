package domain

import "errors"

// Sentinel errors for the auth surface. The message text is part of the API
// contract and is rendered verbatim by the HTTP error handler.
var (
	ErrEmptyUserFields    = errors.New("username or email cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailExists        = errors.New("Email already exists")
	ErrUsernameExists     = errors.New("Username already exists")
	ErrMissingCredentials = errors.New("Username and password are required")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid username or password")
)

// Sentinel errors for the tender lifecycle.
var (
	ErrInvalidInput        = errors.New("Invalid input")
	ErrInvalidTenderData   = errors.New("Invalid tender data")
	ErrInvalidTenderStatus = errors.New("Invalid tender status")
	ErrTenderNotFound      = errors.New("Tender not found")
	// ErrTenderAccess conceals existence: absent and not-owned are
	// indistinguishable to the caller.
	ErrTenderAccess = errors.New("Tender not found or access denied")
)

// Sentinel errors for the bid lifecycle.
var (
	ErrInvalidBidData = errors.New("Invalid bid data")
	ErrTenderNotOpen  = errors.New("Tender is not open for bids")
	ErrBidNotFound    = errors.New("Bid not found")
	ErrBidAccess      = errors.New("Bid not found or access denied")
	ErrAlreadyAwarded = errors.New("Tender already has an awarded bid")
)

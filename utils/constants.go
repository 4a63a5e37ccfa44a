package utils

import "time"

// Application constants
const (
	// Application name
	AppName = "SkillSphere"

	// API base path
	APIBasePath = "/gsa-api/v1"

	// JWT token expiration
	JWTExpiration = 7 * 24 * time.Hour

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8

	// Minimum coupon code length
	MinCouponCodeLength = 5
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password."
	ErrInvalidToken       = "Authorization token missing or invalid."
	ErrForbidden          = "You do not have permission to perform this action."

	ErrRequiredFields    = "Validation error: fields are required."
	ErrInvalidEmail      = "Validation error: email is invalid."
	ErrEmailExists       = "Validation error: email already exists."
	ErrInvalidPassword   = "Validation error: password format invalid."
	ErrInvalidPagination = "Validation error: page and size must be positive integers."
	ErrInvalidSort       = "Validation error: sort must be 'asc' or 'desc'."
	ErrInvalidID         = "Validation error: id must be a positive integer."

	ErrInternalServer = "Internal server error"
)

// Success messages
const (
	MsgLoginSuccess    = "Login successful."
	MsgLogoutSuccess   = "Logout successful."
	MsgRegisterSuccess = "User registered successfully."
)

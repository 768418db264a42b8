package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenVerification   = errors.New("token verification failed")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrValidationEmptyTitle      = errors.New("task title must not be empty")
	ErrValidationInvalidPriority = errors.New("invalid task priority")
	ErrValidationInvalidStatus   = errors.New("invalid task status")

	ErrAccessDenied = errors.New("access denied: you can only access your own resources")
)

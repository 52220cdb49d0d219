package service

import "errors"

var (
	// ErrValidation wraps rejected input; handlers map it to 400.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidRole        = errors.New("role must be vendor or customer")

	ErrKYCRequired          = errors.New("KYC verification required")
	ErrNotOwner             = errors.New("not the owner of this equipment")
	ErrEquipmentUnavailable = errors.New("equipment is not available")
	ErrOwnEquipment         = errors.New("cannot book your own equipment")

	ErrInvalidDates      = errors.New("both start and end dates are required and end must not precede start")
	ErrNotParty          = errors.New("not a party to this booking")
	ErrInvalidTransition = errors.New("status transition not allowed")

	ErrNotReviewable  = errors.New("booking must be completed before it can be reviewed")
	ErrAlreadyReviewed = errors.New("review already submitted for this booking")
)

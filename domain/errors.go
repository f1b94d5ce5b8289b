package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// marketplace error
	ErrListingNotFound         = errors.New("listing not found")
	ErrListingNotPurchasable   = errors.New("listing is not purchasable")
	ErrAmountOutOfRange        = errors.New("amount exceeds remaining listing amount")
	ErrInsufficientBalance     = errors.New("insufficient payment token balance")
	ErrInsufficientAllowance   = errors.New("allowance below total cost after approval")
	ErrReferralCodeTooLong     = errors.New("referral code exceeds bytes32 capacity")
	ErrCannotListPlatformToken = errors.New("cannot list the platform token")
	ErrMetadataTooLong         = errors.New("metadata field exceeds length cap")
)

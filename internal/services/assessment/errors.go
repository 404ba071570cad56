package assessment

import "errors"

// Service errors
var (
	ErrInvalidShopSize     = errors.New("invalid shop size category")
	ErrInvalidSignageType  = errors.New("invalid signage type")
	ErrMissingBusinessType = errors.New("business type is required")
	ErrMissingWard         = errors.New("ward is required")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrNegativeDays        = errors.New("days overdue cannot be negative")
	ErrInvalidYear         = errors.New("invalid assessment year")
)

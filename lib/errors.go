package lib

import "errors"

// Sheet errors
var (
	ErrMissingIDColumn    = errors.New("order id column missing from sheet")
	ErrMissingEmailColumn = errors.New("email column missing from sheet")
)

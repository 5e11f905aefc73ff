package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrContractNotFound = errors.New("tenant contract not found")
)

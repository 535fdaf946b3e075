package domain

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRecordNotFound  = errors.New("record not found")
)

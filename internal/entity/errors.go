package entity

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrLeadNotFound = errors.New("lead not found")
)

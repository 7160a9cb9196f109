package entity

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("a lead with this email already exists")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrRuleNotFound       = errors.New("scoring rule not found")
)

package client

import "errors"

var (
	ErrClientNotFound           = errors.New("client not found")
	ErrRegistrationNumberExists = errors.New("company registration number already exists")
	ErrClientNotBillable        = errors.New("client contract is not active")
)

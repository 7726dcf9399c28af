package service

import "errors"

var (
	ErrMissingField       = errors.New("missing field")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredential  = errors.New("missing credential")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMisconfigured      = errors.New("auth config invalid")
)

package util

import "errors"

var (
	ErrStudentNameRequired = errors.New("student name is required")
	ErrMissingFields       = errors.New("missing required fields")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("account disabled")
	ErrPasswordMismatch    = errors.New("passwords do not match")
)

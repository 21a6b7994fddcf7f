package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("asset assignment not found")
)

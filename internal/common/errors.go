// Package common defines shared sentinel errors used across FieldBill
// layers. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level validation errors.
	ErrorCustomerRequired = errors.New("customer is required")
	ErrorNameRequired     = errors.New("name is required")
)

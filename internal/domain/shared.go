package domain

import "github.com/go-playground/validator/v10"

// Package-level validator instance used by entity constructors.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

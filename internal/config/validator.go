package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the configuration struct against its tags and reports
// every failing field at once.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var missing []string
	for _, e := range validationErrors {
		missing = append(missing, e.Field())
	}
	return fmt.Errorf("invalid configuration, check fields: %s", strings.Join(missing, ", "))
}

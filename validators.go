package main

import (
	"log"
	"regexp"
	"strings"

	"gopkg.in/go-playground/validator.v9"
)

// This module adds custom validators used by validator.v9

const (
	// Matches alphanum chars plus underscore, dash and spaces (\t\n\f\r )
	alphaNumSpaceUnderscoreDash = "^[\\w\\-\\s]+$"
)

var alphaNumSpaceUnderscoreDashRegex = regexp.MustCompile(alphaNumSpaceUnderscoreDash)

// InstallCustomValidators extends validator.v9 with custom validation functions
// and meta tags for fields.
func InstallCustomValidators(validate *validator.Validate) {
	err := validate.RegisterValidation("noforwardslash", notIncludeForwardSlash)
	if err != nil {
		log.Fatalln("Failed to install custom validator:", err)
	}
	err = validate.RegisterValidation("alphanumspace", isAlphanumSpace)
	if err != nil {
		log.Fatalln("Failed to install custom validator:", err)
	}
	err = validate.RegisterValidation("nopercent", notIncludePercent)
	if err != nil {
		log.Fatalln("Failed to install custom validator:", err)
	}
}

// isAlphanumSpace is the validation function for validating if the current
// field's value is a valid alphanumeric value that also accepts dashes,
// underscores and spaces.
func isAlphanumSpace(fl validator.FieldLevel) bool {
	return alphaNumSpaceUnderscoreDashRegex.MatchString(fl.Field().String())
}

// notIncludeForwardSlash is a function that validates the field value does not
// include forward slashes (/).
func notIncludeForwardSlash(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), "/")
}

// notIncludePercent is a function that validates the field value does not
// include percent signs (%).
func notIncludePercent(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), "%")
}

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxDepth       = 21
	MinDepth       = 1
	MaxGuidLength  = 64
	MaxBatchAssets = 100
)

func init() {
	validate = validator.New()
}

// LineageRequest is a request to build a lineage graph for one asset
type LineageRequest struct {
	Guid      string `json:"guid" validate:"required,max=64"`
	Direction string `json:"direction" validate:"omitempty,oneof=both upstream downstream"`
	Depth     int    `json:"depth" validate:"omitempty,min=1,max=21"`
	Layout    string `json:"layout" validate:"omitempty,oneof=hierarchical radial none"`
}

// PathRequest is a request for an impact or root-cause reachability set
type PathRequest struct {
	Guid   string `json:"guid" validate:"required,max=64"`
	NodeID string `json:"nodeId" validate:"omitempty,max=64"`
	Depth  int    `json:"depth" validate:"omitempty,min=1,max=21"`
}

// ValidateLineageRequest validates a lineage build request
func ValidateLineageRequest(req *LineageRequest) error {
	if req == nil {
		return errors.New("lineage request cannot be nil")
	}
	if strings.TrimSpace(req.Guid) == "" {
		return errors.New("Guid: must not be blank")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidatePathRequest validates an impact/root-cause path request
func ValidatePathRequest(req *PathRequest) error {
	if req == nil {
		return errors.New("path request cannot be nil")
	}
	if strings.TrimSpace(req.Guid) == "" {
		return errors.New("Guid: must not be blank")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into user-facing messages
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s: required", fieldErr.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s: must be one of [%s]", fieldErr.Field(), fieldErr.Param()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s: must be at least %s", fieldErr.Field(), fieldErr.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s: must be at most %s", fieldErr.Field(), fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s: invalid value", fieldErr.Field()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}

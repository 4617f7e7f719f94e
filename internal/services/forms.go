package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/larekshop/larek-backend/internal/apperr"
)

type FieldErrors map[string]string

// ValidationError carries per-field messages so the handler can
// re-render the form. It matches apperr.ErrValidation through Is.
type ValidationError struct {
	Form   string
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("validation failed (%s): %s", e.Form, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == apperr.ErrValidation
}

// ProductInput carries the editable product fields. The photo is not
// among them; it only changes through the upload endpoint.
type ProductInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Price       int        `json:"price"`
	IsPublished bool       `json:"is_published"`
}

func (in ProductInput) validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if in.Price < 0 {
		errs["price"] = "price must not be negative"
	}
	return errs
}

type VersionInput struct {
	ID               *uuid.UUID `json:"id"`
	VersionNumber    uint       `json:"version_number"`
	Name             string     `json:"name"`
	IsCurrentVersion bool       `json:"is_current_version"`
}

func (in VersionInput) validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if in.VersionNumber == 0 {
		errs["version_number"] = "version_number must be positive"
	}
	return errs
}

// validateVersionRows checks the whole sub-form at once: one bad row
// keeps every row from persisting, mirroring the all-or-nothing save of
// an inline formset.
func validateVersionRows(rows []VersionInput) []FieldErrors {
	var result []FieldErrors
	sawError := false
	for _, row := range rows {
		errs := row.validate()
		if len(errs) > 0 {
			sawError = true
		}
		result = append(result, errs)
	}
	if !sawError {
		return nil
	}
	return result
}

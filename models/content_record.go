package models

import (
	"encoding/json"
	"regexp"
	"time"
)

var contentTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_.:-]{0,99}$`)

// ContentRecord is a managed content record owned by the host content store
type ContentRecord struct {
	ID          string          `json:"id" db:"id"`
	ContentType string          `json:"contentType" db:"content_type"`
	Data        json.RawMessage `json:"data" db:"data"`
	CreatedBy   string          `json:"createdBy,omitempty" db:"created_by"`
	UpdatedBy   string          `json:"updatedBy,omitempty" db:"updated_by"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// ContentRecordForm represents request data for creating/updating content records
type ContentRecordForm struct {
	ContentType string          `json:"-"`
	Data        json.RawMessage `json:"data"`
}

// Validate validates the content record form data
func (f *ContentRecordForm) Validate() []string {
	var errors []string

	if f.ContentType == "" {
		errors = append(errors, "Content type is required")
	} else if !IsValidContentType(f.ContentType) {
		errors = append(errors, "Content type must be lowercase and may only contain letters, digits, '_', '.', ':' or '-'")
	}

	if len(f.Data) == 0 {
		errors = append(errors, "Data is required")
	} else {
		var obj map[string]any
		if err := json.Unmarshal(f.Data, &obj); err != nil || obj == nil {
			errors = append(errors, "Data must be a JSON object")
		}
	}

	return errors
}

// IsValidContentType reports whether s is an acceptable content type identifier
func IsValidContentType(s string) bool {
	return contentTypePattern.MatchString(s)
}

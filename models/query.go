package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// QueryCriteria is a validated audit log query
type QueryCriteria struct {
	Page        int
	PageSize    int
	ContentType *string
	User        *string
	Action      *Action
	StartDate   *time.Time
	EndDate     *time.Time
}

// Pagination describes where a page sits in the full result set
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// AuditLogPage is one page of query results
type AuditLogPage struct {
	Entries    []AuditLogEntry `json:"entries"`
	Pagination Pagination      `json:"pagination"`
}

// NewQueryCriteria returns criteria for the given page with defaults applied
func NewQueryCriteria(page, pageSize int) (QueryCriteria, error) {
	c := QueryCriteria{Page: page, PageSize: pageSize}
	if errs := c.normalize(); errs.HasErrors() {
		return QueryCriteria{}, errs
	}
	return c, nil
}

// ParseQueryCriteria builds criteria from URL query parameters.
// Any malformed parameter yields ValidationErrors and no criteria.
func ParseQueryCriteria(values url.Values) (QueryCriteria, error) {
	var errs ValidationErrors
	c := QueryCriteria{}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "page", Message: "page must be an integer"})
		} else if n < 1 {
			errs = append(errs, ValidationError{Field: "page", Message: "page must be >= 1"})
		} else {
			c.Page = n
		}
	}

	if raw := strings.TrimSpace(values.Get("pageSize")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "pageSize", Message: "pageSize must be an integer"})
		} else {
			// non-positive sizes clamp to 1
			c.PageSize = max(n, 1)
		}
	}

	if v := strings.TrimSpace(values.Get("contentType")); v != "" {
		c.ContentType = &v
	}

	if v := strings.TrimSpace(values.Get("user")); v != "" {
		c.User = &v
	}

	if raw := strings.TrimSpace(values.Get("action")); raw != "" {
		action, err := ParseAction(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "action", Message: err.Error()})
		} else {
			c.Action = &action
		}
	}

	if raw := strings.TrimSpace(values.Get("startDate")); raw != "" {
		t, err := ParseTimestamp(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "startDate", Message: "startDate must be an ISO-8601 date or date-time"})
		} else {
			c.StartDate = &t
		}
	}

	if raw := strings.TrimSpace(values.Get("endDate")); raw != "" {
		t, err := ParseTimestamp(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "endDate", Message: "endDate must be an ISO-8601 date or date-time"})
		} else {
			c.EndDate = &t
		}
	}

	errs = append(errs, c.normalize()...)
	if errs.HasErrors() {
		return QueryCriteria{}, errs
	}
	return c, nil
}

// normalize applies defaults, clamps the page size and checks cross-field rules
func (c *QueryCriteria) normalize() ValidationErrors {
	var errs ValidationErrors

	if c.Page == 0 {
		c.Page = DefaultPage
	}
	if c.Page < 1 {
		errs = append(errs, ValidationError{Field: "page", Message: "page must be >= 1"})
	}

	switch {
	case c.PageSize == 0:
		c.PageSize = DefaultPageSize
	case c.PageSize < 1:
		c.PageSize = 1
	case c.PageSize > MaxPageSize:
		c.PageSize = MaxPageSize
	}

	if c.StartDate != nil && c.EndDate != nil && c.StartDate.After(*c.EndDate) {
		errs = append(errs, ValidationError{Field: "startDate", Message: "startDate must not be after endDate"})
	}

	return errs
}

// Normalize applies defaults and clamps to criteria built by hand
func (c *QueryCriteria) Normalize() error {
	if errs := c.normalize(); errs.HasErrors() {
		return errs
	}
	return nil
}

// Offset is the number of matching entries skipped before this page.
// It saturates at math.MaxInt so pages far past the end stay empty.
func (c QueryCriteria) Offset() int {
	if c.Page <= 1 || c.PageSize <= 0 {
		return 0
	}
	if c.Page-1 > math.MaxInt/c.PageSize {
		return math.MaxInt
	}
	return (c.Page - 1) * c.PageSize
}

// Filter returns the store predicate set for these criteria
func (c QueryCriteria) Filter() AuditFilter {
	return AuditFilter{
		ContentType: c.ContentType,
		User:        c.User,
		Action:      c.Action,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
	}
}

// PageCount returns ceil(total / pageSize), or 0 when there is nothing to page
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

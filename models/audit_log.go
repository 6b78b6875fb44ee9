package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Action is the kind of mutation an audit entry records
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Actions lists every valid action in a stable order
var Actions = []Action{ActionCreate, ActionUpdate, ActionDelete}

// ParseAction converts a raw string into an Action, rejecting anything outside the closed set
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionCreate, ActionUpdate, ActionDelete:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown action %q: must be one of create, update, delete", s)
}

// Valid reports whether a is one of the known actions
func (a Action) Valid() bool {
	_, err := ParseAction(string(a))
	return err == nil
}

// AuditLogEntry is a single immutable record of a content mutation
type AuditLogEntry struct {
	ID          int64           `json:"id"`
	ContentType string          `json:"contentType"`
	RecordID    string          `json:"recordId"`
	Action      Action          `json:"action"`
	User        *string         `json:"user,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Payload     json.RawMessage `json:"payload"`
}

// AuditFilter is the predicate set shared by FindMany and Count.
// Nil fields impose no constraint.
type AuditFilter struct {
	ContentType *string
	User        *string
	Action      *Action
	StartDate   *time.Time
	EndDate     *time.Time
}

// Empty reports whether the filter matches every entry
func (f AuditFilter) Empty() bool {
	return f.ContentType == nil && f.User == nil && f.Action == nil && f.StartDate == nil && f.EndDate == nil
}

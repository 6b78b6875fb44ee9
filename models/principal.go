package models

// PermissionReadAuditLogs is the capability required to query audit logs
const PermissionReadAuditLogs = "read_audit_logs"

// Principal is the authenticated identity behind a request
type Principal struct {
	ID          string   `json:"id"`
	Email       string   `json:"email,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether the principal was granted the capability
func (p *Principal) HasPermission(capability string) bool {
	if p == nil {
		return false
	}
	for _, perm := range p.Permissions {
		if perm == capability {
			return true
		}
	}
	return false
}

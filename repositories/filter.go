package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/blogem/content-audit/models"
)

// placeholderFunc renders the n-th (1-based) bind parameter for a SQL dialect
type placeholderFunc func(n int) string

func questionPlaceholder(int) string { return "?" }

func dollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }

// whereClause renders the predicate set shared by FindMany and Count.
// The same filter always produces the same clause, so a page and its total agree.
type whereClause struct {
	sql  string
	args []any
}

// buildWhere converts a filter into a WHERE clause. timeArg encodes timestamp bounds for the driver.
func buildWhere(f models.AuditFilter, ph placeholderFunc, timeArg func(time.Time) any) whereClause {
	var (
		conds []string
		args  []any
	)
	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, ph(len(args))))
	}

	if f.ContentType != nil {
		add("content_type = %s", *f.ContentType)
	}
	if f.User != nil {
		add("user_id = %s", *f.User)
	}
	if f.Action != nil {
		add("action = %s", string(*f.Action))
	}
	if f.StartDate != nil {
		add("timestamp >= %s", timeArg(*f.StartDate))
	}
	if f.EndDate != nil {
		add("timestamp <= %s", timeArg(*f.EndDate))
	}

	if len(conds) == 0 {
		return whereClause{}
	}
	return whereClause{sql: " WHERE " + strings.Join(conds, " AND "), args: args}
}

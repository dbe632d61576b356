package postgres

import (
	"fmt"
	"strings"

	"alert-srv/internal/history/repository"
	"alert-srv/internal/model"

	"github.com/lib/pq"
)

const (
	insertAlertQuery = `
INSERT INTO alerts (id, organization_id, user_id, alert_type, priority, status, message,
	piano_id, client_id, inventory_id, days_since_last_service, current_stock, threshold, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + alertColumns

	detailAlertQuery = `SELECT ` + alertColumns + ` FROM alerts WHERE organization_id = $1 AND id = $2`

	findActiveStockQuery = `
SELECT ` + alertColumns + ` FROM alerts
WHERE organization_id = $1 AND inventory_id = $2 AND alert_type = 'stock'
  AND status IN ('active', 'acknowledged')
LIMIT 1`

	updateStatusQuery = `
UPDATE alerts SET
	status = $4,
	acknowledged_at = CASE WHEN $4 = 'acknowledged' THEN $5 ELSE acknowledged_at END,
	resolved_at = CASE WHEN $4 = 'resolved' THEN $5 ELSE NULL END,
	resolved_by_service_id = CASE WHEN $4 = 'resolved' THEN $6 ELSE resolved_by_service_id END
WHERE organization_id = $1 AND id = $2 AND status = $3
RETURNING ` + alertColumns

	statisticsQuery = `
SELECT
	COUNT(*) FILTER (WHERE status = 'active' AND priority = 'urgent') AS active_urgent,
	COUNT(*) FILTER (WHERE status = 'active' AND priority = 'pending') AS active_pending,
	COUNT(*) FILTER (WHERE status = 'resolved' AND resolved_at >= $2) AS resolved_since,
	COALESCE(AVG(EXTRACT(EPOCH FROM resolved_at - created_at) / 86400)
		FILTER (WHERE status = 'resolved'), 0)::float8 AS avg_resolution_days
FROM alerts
WHERE organization_id = $1`
)

// partial unique indexes that keep one open alert per subject
const (
	activeMaintenanceIndex = "alerts_active_maintenance"
	activeStockIndex       = "alerts_active_stock"
)

// buildWhere renders the filter as a WHERE clause starting at placeholder $1.
func buildWhere(orgID string, f repository.Filter) (string, []interface{}) {
	conds := []string{"organization_id = $1"}
	args := []interface{}{orgID}

	add := func(cond string, v interface{}) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if len(f.Statuses) > 0 {
		add("status = ANY($%d)", pqStrings(f.Statuses))
	}
	if len(f.Priorities) > 0 {
		add("priority = ANY($%d)", pqStrings(f.Priorities))
	}
	if len(f.Types) > 0 {
		add("alert_type = ANY($%d)", pqStrings(f.Types))
	}
	if f.PianoID != "" {
		add("piano_id = $%d", f.PianoID)
	}
	if f.InventoryID != "" {
		add("inventory_id = $%d", f.InventoryID)
	}
	if !f.Window.Start.IsZero() {
		add("created_at >= $%d", f.Window.Start)
	}
	if !f.Window.End.IsZero() {
		add("created_at < $%d", f.Window.End)
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildGetQuery returns the count query with its args and the page query with its args.
func buildGetQuery(orgID string, opts repository.GetOptions) (string, []interface{}, string, []interface{}) {
	where, args := buildWhere(orgID, opts.Filter)
	count := `SELECT COUNT(*) AS count FROM alerts` + where

	listArgs := append(append([]interface{}{}, args...), opts.Limit, opts.Offset)
	list := `SELECT ` + alertColumns + ` FROM alerts` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", len(listArgs)-1, len(listArgs))

	return count, args, list, listArgs
}

func buildListQuery(orgID string, opts repository.ListOptions) (string, []interface{}) {
	where, args := buildWhere(orgID, opts.Filter)
	return `SELECT ` + alertColumns + ` FROM alerts` + where + ` ORDER BY created_at, id`, args
}

func pqStrings[T model.AlertStatus | model.AlertPriority | model.AlertType](vals []T) interface{} {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return pq.Array(out)
}

package postgres

import (
	"testing"
	"time"

	"alert-srv/internal/history/repository"
	"alert-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhere(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	where, args := buildWhere("org-1", repository.Filter{
		Statuses: []model.AlertStatus{model.AlertStatusActive},
		Types:    []model.AlertType{model.AlertTypeTuning, model.AlertTypeRepair},
		PianoID:  "p1",
		Window:   model.Window{Start: start, End: end},
	})

	assert.Equal(t, " WHERE organization_id = $1 AND status = ANY($2) AND alert_type = ANY($3)"+
		" AND piano_id = $4 AND created_at >= $5 AND created_at < $6", where)
	require.Len(t, args, 6)
	assert.Equal(t, "org-1", args[0])
	assert.Equal(t, start, args[4])
}

func TestBuildGetQuery(t *testing.T) {
	count, countArgs, list, listArgs := buildGetQuery("org-1", repository.GetOptions{
		Filter: repository.Filter{Priorities: []model.AlertPriority{model.AlertPriorityUrgent}},
		Limit:  20,
		Offset: 40,
	})

	assert.Equal(t, "SELECT COUNT(*) AS count FROM alerts WHERE organization_id = $1 AND priority = ANY($2)", count)
	assert.Len(t, countArgs, 2)
	assert.Contains(t, list, "ORDER BY created_at DESC, id LIMIT $3 OFFSET $4")
	assert.Equal(t, []interface{}{20, 40}, listArgs[2:])
}

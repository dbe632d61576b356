package http

import (
	"testing"

	"alert-srv/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestUpdateReq_Validate(t *testing.T) {
	tests := []struct {
		name   string
		req    updateReq
		fields []string
	}{
		{name: "empty", req: updateReq{}},
		{name: "in range", req: updateReq{TuningDaysPending: intPtr(180), RegulationDaysUrgent: intPtr(3650), WeeklyDigestDay: intPtr(7)}},
		{name: "zero threshold", req: updateReq{TuningDaysUrgent: intPtr(0)}, fields: []string{"tuning_days_urgent"}},
		{
			name:   "several fields",
			req:    updateReq{TuningDaysPending: intPtr(366), RegulationDaysPending: intPtr(1826), WeeklyDigestDay: intPtr(8)},
			fields: []string{"tuning_days_pending", "regulation_days_pending", "weekly_digest_day"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var c *errors.ValidationErrorCollector
			require.ErrorAs(t, err, &c)
			var got []string
			for _, e := range c.Errors() {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

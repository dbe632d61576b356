package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"alert-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	collector := errors.NewValidationErrorCollector().
		Add(errors.NewValidationError(http.StatusBadRequest, "weekly_digest_day", "weekly digest day must be between 1 and 7"))

	tests := []struct {
		name       string
		err        error
		status     int
		code       int
		fieldCount int
	}{
		{name: "validation collector", err: collector, status: http.StatusBadRequest, code: ValidationErrorCode, fieldCount: 1},
		{name: "single validation error", err: errors.NewValidationError(http.StatusBadRequest, "reorder_quantity", "must be positive"), status: http.StatusBadRequest, code: http.StatusBadRequest},
		{name: "http error", err: errors.NewHTTPError(http.StatusNotFound, "Stock alert not found"), status: http.StatusNotFound, code: http.StatusNotFound},
		{name: "unknown error", err: assert.AnError, status: http.StatusInternalServerError, code: InternalServerErrorCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPut, "/", nil)

			Error(c, tt.err, nil)

			assert.Equal(t, tt.status, w.Code)
			var body struct {
				ErrorCode int               `json:"error_code"`
				Errors    []json.RawMessage `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.ErrorCode)
			assert.Len(t, body.Errors, tt.fieldCount)
		})
	}
}

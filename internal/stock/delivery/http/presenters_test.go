package http

import (
	"testing"

	"alert-srv/internal/stock"
	"alert-srv/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkReq_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, linkReq{LowStockThreshold: 5, ReorderQuantity: 20}.validate())
	})

	t.Run("both quantities invalid", func(t *testing.T) {
		err := linkReq{LowStockThreshold: 0, ReorderQuantity: -1}.validate()

		var c *errors.ValidationErrorCollector
		require.ErrorAs(t, err, &c)
		require.Len(t, c.Errors(), 2)
		assert.Equal(t, "low_stock_threshold", c.Errors()[0].Field)
		assert.Equal(t, []string{stock.ErrInvalidThreshold.Error()}, c.Errors()[0].Messages)
		assert.Equal(t, "reorder_quantity", c.Errors()[1].Field)
	})
}

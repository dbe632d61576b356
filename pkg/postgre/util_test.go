package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "alerts_active_stock"}
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "any constraint", err: dup, want: true},
		{name: "named constraint", err: dup, constraint: "alerts_active_stock", want: true},
		{name: "other constraint", err: dup, constraint: "orders_pkey", want: false},
		{name: "wrapped", err: fmt.Errorf("insert: %w", dup), want: true},
		{name: "other code", err: &pq.Error{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("upsert: %w", &pq.Error{Code: "23503"})))
	assert.False(t, IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestValidateUUIDs(t *testing.T) {
	assert.NoError(t, ValidateUUIDs([]string{NewUUID(), NewUUID()}))
	assert.ErrorIs(t, ValidateUUIDs([]string{NewUUID(), "nope"}), ErrInvalidUUID)
	assert.ErrorIs(t, IsUUID(""), ErrInvalidUUID)
	assert.Equal(t, "", ParseUUIDOrNil("nope"))
}

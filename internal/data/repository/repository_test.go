package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// orderClause builds SQL from query parameters, so anything outside the
// whitelist has to collapse to the safe default.
func TestOrderClause(t *testing.T) {
	tests := []struct {
		name  string
		order string
		sort  string
		want  string
	}{
		{"defaults", "", "", "created_at DESC"},
		{"asc", "created_at", "asc", "created_at ASC"},
		{"upper asc", "updated_at", "ASC", "updated_at ASC"},
		{"modified_on", "modified_on", "desc", "modified_on DESC"},
		{"unknown column", "password; DROP TABLE users", "asc", "created_at ASC"},
		{"unknown direction", "created_at", "sideways", "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.order, tt.sort))
		})
	}
}

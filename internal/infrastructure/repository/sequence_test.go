package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxSequence(t *testing.T) {
	tests := []struct {
		name    string
		numbers []string
		want    int
	}{
		{"empty", nil, 0},
		{"single", []string{"SAL-0001"}, 1},
		{"ordered", []string{"SAL-0001", "SAL-0002", "SAL-0003"}, 3},
		{"five digits beat four", []string{"SAL-9999", "SAL-10000"}, 10000},
		{"unparsable suffix skipped", []string{"SAL-0002", "SAL-draft"}, 2},
		{"gaps from deletions kept", []string{"SAL-0001", "SAL-0007"}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maxSequence(tt.numbers, "SAL"))
		})
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustSeats(t *testing.T) {
	tests := []struct {
		name           string
		oldCapacity    int
		newCapacity    int
		seatsRemaining int
		want           int
	}{
		{"capacity grows", 100, 120, 30, 50},
		{"capacity shrinks", 100, 80, 30, 10},
		{"capacity unchanged", 100, 100, 30, 30},
		{"shrink below sold seats clamps at zero", 100, 50, 30, 0},
		{"shrink exactly to sold seats", 100, 70, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustSeats(tt.oldCapacity, tt.newCapacity, tt.seatsRemaining)
			assert.Equal(t, tt.want, got)
		})
	}
}

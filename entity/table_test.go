package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityRangeValid(t *testing.T) {
	for name, tc := range map[string]struct {
		min, base, max int
		valid          bool
	}{
		"base inside range":  {10, 100, 200, true},
		"base at lower edge": {10, 10, 200, true},
		"base at upper edge": {10, 200, 200, true},
		"base below range":   {10, 5, 200, false},
		"base above range":   {10, 300, 200, false},
		"collapsed range":    {100, 100, 100, false},
		"inverted range":     {200, 100, 10, false},
	} {
		t.Run(name, func(t *testing.T) {
			table := Table{
				MinWriteCapacity: tc.min,
				WriteCapacity:    tc.base,
				MaxWriteCapacity: tc.max,
			}
			assert.Equal(t, tc.valid, table.CapacityRangeValid())
		})
	}
}

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence(t *testing.T) {
	t.Run("calibration_point", func(t *testing.T) {
		assert.Equal(t, 1.0, Confidence(70))
	})

	t.Run("clamps_to_unit_interval", func(t *testing.T) {
		assert.Equal(t, 1.0, Confidence(200))
		assert.Equal(t, 0.0, Confidence(0))
		assert.Equal(t, 0.0, Confidence(-35))
	})

	t.Run("rounds_to_two_decimals", func(t *testing.T) {
		assert.Equal(t, 0.9, Confidence(63))  // 0.9000
		assert.Equal(t, 0.69, Confidence(48)) // 0.6857...
		assert.Equal(t, 0.63, Confidence(44)) // 0.6285...
		assert.Equal(t, 0.01, Confidence(1))  // 0.0142...
	})

	t.Run("monotonic", func(t *testing.T) {
		prev := Confidence(-10)
		for raw := -9; raw <= 80; raw++ {
			cur := Confidence(raw)
			assert.GreaterOrEqual(t, cur, prev, "Confidence(%d)", raw)
			prev = cur
		}
	})
}

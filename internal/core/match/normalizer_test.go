package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopTokenNormalizer(t *testing.T) {
	n := StopTokenNormalizer{}

	tests := []struct {
		name string
		want string
	}{
		{"DrowsinessState", "drowsiness"},
		{"hasDrowsinessState", "drowsiness"},
		{"DrowsinessType", "drowsiness"},
		{"Drowsiness", "drowsiness"},
		{"has_drowsiness_state", "drowsiness"},
		{"isAlert", "alert"},
		{"MonitoringSystem", "monitoring"},
		{"Sensor", "sensor"},
		{"", ""},
		// Only one leading and one trailing token are stripped.
		{"hasIsState", "is"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.name), "input %q", tt.name)
	}
}

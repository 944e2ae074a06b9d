package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortFuncName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "main.main", expected: "main"},
		{input: "github.com/ethpandaops/timekeeper/pkg/timer.Summarize", expected: "Summarize"},
		{input: "github.com/ethpandaops/timekeeper/pkg/timer.(*FuncTimer).Finish", expected: "(*FuncTimer).Finish"},
		{input: "github.com/x/y.TestThing.func1", expected: "TestThing.func1"},
		{input: "bare", expected: "bare"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, shortFuncName(tt.input))
		})
	}
}

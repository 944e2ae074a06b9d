package timer_test

import (
	"testing"

	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	ctx := timer.Context{
		File:     "main.go",
		Line:     "12",
		Function: "main",
		Label:    "foo",
		Result:   "1.5 ms",
	}

	tests := []struct {
		name     string
		template string
		ctx      timer.Context
		expected string
	}{
		{
			name:     "default template",
			template: timer.DefaultTemplate,
			ctx:      ctx,
			expected: "[main.go:12 in main -- foo] -> 1.5 ms",
		},
		{
			name:     "repeated placeholder",
			template: "{label}/{label}",
			ctx:      ctx,
			expected: "foo/foo",
		},
		{
			name:     "unknown placeholder passes through",
			template: "{label} {elapsed} {result}",
			ctx:      ctx,
			expected: "foo {elapsed} 1.5 ms",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			ctx:      ctx,
			expected: "plain text",
		},
		{
			name:     "label containing its own placeholder is not rescanned",
			template: "<{label}>",
			ctx:      timer.Context{Label: "x{label}y"},
			expected: "<x{label}y>",
		},
		{
			name:     "substituted values are not scanned for other placeholders",
			template: "{label} -> {result}",
			ctx:      timer.Context{Label: "{result}", Result: "3 s"},
			expected: "{result} -> 3 s",
		},
		{
			name:     "unterminated brace",
			template: "{label",
			ctx:      ctx,
			expected: "{label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, timer.Render(tt.template, tt.ctx))
		})
	}
}

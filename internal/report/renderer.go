// Package report renders timing results as terminal tables.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Renderer provides table rendering utilities
type Renderer interface {
	RenderToString(headers []string, rows [][]string) (string, error)
	RenderToWriter(w io.Writer, headers []string, rows [][]string) error
}

type renderer struct {
	log logrus.FieldLogger
}

// NewRenderer creates a new table renderer
func NewRenderer(log logrus.FieldLogger) Renderer {
	return &renderer{
		log: log.WithField("component", "report.renderer"),
	}
}

func (r *renderer) RenderToString(headers []string, rows [][]string) (string, error) {
	buf := &bytes.Buffer{}
	if err := r.RenderToWriter(buf, headers, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *renderer) RenderToWriter(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)

	cells := make([]any, 0, len(headers))
	for _, h := range headers {
		cells = append(cells, h)
	}
	table.Header(cells...)

	for i, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("appending row %d: %w", i, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	r.log.WithField("rows", len(rows)).Debug("rendered table")

	return nil
}

// Compile-time interface compliance check
var _ Renderer = (*renderer)(nil)

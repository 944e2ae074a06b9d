package timer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Site identifies the code location a timing was started from.
type Site struct {
	File     string
	Line     int
	Function string
}

// IsZero reports whether no location has been recorded.
func (s Site) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Function == ""
}

// Here captures the location of its caller.
func Here() Site {
	return captureSite(2)
}

// captureSite resolves the frame skip levels up the stack, where 1 is the
// function calling captureSite.
func captureSite(skip int) Site {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+1, pcs) == 0 {
		return Site{File: "unknown", Function: "unknown"}
	}

	frame, _ := runtime.CallersFrames(pcs).Next()

	site := Site{File: filepath.Base(frame.File), Line: frame.Line, Function: "unknown"}
	if frame.Function != "" {
		site.Function = shortFuncName(frame.Function)
	}

	return site
}

// shortFuncName strips the import path and package from a runtime symbol:
// "github.com/x/y/pkg.(*T).Run" becomes "(*T).Run".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}

	return name
}

// Observer is notified about completed timings. Implementations live outside
// this package, for example an exporter feeding a metrics registry.
type Observer interface {
	ObserveMeasurement(label string, m Measurement)
	ObserveStatistics(label string, s Statistics)
}

// Settings configures a timing.
type Settings struct {
	// Label identifies the measurement. Required.
	Label string

	// Template is the output line format. Default: DefaultTemplate.
	Template string

	// Quiet suppresses the output line. Accessors are populated either way.
	Quiet bool

	// Site is the reported code location. Captured from the constructor's
	// caller when zero.
	Site Site

	// Output receives the rendered line. Default: os.Stdout.
	Output io.Writer

	// Unit selects the rendering unit. Default: UnitAuto.
	Unit Unit

	// Clock supplies instants. Default: SystemClock.
	Clock Clock

	// Log receives debug events. Default: logrus.StandardLogger().
	Log logrus.FieldLogger

	// Observer is optional.
	Observer Observer
}

// normalize validates s and fills in defaults. A missing site is captured
// skip frames above normalize, where 1 is its direct caller.
func (s Settings) normalize(skip int) (Settings, error) {
	if s.Label == "" {
		return s, fmt.Errorf("%w: label is required", ErrInvalidSettings)
	}

	if s.Unit < UnitAuto || s.Unit > UnitHours {
		return s, fmt.Errorf("%w: unit %d", ErrInvalidSettings, int(s.Unit))
	}

	if s.Template == "" {
		s.Template = DefaultTemplate
	}

	if s.Site.IsZero() {
		s.Site = captureSite(skip + 1)
	}

	if s.Output == nil {
		s.Output = os.Stdout
	}

	if s.Clock == nil {
		s.Clock = SystemClock{}
	}

	if s.Log == nil {
		s.Log = logrus.StandardLogger()
	}

	return s, nil
}

// emitter is the output path shared by every timer kind.
type emitter struct {
	settings Settings
	log      logrus.FieldLogger
	emitted  bool
}

func newEmitter(s Settings, component string) emitter {
	return emitter{
		settings: s,
		log: s.Log.WithFields(logrus.Fields{
			"component": component,
			"label":     s.Label,
		}),
	}
}

// line renders the output line for elapsed without writing it.
func (e *emitter) line(elapsed time.Duration) string {
	return Render(e.settings.Template, siteContext(e.settings.Site, e.settings.Label, Format(elapsed, e.settings.Unit)))
}

// emit writes the line for elapsed once. Later calls are no-ops.
func (e *emitter) emit(elapsed time.Duration) error {
	if e.emitted {
		return nil
	}

	e.emitted = true

	if e.settings.Quiet {
		return nil
	}

	if _, err := io.WriteString(e.settings.Output, e.line(elapsed)+"\n"); err != nil {
		return fmt.Errorf("writing timing line for %q: %w", e.settings.Label, err)
	}

	return nil
}

// noCopy makes go vet's copylocks check flag timers copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

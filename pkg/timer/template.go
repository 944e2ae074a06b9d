package timer

import (
	"strconv"
	"strings"
)

// DefaultTemplate is the line format used when Settings.Template is empty.
const DefaultTemplate = "[{file}:{line} in {function} -- {label}] -> {result}"

// Placeholders recognized by Render.
const (
	PlaceholderFile     = "{file}"
	PlaceholderLine     = "{line}"
	PlaceholderFunction = "{function}"
	PlaceholderLabel    = "{label}"
	PlaceholderResult   = "{result}"
)

// Context holds the values substituted into a template.
type Context struct {
	File     string
	Line     string
	Function string
	Label    string
	Result   string
}

// Render substitutes the five placeholders in tmpl with values from ctx.
// The template is scanned once, left to right; substituted values are never
// scanned again, so a label containing "{label}" is written verbatim.
// Unrecognized tokens are left untouched.
func Render(tmpl string, ctx Context) string {
	return strings.NewReplacer(
		PlaceholderFile, ctx.File,
		PlaceholderLine, ctx.Line,
		PlaceholderFunction, ctx.Function,
		PlaceholderLabel, ctx.Label,
		PlaceholderResult, ctx.Result,
	).Replace(tmpl)
}

func siteContext(site Site, label, result string) Context {
	return Context{
		File:     site.File,
		Line:     strconv.Itoa(site.Line),
		Function: site.Function,
		Label:    label,
		Result:   result,
	}
}

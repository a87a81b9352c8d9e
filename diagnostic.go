package outline

import (
	"context"
	"fmt"
	"log/slog"
)

// Severity of a diagnostic.
type Severity int

// see Severity
const (
	Info Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "info"
}

// Level maps the severity to a log level.
func (s Severity) Level() slog.Level {
	if s == Warning {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Kind is the class of a recoverable condition.
type Kind int

// see Kind
const (
	DegenerateArc      Kind = iota // zero radius or zero-length chord, drawn as a line
	MalformedNumber                // unparsable numeric token, replaced by 0
	InsufficientPoints             // element has too little geometry and is skipped
	UnknownCommand                 // unrecognized path command or element tag, skipped
)

func (k Kind) String() string {
	switch k {
	case DegenerateArc:
		return "DegenerateArc"
	case MalformedNumber:
		return "MalformedNumber"
	case InsufficientPoints:
		return "InsufficientPoints"
	case UnknownCommand:
		return "UnknownCommand"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ElementID identifies an element by its position in the document, its tag and its id attribute.
type ElementID struct {
	Index int
	Tag   string
	ID    string
}

func (e ElementID) String() string {
	if e.ID != "" {
		return fmt.Sprintf("%s#%s[%d]", e.Tag, e.ID, e.Index)
	}
	return fmt.Sprintf("%s[%d]", e.Tag, e.Index)
}

// Diagnostic is a recoverable condition raised while converting an element. It never interrupts the conversion.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Element  ElementID
	Reason   string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s: %s", d.Severity, d.Element, d.Kind, d.Reason)
}

// diagnostics collects the diagnostics of a single element.
type diagnostics struct {
	elem ElementID
	list []Diagnostic
}

func (ds *diagnostics) add(severity Severity, kind Kind, format string, args ...any) {
	d := Diagnostic{
		Severity: severity,
		Kind:     kind,
		Element:  ds.elem,
		Reason:   fmt.Sprintf(format, args...),
	}
	ds.list = append(ds.list, d)

	logger := Logger()
	if logger.Enabled(context.Background(), severity.Level()) {
		logger.Log(context.Background(), severity.Level(), "outline: "+d.Reason,
			slog.String("kind", kind.String()),
			slog.Int("element", ds.elem.Index),
			slog.String("tag", ds.elem.Tag),
			slog.String("id", ds.elem.ID),
			slog.String("reason", d.Reason),
		)
	}
}

func (ds *diagnostics) warn(kind Kind, format string, args ...any) {
	ds.add(Warning, kind, format, args...)
}

func (ds *diagnostics) info(kind Kind, format string, args ...any) {
	ds.add(Info, kind, format, args...)
}

package opensshkey

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
)

// WarningKind tags a non-fatal diagnostic raised while decoding or
// constructing a parameter object. Warnings never abort the operation
// that raised them.
type WarningKind int

const (
	// WarnExcessBytes is raised when bytes remain after a successful decode.
	WarnExcessBytes WarningKind = iota
	// WarnSoftValidationFailed is raised by a per-variant soft check, or by
	// schema structural validation of a constructed parameter object.
	WarnSoftValidationFailed
)

func (k WarningKind) String() string {
	switch k {
	case WarnExcessBytes:
		return "ExcessBytes"
	case WarnSoftValidationFailed:
		return "SoftValidationFailed"
	default:
		return "Unknown"
	}
}

// Warning is one diagnostic emitted by a codec or envelope operation.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}

// Sink receives warnings. It is handed to operations as a collaborator
// rather than kept as process-global state, so concurrent callers can use
// independent sinks without synchronization.
type Sink interface {
	Warn(w Warning)
}

func warnf(sink Sink, kind WarningKind, format string, args ...interface{}) {
	if sink == nil {
		return
	}
	sink.Warn(Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(Warning)

// Warn implements Sink.
func (f SinkFunc) Warn(w Warning) { f(w) }

type discardSink struct{}

func (discardSink) Warn(Warning) {}

// DiscardSink drops every warning. Useful when a caller has already
// validated its inputs and doesn't want the diagnostic channel.
var DiscardSink Sink = discardSink{}

// CollectSink accumulates warnings in order, for tests and callers that
// want to inspect diagnostics after the fact rather than as they occur.
type CollectSink struct {
	Warnings []Warning
}

// Warn implements Sink.
func (c *CollectSink) Warn(w Warning) {
	c.Warnings = append(c.Warnings, w)
}

var log = logging.MustGetLogger("opensshkey")

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.6s} ▶ %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

type loggingSink struct{}

// Warn implements Sink by logging through github.com/op/go-logging.
func (loggingSink) Warn(w Warning) {
	log.Warningf("%s: %s", w.Kind, w.Message)
}

// DefaultSink logs warnings through github.com/op/go-logging at WARNING
// level. Callers that want warnings collected instead should pass a
// *CollectSink to the decode/construction call explicitly.
var DefaultSink Sink = loggingSink{}

// Package oteljalali provides OpenTelemetry attributes for
// instrumenting registry calls.
package oteljalali

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/go-faster/jalali/internal/version"
)

// Attribute keys for registry call spans.
const (
	CallIDKey    = attribute.Key("jalali.call.id")
	FunctionKey  = attribute.Key("jalali.function")
	ErrorCodeKey = attribute.Key("jalali.error.code")
	CalendarKey  = attribute.Key("jalali.calendar")
)

// CallID attribute.
func CallID(id string) attribute.KeyValue {
	return CallIDKey.String(id)
}

// Function attribute.
func Function(name string) attribute.KeyValue {
	return FunctionKey.String(name)
}

// ErrorCode attribute.
func ErrorCode(code string) attribute.KeyValue {
	return ErrorCodeKey.String(code)
}

// Calendar attribute.
func Calendar(name string) attribute.KeyValue {
	return CalendarKey.String(name)
}

// Version of the instrumented module.
func Version() string {
	return version.Get().Raw
}

// Package jalali exposes the Solar Hijri date engine to a hosting
// runtime as a registry of named functions and comparison operators.
//
// The registry mirrors the catalog a database extension would install:
// text input and output, calendar conversion, date arithmetic and
// period classification, all total over the supported day number range.
package jalali

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-faster/errors"
)

// Options for New.
type Options struct {
	Logger *zap.Logger      // defaults to Nop
	Now    func() time.Time // defaults to time.Now
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Registry dispatches calls to the cataloged functions.
type Registry struct {
	lg    *zap.Logger
	now   func() time.Time
	funcs map[string]Func
	ops   map[string]Operator

	calls  atomic.Int64
	failed atomic.Int64
}

// New initializes Registry with the full function and operator catalog.
func New(opt Options) (*Registry, error) {
	opt.setDefaults()
	r := &Registry{
		lg:    opt.Logger,
		now:   opt.Now,
		funcs: map[string]Func{},
		ops:   map[string]Operator{},
	}

	var errs error
	for _, f := range catalog(opt.Now) {
		if err := r.register(f); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, op := range operators() {
		if _, ok := r.ops[op.Symbol]; ok {
			errs = multierr.Append(errs, errors.Errorf("operator %q: duplicate", op.Symbol))
			continue
		}
		r.ops[op.Symbol] = op
	}
	if errs != nil {
		return nil, errors.Wrap(errs, "catalog")
	}

	return r, nil
}

func (r *Registry) register(f Func) error {
	if f.Name == "" {
		return errors.New("function name is blank")
	}
	if f.Impl == nil {
		return errors.Errorf("function %q: nil implementation", f.Name)
	}
	if _, ok := r.funcs[f.Name]; ok {
		return errors.Errorf("function %q: duplicate", f.Name)
	}
	r.funcs[f.Name] = f
	return nil
}

// Funcs returns the names of all registered functions in arbitrary order.
func (r *Registry) Funcs() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	return names
}

// Call is a single invocation of a registered function.
type Call struct {
	Func   string  // registered function name
	CallID string  // optional, auto-generated when blank
	Args   []Value // positional arguments
}

// Result of a Call.
type Result struct {
	CallID string
	Span   trace.SpanContext
	Value  Value
}

// Do dispatches call and returns its result.
//
// Domain failures are reported as *Exception; use AsException to
// retrieve the error code.
func (r *Registry) Do(ctx context.Context, call Call) (Result, error) {
	r.calls.Inc()
	if call.CallID == "" {
		call.CallID = uuid.New().String()
	}
	res := Result{
		CallID: call.CallID,
		Span:   trace.SpanContextFromContext(ctx),
	}

	f, ok := r.funcs[call.Func]
	if !ok {
		r.failed.Inc()
		return res, &Exception{
			Code:    ErrUnknownFunction,
			Name:    call.Func,
			Message: "function is not registered",
		}
	}
	if err := f.check(call.Args); err != nil {
		r.failed.Inc()
		return res, err
	}
	if ce := r.lg.Check(zap.DebugLevel, "Call"); ce != nil {
		ce.Write(
			zap.String("call_id", call.CallID),
			zap.String("function", call.Func),
			zap.Int("args", len(call.Args)),
		)
	}

	v, err := f.Impl(ctx, call.Args)
	if err != nil {
		r.failed.Inc()
		return res, toException(call.Func, err)
	}

	res.Value = v
	return res, nil
}

// Stats are cumulative dispatch counters.
type Stats struct {
	Calls  int64
	Failed int64
}

// Stats returns current dispatch counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Calls:  r.calls.Load(),
		Failed: r.failed.Load(),
	}
}

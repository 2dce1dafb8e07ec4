package dispatch

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/strand/internal/runtime/mutate"
	"github.com/dshills/strand/internal/runtime/random"
	"github.com/dshills/strand/internal/runtime/series"
	"github.com/dshills/strand/internal/runtime/value"
)

// PortActor handles the port verbs (open, read, write, ...) for file- and
// url-kinded values. The dispatcher delegates to it instead of interpreting
// those verbs itself.
type PortActor interface {
	Act(req *Request) (value.Value, error)
}

// Dispatcher routes verbs to the runtime engines. It holds no per-call state;
// every Dispatch builds its result from the request alone.
type Dispatcher struct {
	log     *zap.Logger
	rng     *random.Source
	ports   PortActor
	metrics *Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the structured logger. The default discards all output.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// WithRandom sets the random source used by the random verb. The default is
// a deterministic source seeded with zero.
func WithRandom(rng *random.Source) Option {
	return func(d *Dispatcher) {
		d.rng = rng
	}
}

// WithPortActor sets the delegate for port verbs on file and url values.
// Without one, port verbs fail as illegal actions.
func WithPortActor(p PortActor) Option {
	return func(d *Dispatcher) {
		d.ports = p
	}
}

// New creates a Dispatcher with the given options applied.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		log:     zap.NewNop(),
		rng:     random.New(0),
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Metrics returns the dispatcher's metrics collector.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch executes one verb request and returns its result value.
func (d *Dispatcher) Dispatch(req *Request) (value.Value, error) {
	start := time.Now()
	out, err := d.dispatch(req)
	d.metrics.Record(req.Verb, time.Since(start), err)

	if err != nil {
		d.log.Debug("dispatch failed",
			zap.Stringer("verb", req.Verb),
			zap.Error(err),
		)
		return out, err
	}
	d.log.Debug("dispatch",
		zap.Stringer("verb", req.Verb),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

func (d *Dispatcher) dispatch(req *Request) (value.Value, error) {
	if req.Verb == VerbNone {
		return nil, argErr("no verb given")
	}

	// make and to construct fresh values and do not need a series target.
	if req.Verb == VerbMake || req.Verb == VerbTo {
		return d.construct(req)
	}

	v, ok := req.Value.(value.View)
	if !ok || !v.Tag.IsSeries() {
		return nil, typeErr("%s requires a series value, got %s", req.Verb, kindOfValue(req.Value))
	}
	v = v.Normalize()

	if req.Verb > PortActions {
		if v.Tag != value.KindFile && v.Tag != value.KindURL {
			return nil, illegalErr(req.Verb, v.Tag)
		}
		if d.ports == nil {
			return nil, illegalErr(req.Verb, v.Tag)
		}
		return d.ports.Act(req)
	}

	if req.Verb.isMutating() && v.Series.Protected() {
		return nil, lockedErr()
	}

	if out, handled, err := seriesAction(req, v); handled {
		return out, err
	}
	return d.stringAction(req, v)
}

// wrapEngine maps engine sentinel errors into the dispatch taxonomy so
// callers see one classification regardless of which engine failed.
func wrapEngine(err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	kind := KindInvalidArgument
	switch {
	case errors.Is(err, mutate.ErrProtected):
		kind = KindLockedSeries
	case errors.Is(err, mutate.ErrBinaryWiden):
		kind = KindTypeMismatch
	case errors.Is(err, mutate.ErrBadSource):
		kind = KindTypeMismatch
	case errors.Is(err, series.ErrCodepointRange):
		kind = KindRange
	case errors.Is(err, series.ErrIndexRange):
		kind = KindRange
	}
	return &Error{Kind: kind, Err: err}
}

func kindOfValue(v value.Value) value.Kind {
	if v == nil {
		return value.KindNone
	}
	return v.Kind()
}

package timez

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/multierr"

	"github.com/adobaai/drills/strz"
)

var (
	// ErrNotFound is returned when no month name matches the input.
	ErrNotFound = errors.New("no matching month")
	// ErrAmbiguous is matched by [AmbiguousError].
	ErrAmbiguous = errors.New("ambiguous month")
	// ErrNullInput is returned when the month text is absent.
	ErrNullInput = errors.New("missing month")
)

const meterName = "github.com/adobaai/drills/timez"

// AmbiguousError is returned when the input is a prefix of several months.
type AmbiguousError struct {
	Text    string
	Matches []Month // In calendar order, at least two
}

func (e *AmbiguousError) Error() string {
	s := fmt.Sprintf("%q is ambiguous: both %s and %s would be valid matches",
		e.Text, e.Matches[0], e.Matches[1])
	if n := len(e.Matches) - 2; n > 0 {
		s += fmt.Sprintf(" (and %d more)", n)
	}
	return s
}

func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}

// Comparator compares two month names.
// It fails if either name cannot be resolved.
type Comparator func(a, b string) (int, error)

var (
	// ByOrder compares months by their order in the year.
	ByOrder Comparator = CompareByOrder
	// ByDays compares months by their number of days.
	ByDays Comparator = CompareByDays
)

var defaultResolver = NewResolver()

// Resolve resolves text with the default [Resolver].
func Resolve(text string) (Month, error) {
	return defaultResolver.Resolve(text)
}

// ResolvePtr is like [Resolve], but reports a nil text as [ErrNullInput].
func ResolvePtr(text *string) (Month, error) {
	return defaultResolver.ResolvePtr(text)
}

// CompareByOrder compares a and b by calendar order with the default [Resolver].
func CompareByOrder(a, b string) (int, error) {
	return defaultResolver.CompareByOrder(a, b)
}

// CompareByDays compares a and b by number of days with the default [Resolver].
func CompareByDays(a, b string) (int, error) {
	return defaultResolver.CompareByDays(a, b)
}

// ErrNilComparator is returned by [Sort] when no comparator is given.
var ErrNilComparator = errors.New("nil comparator")

// Sort sorts month names in place, stably, with the given comparator.
// All the names are resolved first. On failure, including the first error
// returned by the comparator, names is left untouched.
func Sort(names []string, by Comparator) error {
	if by == nil {
		return ErrNilComparator
	}
	for _, name := range names {
		if _, err := Resolve(name); err != nil {
			return err
		}
	}

	sorted := slices.Clone(names)
	var cmpErr error
	slices.SortStableFunc(sorted, func(a, b string) int {
		if cmpErr != nil {
			return 0
		}
		n, err := by(a, b)
		if err != nil {
			cmpErr = err
			return 0
		}
		return n
	})
	if cmpErr != nil {
		return cmpErr
	}
	copy(names, sorted)
	return nil
}

type newOption struct {
	logger *slog.Logger
	mp     metric.MeterProvider
}

type Option func(o *newOption)

// WithLogger sets the logger used to report failed resolutions.
func WithLogger(log *slog.Logger) Option {
	return func(o *newOption) {
		o.logger = log
	}
}

// WithMeterProvider sets the provider of the resolution counter.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *newOption) {
		o.mp = mp
	}
}

// Resolver resolves free-form text into a [Month].
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	logger  *slog.Logger
	counter metric.Int64Counter
}

// NewResolver returns a new resolver.
// By default it logs with [slog.Default] and counts with the global meter provider.
func NewResolver(opts ...Option) *Resolver {
	no := newOption{
		logger: slog.Default(),
		mp:     otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&no)
	}

	logger := no.logger.With("component", "timez")
	counter, err := no.mp.Meter(meterName).Int64Counter(
		"timez.month.resolutions",
		metric.WithDescription("Number of month name resolutions, by outcome."),
	)
	if err != nil {
		logger.Warn("create resolution counter", "err", err)
		counter = noop.Int64Counter{}
	}
	return &Resolver{
		logger:  logger,
		counter: counter,
	}
}

// Resolve maps text to a month.
//
// An exact name is tried first, then a prefix of exactly one name.
// Both are case-insensitive. It returns [ErrNotFound] if no name matches
// and an [*AmbiguousError] if several do. The empty string is a prefix of
// every name, so it is ambiguous.
func (r *Resolver) Resolve(text string) (res Month, err error) {
	res, err = resolve(text)
	r.record(text, err)
	return
}

// ResolvePtr is like [Resolver.Resolve], but reports a nil text as [ErrNullInput].
func (r *Resolver) ResolvePtr(text *string) (Month, error) {
	if text == nil {
		r.record("", ErrNullInput)
		return 0, ErrNullInput
	}
	return r.Resolve(*text)
}

// CompareByOrder returns -1, 0 or +1 as a comes before, with or after b in the year.
func (r *Resolver) CompareByOrder(a, b string) (int, error) {
	ma, mb, err := r.resolvePair(a, b)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(ma, mb), nil
}

// CompareByDays returns -1, 0 or +1 as a has fewer, as many or more days than b.
func (r *Resolver) CompareByDays(a, b string) (int, error) {
	ma, mb, err := r.resolvePair(a, b)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(ma.Days(), mb.Days()), nil
}

// resolvePair resolves both names, combining their errors if any.
func (r *Resolver) resolvePair(a, b string) (ma, mb Month, err error) {
	ma, errA := r.Resolve(a)
	mb, errB := r.Resolve(b)
	err = multierr.Append(errA, errB)
	return
}

func (r *Resolver) record(text string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNullInput):
		outcome = "null"
	case errors.Is(err, ErrAmbiguous):
		outcome = "ambiguous"
	default:
		outcome = "not_found"
	}

	ctx := context.Background()
	r.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	if err != nil {
		r.logger.DebugContext(ctx, "month not resolved", "text", text, "err", err)
	}
}

func resolve(text string) (Month, error) {
	for m := January; m <= December; m++ {
		if strz.EqualFold(m.String(), text) {
			return m, nil
		}
	}

	matches := lo.Filter(Months(), func(m Month, _ int) bool {
		return strz.HasPrefixFold(m.String(), text)
	})
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("%w for %q", ErrNotFound, text)
	case 1:
		return matches[0], nil
	default:
		return 0, &AmbiguousError{Text: text, Matches: matches}
	}
}

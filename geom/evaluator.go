package geom

import (
	"github.com/geomkit/libgeom/geomerr"
)

// CfgFindSpan is the configuration key the injected span-finding function is
// stored under.
const CfgFindSpan = "func_find_span"

// FindSpanFunc locates the knot-vector span containing the parametric
// position u. Injected at evaluator construction so the search strategy
// (linear scan, binary search) can be swapped without touching the
// evaluation algorithm.
type FindSpanFunc func(degree int, knots []float64, ctrlLen int, u float64) int

type Point []float64

type EvalOpts struct {
	Start float64
	Stop  float64

	Extra *Dict
}

type EvalOption func(eo *EvalOpts)

func WithRange(start, stop float64) EvalOption {
	return func(eo *EvalOpts) {
		eo.Start = start
		eo.Stop = stop
	}
}

func WithEvalConfig(key string, value any) EvalOption {
	return func(eo *EvalOpts) {
		eo.Extra.Set(key, value)
	}
}

func NewEvalOpts(opts ...EvalOption) *EvalOpts {
	eo := &EvalOpts{
		Start: 0,
		Stop:  1,
		Extra: NewDict(),
	}

	for _, opt := range opts {
		opt(eo)
	}

	return eo
}

// Evaluator is the contract every concrete evaluation algorithm satisfies.
// Implementations must not mutate the input data and must keep no state
// between calls beyond their construction-time configuration, so a single
// instance is reusable across many geometries and safe to share read-only.
type Evaluator interface {
	// Evaluate computes points over the data set.
	Evaluate(data *GeomData, opts ...EvalOption) ([]Point, error)

	// Derivatives computes the 0th through order-th derivatives at the
	// parametric position. Order 0 is equivalent to point evaluation.
	Derivatives(data *GeomData, parpos Point, order int, opts ...EvalOption) ([][]Point, error)
}

// EvalBase is the embeddable half of the evaluator contract: identity plus
// the injected span-finding strategy, kept in the configuration store.
type EvalBase struct {
	Object
}

func NewEvalBase(owner any, opts ...Option) EvalBase {
	return EvalBase{
		Object: newObject("Evaluator", owner, opts...),
	}
}

// WithFindSpan injects the span-finding strategy at construction.
func WithFindSpan(fn FindSpanFunc) Option {
	return WithConfig(CfgFindSpan, fn)
}

func (e *EvalBase) SetFindSpan(fn FindSpanFunc) {
	e.Cfg().Set(CfgFindSpan, fn)
}

// FindSpan returns the injected span-finding function. When none was
// configured the concrete evaluator must either fall back to its own
// default (see FindSpanOr) or surface the config error to the caller.
func (e *EvalBase) FindSpan() (FindSpanFunc, error) {
	v, ok := e.Cfg().Get(CfgFindSpan)
	if !ok || v == nil {
		return nil, geomerr.NewConfigError("no span-finding function configured", nil)
	}

	fn, ok := v.(FindSpanFunc)
	if !ok {
		return nil, geomerr.NewConfigError("configured span-finding entry is not a FindSpanFunc", v)
	}

	return fn, nil
}

// FindSpanOr returns the injected span-finding function, or def when none
// is configured.
func (e *EvalBase) FindSpanOr(def FindSpanFunc) FindSpanFunc {
	fn, err := e.FindSpan()
	if err != nil {
		return def
	}

	return fn
}

// ValidateDerivOrder rejects negative derivative orders.
func ValidateDerivOrder(order int) error {
	if order < 0 {
		return geomerr.NewStructureError("derivative order must be a non-negative integer", order)
	}

	return nil
}

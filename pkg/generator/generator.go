package generator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/schemax/exemplar/internal/replacer"
	"github.com/schemax/exemplar/pkg/schema"
)

// Generator produces random, schema-conformant example values.
// A single Generator is safe for concurrent use: its random source is
// serialized across Generate calls.
type Generator struct {
	mu            sync.Mutex
	rng           *rand.Rand
	valueReplacer replacer.ValueReplacer
}

type options struct {
	rng       *rand.Rand
	seed      int64
	hasSeed   bool
	nameHints bool
	useFaker  bool
}

// Option configures a Generator.
type Option func(*options)

// WithSeed makes the generator deterministic: two generators created with
// the same seed produce identical output for the same schema.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithRand supplies the random source directly. Takes precedence over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithNameHints enables property-name keyed fake values for string leaves,
// e.g. a property called "email" gets an email address.
func WithNameHints() Option {
	return func(o *options) {
		o.nameHints = true
	}
}

// WithFaker replaces the fixed literal pools with faker-generated leaf values.
func WithFaker() Option {
	return func(o *options) {
		o.useFaker = true
	}
}

// New creates a Generator. Without options it draws leaf values from the
// fixed literal pools using a time-seeded random source.
func New(opts ...Option) *Generator {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	rng := o.rng
	if rng == nil {
		seed := o.seed
		if !o.hasSeed {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	var chain []replacer.Replacer
	if o.nameHints {
		chain = append(chain, replacer.ReplaceFromNameHints)
	}
	if o.useFaker {
		chain = append(chain, replacer.ReplaceFromFaker)
	}
	// the pool source stays last: it always produces a value for leaf types
	chain = append(chain, replacer.ReplaceFromPool)

	return &Generator{
		rng:           rng,
		valueReplacer: replacer.CreateValueReplacer(rng, chain),
	}
}

// Generate produces an example value conforming to the given schema.
// It fails fast with ErrInvalidSchema when the schema is absent or empty,
// before any generation begins.
func (g *Generator) Generate(s *schema.Schema) (*Example, error) {
	if s.IsEmpty() {
		return nil, ErrInvalidSchema
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	value, err := g.generateFromSchema(s, s.Definitions, replacer.NewReplaceState())
	if err != nil {
		return nil, err
	}

	typ := s.Type
	if !typ.Known() {
		typ = schema.TypeUnknown
	}

	return &Example{Type: typ, Value: value}, nil
}

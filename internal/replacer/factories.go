package replacer

import (
	"math/rand"
	"reflect"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jaswdr/faker/v2"

	"github.com/schemax/exemplar/internal/types"
	"github.com/schemax/exemplar/pkg/schema"
)

// ValueReplacer produces a leaf value for the given schema node, or nil when
// it has nothing to offer. It encapsulates all the sources, randomness and
// constraint handling of leaf generation.
type ValueReplacer func(s *schema.Schema, state *ReplaceState) any

// Replacer is a single value source. Sources are predefined and run in order;
// the first non-nil, type-correct result wins.
type Replacer func(ctx *ReplaceContext) any

// ReplaceContext carries everything a source may draw from:
// the schema node being generated, the position state, the run's random
// source and the seeded fakers.
type ReplaceContext struct {
	schema *schema.Schema
	state  *ReplaceState
	rng    *rand.Rand
	faker  faker.Faker
	fake   *gofakeit.Faker
}

// CreateValueReplacer builds a ValueReplacer from an ordered source chain.
// Fakers are seeded from the run's random source so seeded runs reproduce.
func CreateValueReplacer(rng *rand.Rand, replacers []Replacer) ValueReplacer {
	fkr := faker.NewWithSeed(rand.NewSource(rng.Int63()))
	fake := gofakeit.New(rng.Int63())

	return func(s *schema.Schema, state *ReplaceState) any {
		if state == nil {
			state = NewReplaceState()
		}

		ctx := &ReplaceContext{
			schema: s,
			state:  state,
			rng:    rng,
			faker:  fkr,
			fake:   fake,
		}

		for _, fn := range replacers {
			res := fn(ctx)
			if res == nil {
				continue
			}
			if !IsCorrectlyReplacedType(res, s.Type) {
				continue
			}
			return applyNumberConstraints(rng, s, res)
		}

		return nil
	}
}

// IsCorrectlyReplacedType checks if the given value is of the correct schema type.
func IsCorrectlyReplacedType(value any, neededType schema.DataType) bool {
	switch neededType {
	case schema.TypeString:
		_, ok := value.(string)
		return ok
	case schema.TypeInteger:
		return types.IsInteger(value)
	case schema.TypeNumber:
		return types.IsNumber(value)
	case schema.TypeBoolean:
		_, ok := value.(bool)
		return ok
	case schema.TypeObject:
		return reflect.TypeOf(value).Kind() == reflect.Map
	case schema.TypeArray:
		kind := reflect.ValueOf(value).Kind()
		return kind == reflect.Slice || kind == reflect.Array
	default:
		return false
	}
}

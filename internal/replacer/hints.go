package replacer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/schemax/exemplar/pkg/schema"
)

// ReplaceFromNameHints picks a fake value keyed off the property name,
// so a field called "email" gets an email instead of a pool word.
// Only string leaves are hinted; everything else falls through to the
// next source.
func ReplaceFromNameHints(ctx *ReplaceContext) any {
	if ctx.schema.Type != schema.TypeString {
		return nil
	}

	namePath := ctx.state.NamePath
	if len(namePath) == 0 {
		return nil
	}
	name := strings.ToLower(namePath[len(namePath)-1])

	switch name {
	case "id", "uuid", "guid":
		// drawn from the run's random source to keep seeded runs reproducible
		u, err := uuid.NewRandomFromReader(ctx.rng)
		if err != nil {
			return nil
		}
		return u.String()
	case "name":
		return ctx.fake.Name()
	case "first", "firstname", "first_name":
		return ctx.fake.FirstName()
	case "last", "lastname", "last_name":
		return ctx.fake.LastName()
	case "email":
		return ctx.fake.Email()
	case "url":
		return ctx.fake.URL()
	case "phone":
		return ctx.fake.Phone()
	case "tag":
		return ctx.fake.Gamertag()
	default:
		return nil
	}
}

// ReplaceFromFaker generates a type-keyed fake value instead of drawing from
// the fixed pools.
func ReplaceFromFaker(ctx *ReplaceContext) any {
	switch ctx.schema.Type {
	case schema.TypeString:
		return ctx.faker.Lorem().Word()
	case schema.TypeInteger:
		return ctx.faker.Int()
	case schema.TypeNumber:
		return ctx.faker.Float64(2, 0, 1000000)
	case schema.TypeBoolean:
		return ctx.faker.Bool()
	default:
		return nil
	}
}

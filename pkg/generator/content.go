package generator

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/schemax/exemplar/internal/replacer"
	"github.com/schemax/exemplar/pkg/schema"
)

// arrayLengthChoices are the possible item counts for generated arrays.
// Lengths are intentionally small; zero is a legitimate outcome.
var arrayLengthChoices = []int{0, 1, 2, 3}

// generateFromSchema dispatches on the node's type tag.
// Leaf types draw a value from the source chain, composite types recurse,
// and anything else produces the default empty-object value.
func (g *Generator) generateFromSchema(s *schema.Schema, defs schema.Definitions, state *replacer.ReplaceState) (any, error) {
	if s == nil {
		return map[string]any{}, nil
	}

	switch s.Type {
	case schema.TypeString, schema.TypeInteger, schema.TypeNumber, schema.TypeBoolean:
		return g.valueReplacer(s, state), nil
	case schema.TypeArray:
		return g.generateArray(s, defs, state)
	case schema.TypeObject:
		return g.generateObject(s.Properties, defs, state)
	default:
		slog.Debug("unknown schema type, generating default empty object",
			"type", s.Type, "namePath", state.NamePath)
		return map[string]any{}, nil
	}
}

// generateArray builds an ordered sequence of items conforming to the
// element schema. When items carries a $ref, the resolved definition
// replaces the inline items schema wholesale.
func (g *Generator) generateArray(s *schema.Schema, defs schema.Definitions, state *replacer.ReplaceState) (any, error) {
	items := s.Items
	if items == nil {
		return nil, fmt.Errorf("array schema missing items: %w", ErrInvalidSchema)
	}

	if items.Ref != "" {
		resolved, err := g.resolveRef(items.Ref, defs, state)
		if err != nil {
			return nil, err
		}
		items = resolved
	}

	count := arrayLengthChoices[g.rng.Intn(len(arrayLengthChoices))]
	res := make([]any, 0, count)

	for i := 1; i <= count; i++ {
		childState := state.NewFrom(state).WithOptions(replacer.WithElementIndex(i))
		item, err := g.generateFromSchema(items, defs, childState)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}

	return res, nil
}

// generateObject builds a mapping with exactly one entry per declared
// property. Property names are visited in sorted order so that seeded runs
// stay reproducible.
func (g *Generator) generateObject(properties map[string]*schema.Schema, defs schema.Definitions, state *replacer.ReplaceState) (any, error) {
	res := make(map[string]any, len(properties))

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop := properties[name]
		childState := state.NewFrom(state).WithOptions(replacer.WithName(name))

		node := prop
		if prop != nil && prop.Ref != "" {
			resolved, err := g.resolveRef(prop.Ref, defs, childState)
			if err != nil {
				return nil, err
			}
			node = overlayRef(prop, resolved)
		}

		value, err := g.generateFromSchema(node, defs, childState)
		if err != nil {
			return nil, err
		}
		res[name] = value
	}

	return res, nil
}

// resolveRef resolves a reference against the definitions table and pushes
// its name onto the state's ref stack. A name already on the stack means the
// definitions form a cycle; an absent name fails the run at the point the
// target is needed.
func (g *Generator) resolveRef(ref string, defs schema.Definitions, state *replacer.ReplaceState) (*schema.Schema, error) {
	name := schema.RefName(ref)

	if state.InRef(name) {
		slog.Debug("reference cycle detected", "ref", ref, "namePath", state.NamePath)
		return nil, fmt.Errorf("resolving %q at %q: %w", ref, strings.Join(state.NamePath, "."), ErrCyclicRef)
	}

	resolved := schema.ResolveRef(ref, defs)
	if resolved == nil {
		return nil, fmt.Errorf("resolving %q at %q: %w", ref, strings.Join(state.NamePath, "."), ErrUnresolvedRef)
	}

	state.WithOptions(replacer.WithRef(name))
	return resolved, nil
}

// overlayRef combines a property schema with its resolved reference target.
// The target's type always wins; its properties and items are used when
// declared, falling back to any inline declarations on the property itself.
func overlayRef(local, resolved *schema.Schema) *schema.Schema {
	out := *resolved
	if len(out.Properties) == 0 {
		out.Properties = local.Properties
	}
	if out.Items == nil {
		out.Items = local.Items
	}
	return &out
}

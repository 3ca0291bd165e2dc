package schema

import "strings"

// RefName returns the definition name a reference points at:
// the last path segment, so "#/definitions/Point" becomes "Point".
func RefName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// ResolveRef looks up a reference against the definitions table.
// Missing names resolve to nil rather than an error: the caller decides
// whether an absent target is fatal.
func ResolveRef(ref string, defs Definitions) *Schema {
	if ref == "" || len(defs) == 0 {
		return nil
	}
	return defs[RefName(ref)]
}

package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schemax/exemplar/pkg/schema"
)

func createSchemaFromString(t *testing.T, value string) *schema.Schema {
	t.Helper()

	target, err := schema.FromYAML([]byte(value))
	require.NoError(t, err, "error parsing schema")

	return target
}

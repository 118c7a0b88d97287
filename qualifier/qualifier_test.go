package qualifier_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microbean/microbean-assign/attributes"
	"github.com/microbean/microbean-assign/qualifier"
)

func TestBuiltins(t *testing.T) {
	for _, q := range []*attributes.Attributes{qualifier.Any(), qualifier.Default(), qualifier.Primordial()} {
		assert.True(t, qualifier.IsQualifier(q), q.String())
		assert.True(t, attributes.Contains(q.Metadata(), qualifier.Qualifier()), q.String())
	}
	assert.False(t, qualifier.IsQualifier(qualifier.Qualifier()), "the marker is not itself a qualifier")
	assert.Same(t, qualifier.Any(), qualifier.Any())
}

func TestIsQualifier(t *testing.T) {
	named := qualifier.New("Named", map[string]any{"value": "primary"})
	stereotype := attributes.Of("Stereotype", qualifier.Qualifier())
	inherited := attributes.Of("Fast", stereotype)

	tests := []struct {
		name string
		a    *attributes.Attributes
		want bool
	}{
		{"nil", nil, false},
		{"plain", attributes.Of("Deprecated"), false},
		{"constructed", named, true},
		{"marked", stereotype, true},
		{"meta-marked", inherited, true},
		{"marker with metadata", attributes.Of("X", attributes.Of("Qualifier", attributes.Of("Other"))), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qualifier.IsQualifier(tt.a))
		})
	}
}

func TestIsAnyDefaultPrimordial(t *testing.T) {
	equalAny := attributes.Of("Any", attributes.Of("Qualifier"))

	assert.True(t, qualifier.IsAny(equalAny))
	assert.False(t, qualifier.IsAny(attributes.Of("Any")), "Any without the marker is not Any")
	assert.False(t, qualifier.IsAny(qualifier.Default()))
	assert.True(t, qualifier.IsDefault(attributes.Of("Default", attributes.Of("Qualifier"))))
	assert.True(t, qualifier.IsPrimordial(qualifier.Primordial()))
	assert.False(t, qualifier.IsPrimordial(nil))
}

func TestNormalize(t *testing.T) {
	equalDefault := attributes.Of("Default", attributes.Of("Qualifier"))
	named := qualifier.New("Named", map[string]any{"value": "primary"})

	assert.Same(t, qualifier.Default(), qualifier.Normalize(equalDefault))
	assert.Same(t, qualifier.Qualifier(), qualifier.Normalize(attributes.Of("Qualifier")))
	assert.Same(t, qualifier.Primordial(), qualifier.Normalize(attributes.Of("Primordial", attributes.Of("Qualifier"))))
	assert.Same(t, named, qualifier.Normalize(named))
	assert.Nil(t, qualifier.Normalize(nil))

	for _, a := range []*attributes.Attributes{equalDefault, named, qualifier.Any()} {
		once := qualifier.Normalize(a)
		assert.Same(t, once, qualifier.Normalize(once), "idempotent for %s", a)
	}
}

func TestNormalizeList(t *testing.T) {
	equalAny := attributes.Of("Any", attributes.Of("Qualifier"))
	equalDefault := attributes.Of("Default", attributes.Of("Qualifier"))
	named := qualifier.New("Named", map[string]any{"value": "primary"})

	assert.Same(t, &qualifier.AnyQualifiers()[0], &qualifier.NormalizeList([]*attributes.Attributes{equalAny})[0])
	assert.Same(t, &qualifier.DefaultQualifiers()[0], &qualifier.NormalizeList([]*attributes.Attributes{equalDefault})[0])
	assert.Same(t, &qualifier.AnyAndDefaultQualifiers()[0], &qualifier.NormalizeList([]*attributes.Attributes{equalAny, equalDefault})[0])
	assert.Same(t, &qualifier.PrimordialQualifiers()[0], &qualifier.NormalizeList([]*attributes.Attributes{qualifier.Primordial()})[0])
	assert.Nil(t, qualifier.NormalizeList(nil))

	in := []*attributes.Attributes{named, equalDefault}
	out := qualifier.NormalizeList(in)
	require.Len(t, out, 2)
	assert.Same(t, named, out[0])
	assert.Same(t, qualifier.Default(), out[1])

	in[0] = nil
	assert.NotNil(t, out[0], "result does not alias the input")
}

func TestQualifiers(t *testing.T) {
	named := qualifier.New("Named", map[string]any{"value": "primary"})
	plain := attributes.Of("Deprecated")

	// a collection already shaped like [Any, Default] yields the shared list
	got := qualifier.Qualifiers([]*attributes.Attributes{qualifier.Any(), qualifier.Default()})
	require.Len(t, got, 2)
	assert.Same(t, &qualifier.AnyAndDefaultQualifiers()[0], &got[0])

	got = qualifier.Qualifiers([]*attributes.Attributes{plain, attributes.Of("Default", attributes.Of("Qualifier"))})
	require.Len(t, got, 1)
	assert.Same(t, &qualifier.DefaultQualifiers()[0], &got[0], "shape recognized after filtering")

	got = qualifier.Qualifiers([]*attributes.Attributes{plain, named, qualifier.Any()})
	assert.Equal(t, []*attributes.Attributes{named, qualifier.Any()}, got)

	assert.Nil(t, qualifier.Qualifiers([]*attributes.Attributes{plain}))
	assert.Nil(t, qualifier.Qualifiers(nil))
}

func TestSharedListsDoNotAlias(t *testing.T) {
	shared := qualifier.AnyQualifiers()
	assert.Equal(t, len(shared), cap(shared))

	grown := append(shared, qualifier.Default())
	assert.NotSame(t, &shared[0], &grown[0])
	assert.Len(t, qualifier.AnyQualifiers(), 1)
}

func ExampleQualifiers() {
	named := qualifier.New("Named", map[string]any{"value": "primary"})
	fmt.Println(qualifier.Qualifiers([]*attributes.Attributes{
		attributes.Of("Deprecated"),
		named,
		qualifier.Default(),
	}))
	// Output: [@Named(value=primary) @Default]
}

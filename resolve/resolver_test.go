package resolve_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microbean/microbean-assign/assign"
	"github.com/microbean/microbean-assign/attributes"
	"github.com/microbean/microbean-assign/domain"
	"github.com/microbean/microbean-assign/internal/nominal"
	"github.com/microbean/microbean-assign/qualifier"
	"github.com/microbean/microbean-assign/resolve"
)

func attributed(t *testing.T, typ domain.Type, attrs ...*attributes.Attributes) assign.AttributedType {
	t.Helper()
	at, err := assign.NewAttributedType(typ, attrs...)
	require.NoError(t, err)
	return at
}

type fixture struct {
	u          *nominal.Universe
	str        domain.Type
	number     domain.Type
	integer    domain.Type
	charSeq    domain.Type
	primary    *attributes.Attributes
	candidates []assign.AttributedType
}

func newFixture(t *testing.T) *fixture {
	u := nominal.Standard()
	f := &fixture{
		u:       u,
		str:     u.Named("java.lang.String"),
		number:  u.Named("java.lang.Number"),
		integer: u.Named("java.lang.Integer"),
		charSeq: u.Named("java.lang.CharSequence"),
		primary: qualifier.New("Named", map[string]any{"value": "primary"}),
	}
	f.candidates = []assign.AttributedType{
		attributed(t, f.charSeq),
		attributed(t, f.str),
		attributed(t, f.number, f.primary),
		attributed(t, f.integer),
	}
	return f
}

func newResolver(t *testing.T, f *fixture, opts ...resolve.Option) *resolve.Resolver {
	t.Helper()
	r, err := resolve.New(f.u, f.candidates, opts...)
	require.NoError(t, err)
	return r
}

func typeNames(ats []assign.AttributedType) []string {
	names := make([]string, len(ats))
	for i, at := range ats {
		names[i] = at.Type().String()
	}
	return names
}

func TestResolver_Select(t *testing.T) {
	f := newFixture(t)
	r := newResolver(t, f)

	tests := []struct {
		name     string
		required assign.AttributedType
		want     []string
	}{
		{
			name:     "classes before interfaces",
			required: attributed(t, f.charSeq),
			want:     []string{"java.lang.String", "java.lang.CharSequence"},
		},
		{
			name:     "default excludes explicitly qualified",
			required: attributed(t, f.number),
			want:     []string{"java.lang.Integer"},
		},
		{
			name:     "any matches every candidate, most specialized first",
			required: attributed(t, f.number, qualifier.Any()),
			want:     []string{"java.lang.Integer", "java.lang.Number"},
		},
		{
			name:     "named",
			required: attributed(t, f.number, f.primary),
			want:     []string{"java.lang.Number"},
		},
		{
			name:     "non-qualifier attributes are ignored",
			required: attributed(t, f.str, attributes.Of("Deprecated")),
			want:     []string{"java.lang.String"},
		},
		{
			name:     "unmatched qualifier",
			required: attributed(t, f.str, qualifier.New("Named", map[string]any{"value": "other"})),
			want:     []string{},
		},
		{
			name:     "not assignable",
			required: attributed(t, f.u.Primitive(domain.KindInt)),
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Select(tt.required)
			assert.Equal(t, tt.want, typeNames(got), spew.Sdump(got))
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	f := newFixture(t)
	r := newResolver(t, f)

	got, err := r.Resolve(attributed(t, f.charSeq))
	require.NoError(t, err)
	assert.Same(t, f.str, got.Type())

	got, err = r.Resolve(attributed(t, f.number, qualifier.Any()))
	require.NoError(t, err)
	assert.Same(t, f.integer, got.Type())

	_, err = r.Resolve(attributed(t, f.u.Object()))
	assert.ErrorIs(t, err, resolve.ErrAmbiguous)
	assert.Contains(t, err.Error(), "java.lang.String")
	assert.Contains(t, err.Error(), "java.lang.Integer")

	_, err = r.Resolve(attributed(t, f.u.Named("java.util.List")))
	assert.ErrorIs(t, err, resolve.ErrUnsatisfied)

	_, err = r.Resolve(assign.AttributedType{})
	assert.ErrorIs(t, err, assign.ErrNilArgument)
}

func TestResolver_InputOrder(t *testing.T) {
	u := nominal.Standard()
	base := u.Class("x.Base")
	u.Class("x.Sub").Extends(u.Declared(base))
	u.Class("x.Other")

	tests := []struct {
		name    string
		inputs  [][]string
		want    []string
		resolve string
	}{
		{
			name:    "subtype preferred",
			inputs:  [][]string{{"x.Sub", "x.Base"}, {"x.Base", "x.Sub"}},
			want:    []string{"x.Sub", "x.Base"},
			resolve: "x.Sub",
		},
		{
			name: "unrelated candidate is ambiguous",
			inputs: [][]string{
				{"x.Sub", "x.Base", "x.Other"},
				{"x.Base", "x.Other", "x.Sub"},
				{"x.Other", "x.Sub", "x.Base"},
			},
			want: []string{"x.Sub", "x.Base", "x.Other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, names := range tt.inputs {
				candidates := make([]assign.AttributedType, len(names))
				for i, n := range names {
					candidates[i] = attributed(t, u.Named(n))
				}
				r, err := resolve.New(u, candidates)
				require.NoError(t, err)

				required := attributed(t, u.Object())
				assert.Equal(t, tt.want, typeNames(r.Select(required)), "input %v", names)

				got, err := r.Resolve(required)
				if tt.resolve == "" {
					assert.ErrorIs(t, err, resolve.ErrAmbiguous, "input %v", names)
					continue
				}
				require.NoError(t, err, "input %v", names)
				assert.Equal(t, tt.resolve, got.Type().String(), "input %v", names)
			}
		})
	}
}

func TestResolver_CacheKeyDistinguishesValues(t *testing.T) {
	u := nominal.Standard()
	str := u.Named("java.lang.String")
	named := func(v any) *attributes.Attributes {
		return qualifier.New("Named", map[string]any{"value": v})
	}

	asString := attributed(t, str, named("[a b]"))
	asSlice := attributed(t, str, named([]any{"a", "b"}))
	require.Equal(t, asString.String(), asSlice.String())

	for _, opts := range [][]resolve.Option{nil, {resolve.WithCacheSize(4)}} {
		r, err := resolve.New(u, []assign.AttributedType{asString}, opts...)
		require.NoError(t, err)

		assert.Len(t, r.Select(asString), 1)
		assert.Empty(t, r.Select(asSlice))

		fresh, err := resolve.New(u, []assign.AttributedType{asString}, opts...)
		require.NoError(t, err)
		assert.Empty(t, fresh.Select(asSlice))
		assert.Len(t, fresh.Select(asString), 1)
	}
}

func TestResolver_Caching(t *testing.T) {
	for _, opts := range [][]resolve.Option{nil, {resolve.WithCacheSize(4)}} {
		f := newFixture(t)
		r := newResolver(t, f, opts...)

		first := r.Select(attributed(t, f.charSeq))
		second := r.Select(attributed(t, f.charSeq))
		require.NotEmpty(t, first)
		assert.Same(t, &first[0], &second[0])
	}
}

func TestResolver_Options(t *testing.T) {
	f := newFixture(t)

	_, err := resolve.New(f.u, f.candidates, resolve.WithCacheSize(-1))
	assert.Error(t, err)

	_, err = resolve.New(nil, f.candidates)
	assert.ErrorIs(t, err, assign.ErrNilArgument)

	_, err = resolve.New(f.u, []assign.AttributedType{{}})
	assert.ErrorIs(t, err, assign.ErrNilArgument)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newResolver(t, f, resolve.WithLogger(logger))
	r.Select(attributed(t, f.charSeq))
	assert.Contains(t, buf.String(), "selected candidates")
}

func TestResolver_TypesOf(t *testing.T) {
	f := newFixture(t)
	r := newResolver(t, f)

	l, err := r.TypesOf(attributed(t, f.integer))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"java.lang.Integer",
		"java.lang.Number",
		"java.lang.Object",
		"java.io.Serializable",
		"java.lang.Comparable",
		"java.lang.constant.Constable",
		"java.lang.constant.ConstantDesc",
	}, l.ErasedNames())

	assert.Len(t, r.Candidates(), 4)
}

func ExampleResolver_Resolve() {
	u := nominal.Standard()
	str, _ := assign.NewAttributedType(u.Named("java.lang.String"))
	integer, _ := assign.NewAttributedType(u.Named("java.lang.Integer"))

	r, _ := resolve.New(u, []assign.AttributedType{str, integer})

	required, _ := assign.NewAttributedType(u.Named("java.lang.CharSequence"))
	got, _ := r.Resolve(required)
	fmt.Println(got)
	// Output: java.lang.String
}

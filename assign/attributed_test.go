package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microbean/microbean-assign/assign"
	"github.com/microbean/microbean-assign/attributes"
	"github.com/microbean/microbean-assign/domain"
	"github.com/microbean/microbean-assign/internal/nominal"
)

func TestNewAttributedType(t *testing.T) {
	u := nominal.Standard()
	str := u.Named("java.lang.String")

	tests := []struct {
		name    string
		typ     domain.Type
		wantErr error
	}{
		{"primitive", u.Primitive(domain.KindInt), nil},
		{"declared", str, nil},
		{"array", u.ArrayOf(str), nil},
		{"type variable", u.TypeVariable("T", nil), assign.ErrInvalidTypeKind},
		{"wildcard", u.Wildcard(nil, nil), assign.ErrInvalidTypeKind},
		{"intersection", u.Intersection(str, u.Named("java.io.Serializable")), assign.ErrInvalidTypeKind},
		{"nil", nil, assign.ErrNilArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := assign.NewAttributedType(tt.typ)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.typ, at.Type())
		})
	}
}

func TestAttributedType_Attributes(t *testing.T) {
	u := nominal.Standard()
	named := attributes.New("Named", map[string]any{"value": "primary"})
	attrs := []*attributes.Attributes{named}

	at, err := assign.NewAttributedType(u.Named("java.lang.String"), attrs...)
	require.NoError(t, err)

	attrs[0] = attributes.Of("Other")
	got := at.Attributes()
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(named), "constructor copies its input")

	got[0] = nil
	assert.NotNil(t, at.Attributes()[0], "accessor returns a copy")

	assert.Equal(t, "@Named(value=primary) java.lang.String", at.String())
}

func TestAttributedElement(t *testing.T) {
	u := nominal.Standard()
	str := u.Named("java.lang.String")

	ae, err := assign.NewAttributedElement(u.Field("name", str), attributes.Of("Default"))
	require.NoError(t, err)
	assert.Same(t, str, ae.Type())
	assert.Equal(t, "@Default java.lang.String name", ae.String())

	at, err := ae.AttributedType()
	require.NoError(t, err)
	assert.Same(t, str, at.Type())
	assert.Len(t, at.Attributes(), 1)

	_, err = assign.NewAttributedElement(nil)
	assert.ErrorIs(t, err, assign.ErrNilArgument)

	bad, err := assign.NewAttributedElement(u.Field("t", u.TypeVariable("T", nil)))
	require.NoError(t, err)
	_, err = bad.AttributedType()
	assert.ErrorIs(t, err, assign.ErrInvalidTypeKind)
}

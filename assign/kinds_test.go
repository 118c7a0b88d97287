package assign_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/microbean/microbean-assign/assign"
	"github.com/microbean/microbean-assign/domain"
)

func TestClassesThenInterfaces(t *testing.T) {
	tests := []struct {
		a, b domain.ElementKind
		want int
	}{
		{domain.ElementClass, domain.ElementInterface, -1},
		{domain.ElementInterface, domain.ElementClass, 1},
		{domain.ElementRecord, domain.ElementAnnotationType, -1},
		{domain.ElementClass, domain.ElementEnum, 0},
		{domain.ElementField, domain.ElementInterface, 0},
		{0, domain.ElementClass, 1},
		{domain.ElementInterface, 0, -1},
		{0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, assign.ClassesThenInterfaces(tt.a, tt.b))
		})
	}
}

func TestPrimitiveAndReferenceKinds(t *testing.T) {
	kinds := []domain.Kind{
		domain.KindDeclared,
		0,
		domain.KindArray,
		domain.KindInt,
		domain.KindTypeVar,
	}
	slices.SortStableFunc(kinds, assign.PrimitiveAndReferenceKinds)
	assert.Equal(t, []domain.Kind{
		domain.KindTypeVar,
		domain.KindInt,
		domain.KindArray,
		domain.KindDeclared,
		0,
	}, kinds)

	assert.Zero(t, assign.PrimitiveAndReferenceKinds(domain.KindInt, domain.KindLong))
	assert.Zero(t, assign.PrimitiveAndReferenceKinds(domain.KindWildcard, domain.KindDeclared))
}

func TestPrimitivesThenDeclared(t *testing.T) {
	assert.Negative(t, assign.PrimitivesThenDeclared(domain.KindBoolean, domain.KindDeclared))
	assert.Positive(t, assign.PrimitivesThenDeclared(domain.KindDeclared, domain.KindDouble))
	assert.Zero(t, assign.PrimitivesThenDeclared(domain.KindArray, domain.KindDeclared))
	assert.Positive(t, assign.PrimitivesThenDeclared(0, domain.KindInt))
}

func TestTypeVariablesFirst(t *testing.T) {
	assert.Negative(t, assign.TypeVariablesFirst(domain.KindTypeVar, domain.KindDeclared))
	assert.Positive(t, assign.TypeVariablesFirst(domain.KindDeclared, domain.KindTypeVar), "symmetric")
	assert.Zero(t, assign.TypeVariablesFirst(domain.KindArray, domain.KindDeclared))
	assert.Negative(t, assign.TypeVariablesFirst(domain.KindArray, 0))
}

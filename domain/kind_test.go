package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/microbean/microbean-assign/domain"
)

func TestKind_Predicates(t *testing.T) {
	tests := []struct {
		kind      domain.Kind
		primitive bool
		reference bool
	}{
		{domain.KindInt, true, false},
		{domain.KindBoolean, true, false},
		{domain.KindVoid, false, false},
		{domain.KindArray, false, true},
		{domain.KindDeclared, false, true},
		{domain.KindTypeVar, false, true},
		{domain.KindNull, false, true},
		{domain.KindWildcard, false, false},
		{0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.primitive, tt.kind.IsPrimitive())
			assert.Equal(t, tt.reference, tt.kind.IsReference())
		})
	}
}

func TestElementKind_Predicates(t *testing.T) {
	assert.True(t, domain.ElementRecord.IsClass())
	assert.True(t, domain.ElementAnnotationType.IsInterface())
	assert.False(t, domain.ElementInterface.IsClass())
	assert.False(t, domain.ElementField.IsClass())
	assert.False(t, domain.ElementField.IsInterface())
}

func ExampleKind_String() {
	fmt.Println(domain.KindDeclared)
	fmt.Println(domain.ElementInterface)
	// Output:
	// KindDeclared
	// ElementInterface
}

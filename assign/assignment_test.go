package assign_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microbean/microbean-assign/assign"
	"github.com/microbean/microbean-assign/attributes"
	"github.com/microbean/microbean-assign/domain"
	"github.com/microbean/microbean-assign/internal/nominal"
)

type aggregate []assign.AttributedElement

func (a aggregate) Dependencies() []assign.AttributedElement { return a }

type leaf struct {
	assign.NoDependencies
}

func TestAssign(t *testing.T) {
	u := nominal.Standard()
	name, err := assign.NewAttributedElement(u.Field("name", u.Named("java.lang.String")))
	require.NoError(t, err)
	count, err := assign.NewAttributedElement(u.Field("count", u.Named("java.lang.Integer")), attributes.Of("Default"))
	require.NoError(t, err)

	var asked []string
	resolve := func(at assign.AttributedType) (string, error) {
		asked = append(asked, at.Type().String())
		return "value of " + at.String(), nil
	}

	got, err := assign.Assign(aggregate{name, count, name}, resolve)
	require.NoError(t, err)
	require.Len(t, got, 2, "duplicate dependencies resolve once")
	assert.Equal(t, []string{"java.lang.String", "java.lang.Integer"}, asked)

	assert.Equal(t, "name", got[0].Assignee().Element().SimpleName())
	assert.Equal(t, "value of java.lang.String", got[0].Value())
	assert.Equal(t, "count", got[1].Assignee().Element().SimpleName())
	assert.Equal(t, "value of @Default java.lang.Integer", got[1].Value())
}

func TestAssign_NoDependencies(t *testing.T) {
	never := func(assign.AttributedType) (int, error) {
		t.Fatal("resolver called for an aggregate without dependencies")
		return 0, nil
	}

	got, err := assign.Assign(leaf{}, never)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = assign.Assign(aggregate{}, never)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAssign_Errors(t *testing.T) {
	u := nominal.Standard()
	dep, err := assign.NewAttributedElement(u.Field("name", u.Named("java.lang.String")))
	require.NoError(t, err)

	errBoom := errors.New("boom")
	_, err = assign.Assign(aggregate{dep}, func(assign.AttributedType) (int, error) {
		return 0, errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = assign.Assign[int](nil, nil)
	assert.ErrorIs(t, err, assign.ErrNilArgument)

	_, err = assign.Assign[int](aggregate{dep}, nil)
	assert.ErrorIs(t, err, assign.ErrNilArgument)
}

func TestNewAssignment(t *testing.T) {
	u := nominal.Standard()
	dep, err := assign.NewAttributedElement(u.Field("n", u.Primitive(domain.KindInt)))
	require.NoError(t, err)

	a, err := assign.NewAssignment(dep, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, a.Value())

	_, err = assign.NewAssignment(assign.AttributedElement{}, 42)
	assert.ErrorIs(t, err, assign.ErrNilArgument)
}

func ExampleAssign() {
	u := nominal.Standard()
	dep, _ := assign.NewAttributedElement(u.Field("greeting", u.Named("java.lang.String")))

	assignments, _ := assign.Assign(aggregate{dep}, func(at assign.AttributedType) (string, error) {
		return "hello", nil
	})
	for _, a := range assignments {
		fmt.Println(a.Assignee(), "=", a.Value())
	}
	// Output: java.lang.String greeting = hello
}

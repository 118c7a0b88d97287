package assign

import (
	"strings"

	"github.com/microbean/microbean-assign/domain"
)

// ErasedName returns a canonical name for t that ignores type arguments.
//
//   - array: the component's erased name followed by "[]"
//   - primitive and void: t.String(), the keyword, e.g. "int"
//   - declared type and type variable: the name of the declaring element,
//     qualified when the element has a non-empty qualified name
//   - intersection: the bounds' erased names joined by "&"
//   - anything else: t.String()
func ErasedName(t domain.Type) string {
	if t == nil {
		return ""
	}

	switch t.Kind() {
	case domain.KindArray:
		if a, ok := t.(domain.ArrayType); ok {
			return ErasedName(a.ComponentType()) + "[]"
		}
	case domain.KindDeclared:
		if d, ok := t.(domain.DeclaredType); ok && d.Element() != nil {
			return elementName(d.Element())
		}
	case domain.KindTypeVar:
		if v, ok := t.(domain.TypeVariable); ok && v.Element() != nil {
			return elementName(v.Element())
		}
	case domain.KindIntersection:
		if i, ok := t.(domain.IntersectionType); ok {
			bounds := i.Bounds()
			names := make([]string, len(bounds))
			for j, b := range bounds {
				names[j] = ErasedName(b)
			}
			return strings.Join(names, "&")
		}
	}

	return t.String()
}

func elementName(e domain.Element) string {
	if qn, ok := e.(domain.QualifiedNameable); ok {
		if n := qn.QualifiedName(); n != "" {
			return n
		}
	}
	return e.SimpleName()
}

package nominal

// Standard returns a Universe pre-populated with a slice of the JDK type
// hierarchy: java.lang.String and its interfaces, the boxed numbers, and the
// java.util collection interfaces with ArrayList.
func Standard() *Universe {
	u := NewUniverse()
	serializable := u.Named("java.io.Serializable")
	cloneable := u.Named("java.lang.Cloneable")

	comparable := u.Interface("java.lang.Comparable", "T")
	charSequence := u.Interface("java.lang.CharSequence")
	constable := u.Interface("java.lang.constant.Constable")
	constantDesc := u.Interface("java.lang.constant.ConstantDesc")

	str := u.Class("java.lang.String")
	str.Implements(
		serializable,
		u.Declared(comparable, u.Declared(str)),
		u.Declared(charSequence),
		u.Declared(constable),
		u.Declared(constantDesc),
	)

	number := u.Class("java.lang.Number").Implements(serializable)
	integer := u.Class("java.lang.Integer").Extends(u.Declared(number))
	integer.Implements(
		u.Declared(comparable, u.Declared(integer)),
		u.Declared(constable),
		u.Declared(constantDesc),
	)

	iterable := u.Interface("java.lang.Iterable", "T")
	collection := u.Interface("java.util.Collection", "E")
	collection.Implements(u.Declared(iterable, collection.TypeVar(0)))
	sequenced := u.Interface("java.util.SequencedCollection", "E")
	sequenced.Implements(u.Declared(collection, sequenced.TypeVar(0)))
	list := u.Interface("java.util.List", "E")
	list.Implements(u.Declared(sequenced, list.TypeVar(0)))

	arrayList := u.Class("java.util.ArrayList", "E")
	arrayList.Implements(u.Declared(list, arrayList.TypeVar(0)), serializable, cloneable)

	return u
}

package authors

// entry is implemented by every record entry type. IsZero is the single
// emptiness predicate shared by all append operations: an entry that holds
// no data is never appended.
type entry interface {
	IsZero() bool
}

// appendEntry appends element to *list, creating the list on first use.
// Appending an empty element is a silent no-op.
func appendEntry[E entry](list *[]E, element E) {
	if element.IsZero() {
		return
	}
	*list = append(*list, element)
}

// appendValue is appendEntry for string-kinded fields, where the empty
// string is the empty value.
func appendValue[E ~string](list *[]E, element E) {
	if element == "" {
		return
	}
	*list = append(*list, element)
}

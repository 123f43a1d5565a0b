package vec

// Cloner is implemented by element types whose copy is more than a value copy.
// Copy-construction and copy-assignment call Clone for every live element.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer is implemented by element types that release resources when they
// leave the container. Destroy runs once per live element when it is removed
// or the container is closed; it does not run for elements that are moved.
type Destroyer interface {
	Destroy()
}

// hooks holds the element lifecycle operations resolved once per container.
type hooks[T any] struct {
	clone   func(*T) T
	destroy func(*T)
}

// hooksFor resolves lifecycle hooks for T. Pointer-receiver methods are found
// through *T; value-receiver methods on pointer element types through T itself.
func hooksFor[T any]() hooks[T] {
	var h hooks[T]

	if _, ok := any((*T)(nil)).(Cloner[T]); ok {
		h.clone = func(p *T) T { return any(p).(Cloner[T]).Clone() }
	} else if _, ok := any(*new(T)).(Cloner[T]); ok {
		h.clone = func(p *T) T { return any(*p).(Cloner[T]).Clone() }
	}

	if _, ok := any((*T)(nil)).(Destroyer); ok {
		h.destroy = func(p *T) { any(p).(Destroyer).Destroy() }
	} else if _, ok := any(*new(T)).(Destroyer); ok {
		h.destroy = func(p *T) { any(*p).(Destroyer).Destroy() }
	}

	return h
}

// copyElem returns a copy of *src using the element's copy semantics.
func (h hooks[T]) copyElem(src *T) T {
	if h.clone != nil {
		return h.clone(src)
	}
	return *src
}

// destroyElem runs the element's destructor and resets the slot to the zero value.
func (h hooks[T]) destroyElem(slot *T) {
	if h.destroy != nil {
		h.destroy(slot)
	}
	var zero T
	*slot = zero
}

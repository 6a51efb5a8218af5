package localstate

// Initial is the default value of a Cell: either a concrete value or a
// producer that is invoked every time the default is needed.
type Initial[S any] struct {
	value   S
	produce func() S
}

// Default uses v as the default value.
func Default[S any](v S) Initial[S] {
	return Initial[S]{value: v}
}

// DefaultFunc calls fn whenever the default value is needed, so a Reset may
// yield a fresh value.
func DefaultFunc[S any](fn func() S) Initial[S] {
	return Initial[S]{produce: fn}
}

func (i Initial[S]) resolve() S {
	if i.produce != nil {
		return i.produce()
	}
	return i.value
}

// Update is the argument of Set: either the next value or a function of the
// current value.
type Update[S any] struct {
	value S
	apply func(S) S
}

// To replaces the current value with v.
func To[S any](v S) Update[S] {
	return Update[S]{value: v}
}

// Apply computes the next value from the current one.
func Apply[S any](fn func(prev S) S) Update[S] {
	return Update[S]{apply: fn}
}

func (u Update[S]) next(prev S) S {
	if u.apply != nil {
		return u.apply(prev)
	}
	return u.value
}

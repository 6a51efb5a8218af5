package localstate

// A Binding holds the live value of a Cell on behalf of the host UI
// framework. SetCurrent is where the host schedules its re-render.
type Binding[S any] interface {
	Current() S
	SetCurrent(S)
}

// valueBinding is the Binding of a standalone Cell.
type valueBinding[S any] struct {
	v S
}

func (b *valueBinding[S]) Current() S { return b.v }
func (b *valueBinding[S]) SetCurrent(v S) { b.v = v }

// notifyBinding reports every change to its owner.
type notifyBinding[S any] struct {
	v      S
	notify func()
}

func (b *notifyBinding[S]) Current() S { return b.v }

func (b *notifyBinding[S]) SetCurrent(v S) {
	b.v = v
	if b.notify != nil {
		b.notify()
	}
}

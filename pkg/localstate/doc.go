// Package localstate keeps a piece of UI state in sync with Web Storage so it
// survives page reloads.
//
// A Cell binds one storage key to one value. On creation it restores the
// JSON stored at the key, falling back to a default when there is nothing
// usable. Every Set writes the new value back, and Reset erases the entry and
// returns to the default:
//
//	cell, _ := localstate.New("todos", localstate.Default([]string{"first"}))
//	cell.Set(localstate.Apply(func(cur []string) []string {
//		return append(cur, "second")
//	}))
//	cell.Reset()
//
// Inside a Component, Use plays the role of a state hook: it creates the cell
// on the first render and hands back the same setter and resetter on every
// render after that.
package localstate

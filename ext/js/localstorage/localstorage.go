//go:build js

// Package localstorage binds window.localStorage for GopherJS and wasm
// builds.
package localstorage

import (
	"errors"
	"fmt"
)

// probeKey is written and removed by Open to confirm storage is reachable.
const probeKey = "__localstate_probe__"

// ErrUnavailable is returned by Open when the page has no usable
// localStorage.
var ErrUnavailable = errors.New("localStorage is unavailable")

// call runs fn and turns a thrown JS exception into an error.
func call(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage.%s: %v", op, r)
		}
	}()
	fn()
	return nil
}

//go:build js && !wasm

package localstorage

import "github.com/gopherjs/gopherjs/js"

// Storage is window.localStorage.
type Storage struct {
	object *js.Object
}

// Open returns the page's localStorage after checking that a window exists,
// that it exposes localStorage, and that a probe entry can be written.
func Open() (*Storage, error) {
	window := js.Global.Get("window")
	if window == js.Undefined || window == nil {
		return nil, ErrUnavailable
	}
	var object *js.Object
	err := call("access", func() {
		object = window.Get("localStorage")
	})
	if err != nil || object == js.Undefined || object == nil {
		return nil, ErrUnavailable
	}

	s := &Storage{object: object}
	if err := s.SetItem(probeKey, probeKey); err != nil {
		return nil, ErrUnavailable
	}
	if err := s.RemoveItem(probeKey); err != nil {
		return nil, ErrUnavailable
	}
	return s, nil
}

func (s *Storage) GetItem(key string) (value string, ok bool, err error) {
	err = call("getItem", func() {
		res := s.object.Call("getItem", key)
		if res == nil || res == js.Undefined {
			return
		}
		value, ok = res.String(), true
	})
	return value, ok, err
}

func (s *Storage) SetItem(key, value string) error {
	return call("setItem", func() {
		s.object.Call("setItem", key, value)
	})
}

func (s *Storage) RemoveItem(key string) error {
	return call("removeItem", func() {
		s.object.Call("removeItem", key)
	})
}

func (s *Storage) Keys() ([]string, error) {
	var keys []string
	err := call("key", func() {
		n := s.object.Get("length").Int()
		for i := 0; i < n; i++ {
			keys = append(keys, s.object.Call("key", i).String())
		}
	})
	return keys, err
}

func (s *Storage) Clear() error {
	return call("clear", func() {
		s.object.Call("clear")
	})
}

package localstate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtctunnel/localstate/pkg/webstorage"
)

type todoView struct {
	todos    []string
	setTodos *Setter[[]string]
	reset    *Resetter
}

func renderTodos(c *Component, key string) todoView {
	var v todoView
	c.Render(func() {
		v.todos, v.setTodos, v.reset = Use(c, key, Default([]string{"first", "second"}))
	})
	return v
}

func TestUse(t *testing.T) {
	storage := webstorage.NewMemory()
	c := NewComponent(WithStorage(storage))
	defer c.Close()

	v := renderTodos(c, "todos")
	assert.Equal(t, []string{"first", "second"}, v.todos)

	v.setTodos.Set(Apply(func(cur []string) []string {
		return append(append([]string{}, cur...), "third")
	}))

	v2 := renderTodos(c, "todos")
	assert.Equal(t, []string{"first", "second", "third"}, v2.todos)
	assert.Same(t, v.setTodos, v2.setTodos)
	assert.Same(t, v.reset, v2.reset)

	v2.reset.Reset()
	v3 := renderTodos(c, "todos")
	assert.Equal(t, []string{"first", "second"}, v3.todos)
	assert.Same(t, v.setTodos, v3.setTodos)

	_, ok, err := storage.GetItem("todos")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUseResolvesOnce(t *testing.T) {
	storage := webstorage.NewMemory()
	c := NewComponent(WithStorage(storage))
	defer c.Close()

	calls := 0
	initial := DefaultFunc(func() int {
		calls++
		return 1
	})

	for i := 0; i < 3; i++ {
		c.Render(func() {
			v, _, _ := Use(c, "n", initial)
			assert.Equal(t, 1, v)
		})
	}
	assert.Equal(t, 1, calls)
}

func TestOnChange(t *testing.T) {
	c := NewComponent(WithStorage(webstorage.NewMemory()))
	defer c.Close()

	var rendered []int
	render := func() {
		c.Render(func() {
			n, _, _ := Use(c, "count", Default(0))
			rendered = append(rendered, n)
		})
	}
	c.OnChange(render)
	render()

	var set *Setter[int]
	var reset *Resetter
	c.Render(func() {
		_, set, reset = Use(c, "count", Default(0))
	})

	set.Set(Apply(func(n int) int { return n + 1 }))
	set.Set(Apply(func(n int) int { return n + 1 }))
	reset.Reset()

	assert.Equal(t, []int{0, 1, 2, 0}, rendered)
}

func TestSameKeyTwiceInOneComponent(t *testing.T) {
	storage := webstorage.NewMemory()
	c := NewComponent(WithStorage(storage))
	defer c.Close()

	assert.NotPanics(t, func() {
		c.Render(func() {
			a, _, _ := Use(c, "todos", Default([]string{"first", "second"}))
			b, _, _ := Use(c, "todos", Default([]string{"third", "fourth"}))
			assert.Equal(t, []string{"first", "second"}, a)
			assert.Equal(t, []string{"third", "fourth"}, b)
		})
	})
}

func TestUseOutsideRender(t *testing.T) {
	c := NewComponent(WithoutStorage())
	defer c.Close()

	assert.PanicsWithValue(t, "localstate: Use called outside Render", func() {
		Use(c, "key", Default(1))
	})
}

func TestUseSlotTypeMismatch(t *testing.T) {
	c := NewComponent(WithoutStorage())
	defer c.Close()

	c.Render(func() {
		Use(c, "key", Default(1))
	})
	assert.Panics(t, func() {
		c.Render(func() {
			Use(c, "key", Default("one"))
		})
	})
}

func TestUseKeyChangeKeepsOriginalKey(t *testing.T) {
	storage := webstorage.NewMemory()
	require.NoError(t, storage.SetItem("b", `"from b"`))

	c := NewComponent(WithStorage(storage))
	defer c.Close()

	var set *Setter[string]
	c.Render(func() {
		_, set, _ = Use(c, "a", Default("default"))
	})
	c.Render(func() {
		v, s, _ := Use(c, "b", Default("default"))
		assert.Equal(t, "default", v)
		assert.Same(t, set, s)
	})

	set.Set(To("written"))
	raw, ok, err := storage.GetItem("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"written"`, raw)

	raw, _, err = storage.GetItem("b")
	require.NoError(t, err)
	assert.Equal(t, `"from b"`, raw)
}

func TestComponentCloseKeepsStorage(t *testing.T) {
	storage := webstorage.NewMemory()
	registry := NewRegistry(ExclusiveKeys)
	c := NewComponent(WithStorage(storage), WithRegistry(registry))

	v := renderTodos(c, "todos")
	v.setTodos.Set(To([]string{"kept"}))
	assert.Equal(t, 1, registry.Claims("todos"))

	require.NoError(t, c.Close())
	assert.Equal(t, 0, registry.Claims("todos"))

	c2 := NewComponent(WithStorage(storage), WithRegistry(registry))
	defer c2.Close()
	assert.Equal(t, []string{"kept"}, renderTodos(c2, "todos").todos)
}

func TestComponentExclusiveKeys(t *testing.T) {
	registry := NewRegistry(ExclusiveKeys)
	c := NewComponent(WithStorage(webstorage.NewMemory()), WithRegistry(registry))
	defer c.Close()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrKeyInUse))
	}()
	c.Render(func() {
		Use(c, "todos", Default([]string{"a"}))
		Use(c, "todos", Default([]string{"b"}))
	})
}

func TestRenderAfterClose(t *testing.T) {
	c := NewComponent(WithoutStorage())
	require.NoError(t, c.Close())
	assert.Panics(t, func() {
		c.Render(func() {})
	})
}

package localstate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtctunnel/localstate/pkg/webstorage"
)

func TestRegistrySharedKeys(t *testing.T) {
	storage := webstorage.NewMemory()
	registry := NewRegistry(SharedKeys)

	a, err := New("key", Default("a"), WithStorage(storage), WithRegistry(registry))
	require.NoError(t, err)
	defer a.Close()
	b, err := New("key", Default("b"), WithStorage(storage), WithRegistry(registry))
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, 2, registry.Claims("key"))

	a.Set(To("from a"))
	b.Set(To("from b"))

	// live values diverge, storage holds the last write
	assert.Equal(t, "from a", a.Value())
	assert.Equal(t, "from b", b.Value())
	raw, _, err := storage.GetItem("key")
	require.NoError(t, err)
	assert.Equal(t, `"from b"`, raw)
}

func TestRegistryExclusiveKeys(t *testing.T) {
	storage := webstorage.NewMemory()
	registry := NewRegistry(ExclusiveKeys)

	a, err := New("key", Default("a"), WithStorage(storage), WithRegistry(registry))
	require.NoError(t, err)

	_, err = New("key", Default("b"), WithStorage(storage), WithRegistry(registry))
	assert.True(t, errors.Is(err, ErrKeyInUse))

	other, err := New("other", Default("c"), WithStorage(storage), WithRegistry(registry))
	require.NoError(t, err)
	defer other.Close()

	require.NoError(t, a.Close())
	assert.Equal(t, 0, registry.Claims("key"))

	b, err := New("key", Default("b"), WithStorage(storage), WithRegistry(registry))
	require.NoError(t, err)
	defer b.Close()
}

func TestKeyPolicyString(t *testing.T) {
	assert.Equal(t, "shared", SharedKeys.String())
	assert.Equal(t, "exclusive", ExclusiveKeys.String())
	assert.Equal(t, "KeyPolicy(7)", KeyPolicy(7).String())
}

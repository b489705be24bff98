package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/modelstore/internal/model"
	"github.com/zjrosen/modelstore/internal/registry"
)

func TestNewStore_Empty(t *testing.T) {
	store, err := registry.NewStore()
	require.NoError(t, err)
	require.Equal(t, 0, store.Len())
}

func TestNewStore_InitialObjects(t *testing.T) {
	obj1 := model.NewObject("urn:x-test:obj1")
	obj2 := model.NewObject("urn:x-test:obj2")

	store, err := registry.NewStore(obj1, obj2)

	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	require.True(t, store.Contains(obj1))
	require.True(t, store.Contains(obj2))
}

func TestNewStore_InitialDuplicate(t *testing.T) {
	obj1 := model.NewObject("urn:x-test:obj1")
	obj2 := model.NewObject("urn:x-test:obj1")

	_, err := registry.NewStore(obj1, obj2)

	require.ErrorIs(t, err, registry.ErrDuplicateIdentifier)
}

func TestStore_AddAndRetrieve(t *testing.T) {
	store, err := registry.NewStore()
	require.NoError(t, err)
	obj := model.NewObject("urn:x-test:obj1")

	require.NoError(t, store.Add(obj))

	got, err := store.GetIdentifiable("urn:x-test:obj1")
	require.NoError(t, err)
	require.Same(t, obj, got)
}

func TestStore_Add_Nil(t *testing.T) {
	store, _ := registry.NewStore()

	err := store.Add(nil)

	require.ErrorIs(t, err, registry.ErrNilIdentifiable)
	require.Equal(t, 0, store.Len())
}

func TestStore_Add_TypedNil(t *testing.T) {
	store, _ := registry.NewStore()

	// An interface holding a nil *model.Object is not == nil, but calling
	// ID() on it would panic; it must be rejected like untyped nil.
	var obj *model.Object
	err := store.Add(obj)

	require.ErrorIs(t, err, registry.ErrNilIdentifiable)
	require.Equal(t, 0, store.Len())
}

func TestStore_Add_EmptyIdentifier(t *testing.T) {
	store, _ := registry.NewStore()

	err := store.Add(model.NewObject(""))

	require.ErrorIs(t, err, registry.ErrMissingIdentifier)
	require.Equal(t, 0, store.Len())
}

func TestStore_Add_SameInstanceTwice(t *testing.T) {
	store, _ := registry.NewStore()
	obj := model.NewObject("urn:x-test:obj1")

	require.NoError(t, store.Add(obj))
	require.NoError(t, store.Add(obj))

	require.Equal(t, 1, store.Len())
}

func TestStore_Add_DistinctInstanceSameIdentifier(t *testing.T) {
	store, _ := registry.NewStore()
	obj := model.NewObject("urn:x-test:obj1")
	require.NoError(t, store.Add(obj))

	// Structurally equal but a different instance: must be rejected, the
	// stored entry must survive untouched.
	imposter := model.NewObject("urn:x-test:obj1")
	err := store.Add(imposter)

	require.ErrorIs(t, err, registry.ErrDuplicateIdentifier)
	require.Contains(t, err.Error(), "urn:x-test:obj1")
	require.Equal(t, 1, store.Len())
	got, getErr := store.GetIdentifiable("urn:x-test:obj1")
	require.NoError(t, getErr)
	require.Same(t, obj, got)
}

func TestStore_GetIdentifiable_NotFound(t *testing.T) {
	store, _ := registry.NewStore()

	_, err := store.GetIdentifiable("urn:x-test:missing")

	require.ErrorIs(t, err, registry.ErrNotFound)
	require.Contains(t, err.Error(), "urn:x-test:missing")
}

func TestStore_Discard_StoredInstance(t *testing.T) {
	store, _ := registry.NewStore()
	obj := model.NewObject("urn:x-test:obj1")
	require.NoError(t, store.Add(obj))

	store.Discard(obj)

	require.Equal(t, 0, store.Len())
	_, err := store.GetIdentifiable("urn:x-test:obj1")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestStore_Discard_DifferentInstanceSameIdentifier(t *testing.T) {
	store, _ := registry.NewStore()
	obj := model.NewObject("urn:x-test:obj1")
	require.NoError(t, store.Add(obj))

	// A different instance sharing the identifier never removes the stored
	// object, protecting against cross-caller corruption.
	store.Discard(model.NewObject("urn:x-test:obj1"))

	require.Equal(t, 1, store.Len())
	require.True(t, store.Contains(obj))
}

func TestStore_Discard_AbsentIsNoOp(t *testing.T) {
	store, _ := registry.NewStore()

	store.Discard(model.NewObject("urn:x-test:obj1"))
	store.Discard(nil)

	var typedNil *model.Object
	store.Discard(typedNil)

	require.Equal(t, 0, store.Len())
}

func TestStore_Discard_Twice(t *testing.T) {
	store, _ := registry.NewStore()
	obj := model.NewObject("urn:x-test:obj1")
	require.NoError(t, store.Add(obj))

	store.Discard(obj)
	store.Discard(obj)

	require.Equal(t, 0, store.Len())
}

func TestStore_Update(t *testing.T) {
	store, _ := registry.NewStore()
	obj1 := model.NewObject("urn:x-test:obj1")
	obj2 := model.NewObject("urn:x-test:obj2")

	err := store.Update([]registry.Identifiable{obj1, obj2})

	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
}

func TestStore_Update_StopsAtFirstFailure(t *testing.T) {
	store, _ := registry.NewStore()
	obj1 := model.NewObject("urn:x-test:obj1")
	dup := model.NewObject("urn:x-test:obj1")
	obj2 := model.NewObject("urn:x-test:obj2")

	err := store.Update([]registry.Identifiable{obj1, dup, obj2})

	require.ErrorIs(t, err, registry.ErrDuplicateIdentifier)
	require.Equal(t, 1, store.Len())
	require.False(t, store.Contains(obj2))
}

func TestStore_Contains_Modes(t *testing.T) {
	store, _ := registry.NewStore()
	obj := model.NewObject("urn:x-test:obj1")
	require.NoError(t, store.Add(obj))

	// Identifier mode: does some entry have this key.
	require.True(t, store.Contains("urn:x-test:obj1"))
	require.False(t, store.Contains("urn:x-test:other"))

	// Instance mode: identity, not structural equality.
	require.True(t, store.Contains(obj))
	require.False(t, store.Contains(model.NewObject("urn:x-test:obj1")))

	// Anything else is simply not contained.
	require.False(t, store.Contains(42))
	require.False(t, store.Contains(nil))

	var typedNil *model.Object
	require.False(t, store.Contains(typedNil))
}

func TestStore_All_InsertionOrder(t *testing.T) {
	store, _ := registry.NewStore()
	obj1 := model.NewObject("urn:x-test:obj1")
	obj2 := model.NewObject("urn:x-test:obj2")
	obj3 := model.NewObject("urn:x-test:obj3")
	require.NoError(t, store.Update([]registry.Identifiable{obj1, obj2, obj3}))

	store.Discard(obj2)

	var ids []string
	for obj := range store.All() {
		ids = append(ids, obj.ID())
	}
	require.Equal(t, []string{"urn:x-test:obj1", "urn:x-test:obj3"}, ids)
}

func TestGetOrDefault(t *testing.T) {
	store, _ := registry.NewStore()
	obj := model.NewObject("urn:x-test:obj1")
	fallback := model.NewObject("urn:x-test:fallback")
	require.NoError(t, store.Add(obj))

	require.Same(t, obj, registry.GetOrDefault(store, "urn:x-test:obj1", fallback))
	require.Same(t, fallback, registry.GetOrDefault(store, "urn:x-test:missing", fallback))
	require.Nil(t, registry.GetOrDefault(store, "urn:x-test:missing", nil))
}

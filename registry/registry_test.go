package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type widthComponent struct{ Value int }
type nameComponent struct{ Value string }

func TestRegistry_CreateEntitiesAreUniqueAndAlive(t *testing.T) {
	r := NewRegistry()
	a := r.Create()
	b := r.Create()

	require.NotEqual(t, a, b)
	require.True(t, r.Alive(a))
	require.True(t, r.Alive(b))
}

func TestRegistry_EmplaceGetTryGet(t *testing.T) {
	r := NewRegistry()
	e := r.Create()

	Emplace(r, e, widthComponent{Value: 42})
	require.Equal(t, 42, Get[widthComponent](r, e).Value)

	v, ok := TryGet[widthComponent](r, e)
	require.True(t, ok)
	require.Equal(t, 42, v.Value)

	_, ok = TryGet[nameComponent](r, e)
	require.False(t, ok)
}

func TestRegistry_DifferentTypesCoexistOnSameEntity(t *testing.T) {
	r := NewRegistry()
	e := r.Create()

	Emplace(r, e, widthComponent{Value: 1})
	Emplace(r, e, nameComponent{Value: "rect"})

	require.True(t, Has[widthComponent](r, e))
	require.True(t, Has[nameComponent](r, e))
	require.Equal(t, "rect", Get[nameComponent](r, e).Value)
}

func TestRegistry_RemoveDetachesComponent(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	Emplace(r, e, widthComponent{Value: 1})

	Remove[widthComponent](r, e)
	require.False(t, Has[widthComponent](r, e))
}

func TestRegistry_DestroyErasesComponentsAndFiresHooks(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	Emplace(r, e, widthComponent{Value: 1})

	fired := false
	r.OnDestroy(e, func(Entity) { fired = true })

	r.Destroy(e)
	require.False(t, r.Alive(e))
	require.False(t, Has[widthComponent](r, e))
	require.True(t, fired)
}

func TestRegistry_ContextSingleton(t *testing.T) {
	r := NewRegistry()
	CtxEmplace(r, nameComponent{Value: "document"})

	got := CtxGet[nameComponent](r)
	require.Equal(t, "document", got.Value)

	_, ok := CtxTryGet[widthComponent](r)
	require.False(t, ok)
}

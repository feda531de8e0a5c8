package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIdempotent(t *testing.T) {
	id1 := Register("test_idempotent")
	id2 := Register("TEST_IDEMPOTENT")

	assert.Equal(t, id1, id2, "same name should return same ID")
}

func TestRegisterDifferentNames(t *testing.T) {
	id1 := Register("test_name_a")
	id2 := Register("test_name_b")

	assert.NotEqual(t, id1, id2, "different names should return different IDs")
}

func TestRegisterConcurrent(t *testing.T) {
	const numGoroutines = 100
	var wg sync.WaitGroup
	ids := make([]Kind, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx] = Register("test_concurrent")
		}(i)
	}
	wg.Wait()

	for i := 1; i < numGoroutines; i++ {
		require.Equal(t, ids[0], ids[i], "concurrent registration should return same ID")
	}
}

func TestLookupDynamic(t *testing.T) {
	name := "test_lookup"
	expectedID := Register(name)

	gotID, ok := LookupDynamic(name)
	require.True(t, ok, "registered kind should be found")
	assert.Equal(t, expectedID, gotID)

	_, ok = LookupDynamic("nonexistent_kind_12345")
	assert.False(t, ok, "unregistered kind should not be found")
}

func TestIsDynamic(t *testing.T) {
	assert.False(t, IsDynamic(String))
	assert.False(t, IsDynamic(RecordID))
	assert.False(t, IsDynamic(Invalid))

	assert.True(t, IsDynamic(Register("test_dynamic_check")))
}

func TestRegisteredKinds(t *testing.T) {
	name := "test_registered_kinds"
	id := Register(name)

	kinds := RegisteredKinds()
	assert.Equal(t, name, kinds[id])

	kinds[id] = "modified"
	assert.Equal(t, name, RegisteredKinds()[id], "RegisteredKinds should return a copy")
}

func TestGetDynamicName(t *testing.T) {
	id := Register("test_get_dynamic_name")

	gotName, ok := getDynamicName(id)
	require.True(t, ok)
	assert.Equal(t, "test_get_dynamic_name", gotName)

	_, ok = getDynamicName(Kind(99999))
	assert.False(t, ok)
}

package typedmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	m := NewHashMap[string, *Mock]()
	m.Set("aa", &Mock{
		A: "aa",
		B: 22,
	})
	m.Set("bb", &Mock{
		A: "bb",
		B: 55,
	})
	require.Equal(t, 2, m.Len())
	require.Equal(t, true, m.Contains("aa"))
	require.Equal(t, true, m.Contains("bb"))
	require.Equal(t, false, m.Contains("cc"))
	require.Equal(t, 2, len(m.Keys()))
	require.Equal(t, 2, len(m.Values()))
	m.Delete("bb")
	require.Equal(t, false, m.Contains("bb"))
	require.Equal(t, 1, m.Len())
}

func TestHashMapAbsentVsStoredZero(t *testing.T) {
	m := NewHashMap[string, int]()
	m.Set("zero", 0)
	v, found := m.Get("zero")
	require.Equal(t, 0, v)
	require.Equal(t, true, found)
	v, found = m.Get("missing")
	require.Equal(t, 0, v)
	require.Equal(t, false, found)
}

func TestHashMapOverwrite(t *testing.T) {
	m := NewHashMap[string, int]()
	m.Set("k", 1)
	m.Set("k", 2)
	v, found := m.Get("k")
	require.Equal(t, true, found)
	require.Equal(t, 2, v)
	require.Equal(t, 1, m.Len())
}

func TestHashMapDeleteIdempotent(t *testing.T) {
	m := NewHashMap[string, int]()
	m.Set("k", 1)
	m.Delete("absent")
	require.Equal(t, 1, m.Len())
	m.Delete("k")
	m.Delete("k")
	require.Equal(t, 0, m.Len())
	require.Equal(t, false, m.Contains("k"))
}

func TestHashMapSnapshots(t *testing.T) {
	m := NewHashMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	keys := m.Keys()
	entries := m.Entries()
	m.Set("c", 3)
	require.Equal(t, 2, len(keys))
	require.Equal(t, 2, len(entries))
	require.NotContains(t, keys, "c")
	m.Set("a", 10)
	for _, e := range entries {
		if e.Key == "a" {
			require.Equal(t, 1, e.Value)
		}
	}
}

func TestHashMapGetOrInsertDefault(t *testing.T) {
	m := NewHashMap[string, []string]()
	h := m.GetOrInsertDefault("Batman")
	*h = append(*h, "The Joker")
	*h = append(*h, "Two-Face")
	v, found := m.Get("Batman")
	require.Equal(t, true, found)
	require.Equal(t, []string{"The Joker", "Two-Face"}, v)
	h2 := m.GetOrInsertDefault("Batman")
	require.Equal(t, h, h2)
	require.Equal(t, 1, m.Len())
}

func TestHashMapZeroValueFailFast(t *testing.T) {
	var m HashMap[string, int]
	_, found := m.Get("k")
	require.Equal(t, false, found)
	require.Equal(t, 0, m.Len())
	require.Equal(t, false, m.Contains("k"))
	require.PanicsWithValue(t, ErrUninitializedMap, func() {
		m.Set("k", 1)
	})
	require.PanicsWithValue(t, ErrUninitializedMap, func() {
		m.Delete("k")
	})
	require.PanicsWithValue(t, ErrUninitializedMap, func() {
		m.GetOrInsertDefault("k")
	})
}

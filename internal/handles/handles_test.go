package handles

import (
	"sort"
	"sync"
	"testing"
)

func TestSetAddRemove(t *testing.T) {
	var s Set[uintptr]

	if s.Contains(1) {
		t.Error("empty set should not contain anything")
	}
	if !s.Add(1) {
		t.Error("first Add should report a new member")
	}
	if s.Add(1) {
		t.Error("second Add of the same handle should report false")
	}
	if !s.Contains(1) {
		t.Error("Contains should be true after Add")
	}
	if !s.Remove(1) {
		t.Error("Remove should report a present member")
	}
	if s.Remove(1) {
		t.Error("Remove of an absent member should report false")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestSetReplace(t *testing.T) {
	var s Set[int]
	s.Add(1)
	s.Add(2)
	s.Add(3)

	stale := s.Replace([]int{2, 3, 4})
	if len(stale) != 1 || stale[0] != 1 {
		t.Errorf("stale = %v, want [1]", stale)
	}
	for _, k := range []int{2, 3, 4} {
		if !s.Contains(k) {
			t.Errorf("expected %d to be alive after Replace", k)
		}
	}
	if s.Contains(1) {
		t.Error("1 should be gone after Replace")
	}

	stale = s.Replace(nil)
	sort.Ints(stale)
	if len(stale) != 3 || stale[0] != 2 || stale[2] != 4 {
		t.Errorf("stale = %v, want [2 3 4]", stale)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestSetClear(t *testing.T) {
	var s Set[string]
	s.Add("a")
	s.Clear()
	if s.Contains("a") || s.Len() != 0 {
		t.Error("Clear should empty the set")
	}
	// The set is usable again after Clear.
	s.Add("b")
	if !s.Contains("b") {
		t.Error("Add after Clear should work")
	}
}

func TestMapRegisterAndLookup(t *testing.T) {
	type testData struct {
		Name  string
		Value int
	}

	var m Map[uintptr, *testData]
	data := &testData{Name: "test", Value: 42}
	m.Register(7, data)

	got, ok := m.Lookup(7)
	if !ok {
		t.Fatal("Lookup should find a registered handle")
	}
	if got.Name != "test" || got.Value != 42 {
		t.Errorf("Lookup returned wrong data: %+v", got)
	}

	if _, ok := m.Lookup(999999); ok {
		t.Error("Lookup of non-existent handle should fail")
	}

	old, ok := m.Unregister(7)
	if !ok || old != data {
		t.Error("Unregister should return the registered value")
	}
	if _, ok := m.Lookup(7); ok {
		t.Error("Expected nothing after Unregister")
	}
}

func TestConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numOps = 100

	var s Set[int]
	var m Map[int, int]
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				k := id*numOps + j
				s.Add(k)
				m.Register(k, j)
				if !s.Contains(k) {
					t.Errorf("Contains returned false for %d", k)
				}
				if v, ok := m.Lookup(k); !ok || v != j {
					t.Errorf("Lookup(%d) = %d, %v", k, v, ok)
				}
				s.Remove(k)
				m.Unregister(k)
			}
		}(i)
	}

	wg.Wait()
	if s.Len() != 0 {
		t.Errorf("leaked handles: set=%d", s.Len())
	}
	for k := 0; k < numGoroutines*numOps; k++ {
		if _, ok := m.Lookup(k); ok {
			t.Fatalf("leaked map handle %d", k)
		}
	}
}

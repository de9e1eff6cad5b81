package splay

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedAgainstModel -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzOperations -fuzztime=10s

// model is a sorted slice of distinct keys, the reference the tree is
// checked against.
type model []int

func (m *model) insert(k int) bool {
	i, found := slices.BinarySearch(*m, k)
	if found {
		return false
	}
	*m = slices.Insert(*m, i, k)
	return true
}

func (m *model) remove(k int) bool {
	i, found := slices.BinarySearch(*m, k)
	if !found {
		return false
	}
	*m = slices.Delete(*m, i, i+1)
	return true
}

func (m model) contains(k int) bool {
	_, found := slices.BinarySearch(m, k)
	return found
}

// lastVisited returns the key of the node where a search for k ends.
func lastVisited(tree *Tree[int], k int) int {
	_, path := tree.findPath(tree.root, k)
	return path.last().key
}

func applyAndCheck(t *testing.T, tree *Tree[int], m *model, op, k int) {
	t.Helper()
	switch op % 3 {
	case 0:
		if got, want := tree.Insert(k), m.insert(k); got != want {
			t.Fatalf("Insert(%d) = %v, model says %v", k, got, want)
		}
		if r, _ := tree.Root(); r != k {
			t.Fatalf("after Insert(%d) root is %d", k, r)
		}
	case 1:
		want := m.contains(k)
		var nearest int
		if !tree.Empty() {
			nearest = lastVisited(tree, k)
		}
		if got := tree.Contains(k); got != want {
			t.Fatalf("Contains(%d) = %v, model says %v", k, got, want)
		}
		if r, ok := tree.Root(); ok && r != nearest {
			t.Fatalf("after Contains(%d) root is %d, expected %d", k, r, nearest)
		}
	default:
		if got, want := tree.Remove(k), m.remove(k); got != want {
			t.Fatalf("Remove(%d) = %v, model says %v", k, got, want)
		}
	}
	if tree.Size() != len(*m) {
		t.Fatalf("size %d, model has %d keys", tree.Size(), len(*m))
	}
	if got := keysOf(tree); !slices.Equal(got, []int(*m)) {
		t.Fatalf("in-order keys %v, model %v", got, *m)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for seed := int64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		tree := NewOrdered[int]()
		var m model
		for i := 0; i < 400; i++ {
			applyAndCheck(t, tree, &m, r.Intn(3), r.Intn(80))
			if i%97 == 0 {
				snapshot := tree.Clone()
				if !snapshot.Equals(tree) {
					t.Fatalf("seed %d: clone differs from source", seed)
				}
			}
		}
	}
}

func FuzzOperations(f *testing.F) {
	f.Add([]byte{0, 50, 0, 30, 0, 70, 1, 60, 2, 60})
	f.Add([]byte{2, 5, 1, 5})
	f.Fuzz(func(t *testing.T, ops []byte) {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		tree := NewOrdered[int]()
		var m model
		for i := 0; i+1 < len(ops); i += 2 {
			applyAndCheck(t, tree, &m, int(ops[i]), int(ops[i+1]))
		}
	})
}

package synced

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/splay"
)

// ErrClosed is returned when watching a tree which has been closed.
var ErrClosed = errors.New("synced: tree is closed")

// Tree is a splay tree guarded by a mutex. All methods may be called
// concurrently.
type Tree[K any] struct {
	mu      sync.Mutex
	tree    *splay.Tree[K]
	seq     uint64
	cast    *caster.Caster // broadcaster for change events
	dropped atomic.Uint64  // events not delivered to slow watchers
	closed  bool
}

// New wraps tree. Clients must not access tree directly afterwards.
func New[K any](tree *splay.Tree[K]) *Tree[K] {
	if tree == nil {
		panic("synced.New: tree is nil")
	}
	return &Tree[K]{
		tree: tree,
		cast: caster.New(nil),
	}
}

// MakeEmpty drops all keys.
func (t *Tree[K]) MakeEmpty() {
	t.mu.Lock()
	t.tree.MakeEmpty()
	ev := t.event(Cleared, *new(K))
	t.mu.Unlock()
	t.publish(ev)
}

// Empty reports whether the tree holds no keys.
func (t *Tree[K]) Empty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Empty()
}

// Size returns the number of keys.
func (t *Tree[K]) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Size()
}

// Insert adds key, see splay.Tree.Insert.
func (t *Tree[K]) Insert(key K) bool {
	t.mu.Lock()
	if !t.tree.Insert(key) {
		t.mu.Unlock()
		return false
	}
	ev := t.event(Inserted, key)
	t.mu.Unlock()
	t.publish(ev)
	return true
}

// Remove deletes key, see splay.Tree.Remove.
func (t *Tree[K]) Remove(key K) bool {
	t.mu.Lock()
	if !t.tree.Remove(key) {
		t.mu.Unlock()
		return false
	}
	ev := t.event(Removed, key)
	t.mu.Unlock()
	t.publish(ev)
	return true
}

// Contains reports whether key is present, see splay.Tree.Contains.
func (t *Tree[K]) Contains(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Contains(key)
}

// Clone returns an independent, unguarded deep copy of the tree.
func (t *Tree[K]) Clone() *splay.Tree[K] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Clone()
}

// Equals reports whether t and other are structurally equal. other is
// copied under its own lock first, so the two locks are never held at the
// same time.
func (t *Tree[K]) Equals(other *Tree[K]) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	snapshot := other.Clone()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Equals(snapshot)
}

// Keys returns a snapshot of all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Collect(t.tree.InOrder())
}

// All returns an iterator over a snapshot of the keys, taken when
// iteration starts.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range t.Keys() {
			if !yield(k) {
				return
			}
		}
	}
}

// Stats returns the restructuring counters of the tree.
func (t *Tree[K]) Stats() splay.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Stats()
}

// Watch subscribes to change events. The returned channel buffers up to
// capacity events and is closed when ctx is done or the tree is closed.
// Events are published outside of the tree's lock. A watcher which does not
// keep up loses events instead of holding up mutating callers; lost events
// are counted by Dropped and show as gaps in Seq.
func (t *Tree[K]) Watch(ctx context.Context, capacity uint) (<-chan Event[K], error) {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}
	sub, ok := t.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	events := make(chan Event[K], capacity)
	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				t.cast.Unsub(sub)
				return
			case msg, ok := <-sub:
				if !ok {
					return
				}
				ev, ok := msg.(Event[K])
				if !ok {
					tracer().Errorf("synced: unexpected message of type %T", msg)
					continue
				}
				select {
				case <-ctx.Done():
					t.cast.Unsub(sub)
					return
				case events <- ev:
				default:
					t.dropped.Add(1)
					tracer().Debugf("synced: watcher full, dropped event %v", ev)
				}
			}
		}
	}()
	tracer().Infof("synced: new watcher with capacity %d", capacity)
	return events, nil
}

// Dropped returns the number of events lost by watchers which did not keep up.
func (t *Tree[K]) Dropped() uint64 {
	return t.dropped.Load()
}

// Close stops broadcasting events and closes all watch channels. The tree
// remains usable.
func (t *Tree[K]) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.mu.Unlock()
	t.cast.Close()
	tracer().Infof("synced: closed")
}

// event creates the next event. t.mu must be held.
func (t *Tree[K]) event(kind EventKind, key K) Event[K] {
	t.seq++
	return Event[K]{Kind: kind, Key: key, Size: t.tree.Size(), Seq: t.seq}
}

func (t *Tree[K]) publish(ev Event[K]) {
	if !t.cast.Pub(ev) {
		tracer().Debugf("synced: event %v not published", ev)
	}
}

package synced

import "fmt"

// EventKind tells what happened to a tree.
type EventKind int8

const (
	Inserted EventKind = iota + 1 // a new key has been inserted
	Removed                       // a key has been removed
	Cleared                       // all keys have been dropped
)

func (k EventKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Cleared:
		return "cleared"
	}
	return fmt.Sprintf("EventKind(%d)", int8(k))
}

// Event describes a change of a tree.
//
// Events are published after the lock of the tree has been released. Seq
// numbers are assigned under the lock and strictly increase, so watchers may
// use them to order events of concurrent mutators. Size is the number of keys
// right after the change.
type Event[K any] struct {
	Kind EventKind
	Key  K // zero for Cleared
	Size int
	Seq  uint64
}

func (e Event[K]) String() string {
	if e.Kind == Cleared {
		return fmt.Sprintf("#%d %s (size %d)", e.Seq, e.Kind, e.Size)
	}
	return fmt.Sprintf("#%d %s %v (size %d)", e.Seq, e.Kind, e.Key, e.Size)
}

/*
Package synced makes splay trees safe for use by multiple goroutines.

With splay trees every access re-shapes the tree, lookups included. There is
no useful distinction between readers and writers, so a tree is guarded by a
single mutex which is held for the full duration of each operation.

Clients may watch a tree for changes. Successful insertions and removals, as
well as clearing the tree, are broadcast to all watchers as events.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package synced

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splay'
func tracer() tracing.Trace {
	return tracing.Select("splay")
}

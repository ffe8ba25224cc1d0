/*
Package treebuf implements the node storage layer for ordered, balanced
multiway search trees (B-tree style ordered maps and sets).

A tree node is represented by a Storage allocation: a header (element count,
subtree element count) plus fixed-capacity buffers for keys, values and —
for internal nodes — child references. Storage is never mutated through a
shared reference. The public Node type is a thin handle over one storage;
copying a handle (Clone) shares the storage, and a later Update on either
handle copies the storage lazily before writing (copy-on-write). Sharing is
therefore an internal optimization, visible only as a cost, never as a
correctness concern.

Access to node contents is scoped: Read and Update pass a transient view to
a closure, and a mutable view's backing storage is guaranteed to have
exactly one owner for the duration of the call. On every exit from an
Update body the storage invariants are re-checked; a violation is a
programmer error in the tree-algorithm layer above and aborts with a panic.

The layer deliberately contains no tree algorithms. Splitting, merging,
rebalancing, key ordering and capacity policy all live above it; the raw
reference-counted buffer primitive lives below it, in package buffer.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package treebuf

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

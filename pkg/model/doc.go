// Package model implements the diagram cell store: cells, layers,
// groups, and the operations that mutate them.
//
// # Overview
//
// A [Model] owns every cell and layer record for one diagram instance,
// generates ids, and tracks the active layer. Cells are a tagged variant
// ([Cell] with a [VertexData] or [EdgeData] payload) so vertex- and
// edge-specific handling stays exhaustive.
//
// # Invariants
//
// The model maintains these invariants across all operations:
//
//   - Edge endpoints reference existing cells at creation and edit time.
//     Deleting a vertex cascades to every edge referencing it, atomically.
//   - A group's child list is exactly the set of cells whose parent is
//     the group's id. Add/remove-from-group keeps both sides consistent.
//   - The active layer always names an existing layer. The default layer
//     (id "1") always exists and cannot be removed.
//   - Id counters are monotonic and never reused, even after deletion.
//     Cell ids ("cell-N") and layer ids ("layer-N") never collide.
//
// # Lifecycle
//
// [New] bootstraps the default layer. [Model.Clear] and [Model.Restore]
// fully replace state: counters reset (or reseed from imported ids), the
// default layer is restored, and all prior state is discarded.
//
// # Batches
//
// [Model.BatchAddCells] validates the entire request sequence before
// applying anything: any invalid entry fails the whole batch with zero
// mutation. The other batch operations apply their single-item
// counterpart per entry independently.
//
// # Concurrency
//
// Model instances are not safe for concurrent use. Each operation runs
// to completion before the next is accepted; callers sharing an instance
// across goroutines must synchronize externally.
package model

// Package mxfile converts between the diagram model and the
// diagrams.net XML interchange format.
//
// # Export
//
// [Export] produces a single-page mxfile document: non-default layer
// declarations, then cell elements, all hanging off the reserved
// bookkeeping cells "0" and "1". Group vertices gain a non-connectable
// marker and a container style token. The active layer id is recorded
// on the document root so a round trip restores it. With the Compress
// option the page body is routed through the legacy deflate codec.
//
// # Import
//
// [Import] accepts either a full mxfile document or a bare mxGraphModel
// element, plain or compressed, with any number of pages. Pages parse
// independently and merge flat (later page wins id collisions); group
// children are rebuilt from parent pointers after the merge, and the
// cell-id counter reseeds past the highest numeric token found in the
// imported ids. Import fully replaces the model state.
//
// # Errors
//
// Structural failures return coded errors: EMPTY_XML for blank input,
// INVALID_XML when neither recognized top-level marker is present or a
// page cannot be parsed.
package mxfile

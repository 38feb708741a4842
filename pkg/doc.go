// Package pkg provides the core libraries for working with draw.io
// diagram files.
//
// # Overview
//
// The pkg directory is organized around the flow of a diagram through
// the system:
//
//	in-memory graph        [model]  cells, layers, groups, batches, stats
//	         ↓
//	serialization          [mxfile] mxfile/mxGraphModel XML codec
//	         ↓
//	legacy encoding        [deflate] percent-encode → raw deflate → base64
//	         ↓
//	post-processing        [placeholder] stand-in shape resolution on XML
//	         ↓
//	persistence            [store] memory, file, redis, mongo backends
//
// Supporting packages: [style] parses and edits draw.io style token
// strings, [shapes] is the TOML shape library backing placeholder
// resolution, [errors] carries structured error codes across the CLI
// and HTTP API, and [buildinfo] holds ldflags-injected version data.
//
// # Quick Start
//
// Build a small diagram and serialize it:
//
//	m := model.New()
//	a := m.AddRectangle(model.Rectangle{Text: ptr("API")})
//	b := m.AddRectangle(model.Rectangle{Text: ptr("DB")})
//	m.AddEdge(a.ID, b.ID, model.EdgeOptions{})
//
//	xml, _ := mxfile.Export(m, mxfile.ExportOptions{})
//
// Read it back, compressed pages included:
//
//	m2 := model.New()
//	result, _ := mxfile.Import(m2, xml)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/mxfile/...    # Specific package
//
// [model]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/model
// [mxfile]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/mxfile
// [deflate]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/deflate
// [placeholder]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/placeholder
// [store]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/store
// [style]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/style
// [shapes]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/shapes
// [errors]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/simonkurtz-MSFT/drawio-go/pkg/buildinfo
package pkg

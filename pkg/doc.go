// Package pkg provides the core libraries for autoframe.
//
// # Overview
//
// Autoframe turns containers whose children were placed by hand into
// auto-layout frames. It looks at the child rectangles of a frame, decides
// whether they form a vertical or horizontal stack, estimates the spacing
// between them and the padding around them, and writes that configuration
// back onto the container.
//
//  1. [autolayout] - Classification, spacing and padding estimation, overrides
//  2. [scene] - The host scene document (nodes, selection, JSON/TOML files)
//  3. [pipeline] - Batch conversion of a selection with per-container outcomes
//  4. [bridge] - The plugin message exchange over a Host
//  5. [session] - Bridge sessions kept for the HTTP API
//  6. [errors] - Coded errors shared by every layer
//  7. [observability] - Hooks for tracing conversions and HTTP requests
//
// # Architecture
//
//	scene.Document (selection)
//	         ↓
//	    [pipeline] Runner.Convert, one container at a time
//	         ↓
//	    [autolayout] Analyze → Resolve(overrides)
//	         ↓
//	    scene.Node.ApplyLayout → Result{success, failed, messages}
//
// # Quick Start
//
//	doc, err := scene.ReadFile("card.json")
//	if err != nil {
//	    return err
//	}
//	nodes, err := doc.Selected()
//	if err != nil {
//	    return err
//	}
//	result, err := pipeline.NewRunner(nil).Convert(ctx, pipeline.Selection(nodes), pipeline.Options{})
//	if err != nil {
//	    return err // errors.ErrCodeEmptySelection when nothing is selected
//	}
//	fmt.Println(result.Summary())
//
// [autolayout]: https://pkg.go.dev/github.com/matzehuels/autoframe/pkg/autolayout
// [scene]: https://pkg.go.dev/github.com/matzehuels/autoframe/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/autoframe/pkg/pipeline
// [bridge]: https://pkg.go.dev/github.com/matzehuels/autoframe/pkg/bridge
// [session]: https://pkg.go.dev/github.com/matzehuels/autoframe/pkg/session
// [errors]: https://pkg.go.dev/github.com/matzehuels/autoframe/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/autoframe/pkg/observability
package pkg

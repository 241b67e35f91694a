// Package scene provides an in-memory host model for design documents.
//
// A design tool owns the real layers; this package stands in for it so that
// the conversion pipeline can run from the CLI, the message bridge and the
// HTTP API without one. It defines the layer tree ([Node]), the document with
// its current selection ([Document]) and their file formats.
//
// # Nodes
//
// Every [Node] carries a type tag, a name, its bounds relative to its parent,
// and an optional auto-layout block ([Layout]). Nodes implement the
// pipeline's container contract:
//
//	n.NodeType()     // FRAME, GROUP, TEXT, ...
//	n.NodeName()     // used in user messages
//	n.Bounds()       // own box
//	n.ChildBounds()  // direct children, in list order
//	n.ApplyLayout(c) // write an autolayout.Config
//
// Locked nodes reject every property write with an ErrCodeHostWrite error,
// which is how a host refusing a mutation is modelled.
//
// # Documents
//
// Documents are stored as JSON or TOML (chosen by file extension):
//
//	{
//	  "name": "Landing page",
//	  "selection": ["card"],
//	  "nodes": [
//	    {"id": "card", "name": "Card", "type": "FRAME", "width": 200, "height": 120,
//	     "children": [{"id": "title", "name": "Title", "type": "TEXT", "x": 16, "y": 16, "width": 168, "height": 24}]}
//	  ]
//	}
//
// Nodes without an ID receive a random UUID when the document is loaded.
package scene

package scene

import (
	"github.com/google/uuid"

	"github.com/matzehuels/autoframe/pkg/errors"
)

// Document is a scene: a forest of top-level layers plus the IDs of the
// layers the user has selected, in selection order.
type Document struct {
	Name      string   `json:"name,omitempty" toml:"name,omitempty"`
	Selection []string `json:"selection,omitempty" toml:"selection,omitempty"`
	Nodes     []*Node  `json:"nodes" toml:"nodes"`
}

// Find returns the node with the given ID, searching depth-first, or nil.
func (d *Document) Find(id string) *Node {
	var found *Node
	for _, root := range d.Nodes {
		root.walk(func(n *Node) bool {
			if n.ID == id {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// Select replaces the current selection. Every ID must exist.
func (d *Document) Select(ids []string) error {
	for _, id := range ids {
		if d.Find(id) == nil {
			return errors.New(errors.ErrCodeNodeNotFound, "selected layer %q does not exist", id)
		}
	}
	d.Selection = append([]string(nil), ids...)
	return nil
}

// Selected resolves the selection to nodes, preserving selection order.
func (d *Document) Selected() ([]*Node, error) {
	nodes := make([]*Node, 0, len(d.Selection))
	for _, id := range d.Selection {
		n := d.Find(id)
		if n == nil {
			return nil, errors.New(errors.ErrCodeNodeNotFound, "selected layer %q does not exist", id)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Normalize assigns a UUID to every node without an ID and validates IDs and
// geometry. IDs must be unique across the document and null entries in a
// layer list are rejected.
func (d *Document) Normalize() error {
	seen := make(map[string]bool)
	var err error
	for i, root := range d.Nodes {
		if root == nil {
			return errors.New(errors.ErrCodeInvalidDocument, "layer %d is null", i)
		}
		root.walk(func(n *Node) bool {
			for j, c := range n.Children {
				if c == nil {
					err = errors.New(errors.ErrCodeInvalidDocument, "child %d of layer %q is null", j, n.NodeName())
					return false
				}
			}
			if n.ID == "" {
				n.ID = uuid.NewString()
			}
			if err = errors.ValidateNodeID(n.ID); err != nil {
				return false
			}
			if seen[n.ID] {
				err = errors.New(errors.ErrCodeInvalidDocument, "duplicate layer id %q", n.ID)
				return false
			}
			seen[n.ID] = true
			if n.Type == "" {
				err = errors.New(errors.ErrCodeInvalidDocument, "layer %q has no type", n.ID)
				return false
			}
			err = errors.ValidateBox(n.NodeName(), n.X, n.Y, n.Width, n.Height)
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// NodeCount returns the number of layers in the document.
func (d *Document) NodeCount() int {
	count := 0
	for _, root := range d.Nodes {
		root.walk(func(*Node) bool {
			count++
			return true
		})
	}
	return count
}

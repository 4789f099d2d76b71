// Package commenttree turns the flat comment list of a product into the
// bounded reply tree shown on the product page.
package commenttree

import "music-storefront/internal/domain"

// Limits used when the caller does not override them.
const (
	DefaultMaxDepth           = 3
	DefaultMaxChildrenPerNode = 3
)

// Options bounds the size of the tree returned by Build.
type Options struct {
	// MaxDepth is the deepest level that is rendered, roots being level 1.
	// Nodes on that level keep their place but lose their replies, and
	// HasMoreChildren is set on them when replies were cut, the same as for
	// the width cap.
	MaxDepth int
	// MaxChildrenPerNode caps the replies rendered under one comment.
	MaxChildrenPerNode int
}

// DefaultOptions returns DefaultMaxDepth and DefaultMaxChildrenPerNode.
func DefaultOptions() Options {
	return Options{
		MaxDepth:           DefaultMaxDepth,
		MaxChildrenPerNode: DefaultMaxChildrenPerNode,
	}
}

func (o Options) normalize() Options {
	if o.MaxDepth < 1 {
		o.MaxDepth = 1
	}
	if o.MaxChildrenPerNode < 0 {
		o.MaxChildrenPerNode = 0
	}
	return o
}

// Build links comments to their parents and trims the result to opts. A
// comment whose parent is missing from the input, is itself, or is one of its
// own replies becomes a root. Input order decides sibling order.
func Build(comments []domain.Comment, opts Options) []*domain.CommentNode {
	opts = opts.normalize()

	nodes := make([]*domain.CommentNode, len(comments))
	byID := make(map[domain.ID]*domain.CommentNode, len(comments))
	for i := range comments {
		node := &domain.CommentNode{
			Comment:  comments[i],
			Children: []*domain.CommentNode{},
		}
		nodes[i] = node
		if _, seen := byID[node.ID]; !seen {
			byID[node.ID] = node
		}
	}

	parentOf := make(map[*domain.CommentNode]*domain.CommentNode, len(comments))
	roots := make([]*domain.CommentNode, 0)
	for _, node := range nodes {
		parent := resolveParent(node, byID, parentOf)
		if parent == nil {
			roots = append(roots, node)
			continue
		}
		parentOf[node] = parent
		parent.Children = append(parent.Children, node)
	}

	trim(roots, 1, opts)
	return roots
}

func resolveParent(node *domain.CommentNode, byID map[domain.ID]*domain.CommentNode, parentOf map[*domain.CommentNode]*domain.CommentNode) *domain.CommentNode {
	if node.ParentID == nil || node.ParentID.IsZero() {
		return nil
	}
	parent, ok := byID[*node.ParentID]
	if !ok {
		return nil
	}

	// Linking under one of its own replies would close a loop.
	for ancestor := parent; ancestor != nil; ancestor = parentOf[ancestor] {
		if ancestor == node {
			return nil
		}
	}
	return parent
}

func trim(nodes []*domain.CommentNode, depth int, opts Options) {
	for _, node := range nodes {
		if depth >= opts.MaxDepth {
			if len(node.Children) > 0 {
				node.HasMoreChildren = true
			}
			node.Children = []*domain.CommentNode{}
			continue
		}

		if len(node.Children) > opts.MaxChildrenPerNode {
			node.Children = node.Children[:opts.MaxChildrenPerNode:opts.MaxChildrenPerNode]
			node.HasMoreChildren = true
		}
		trim(node.Children, depth+1, opts)
	}
}

// Walk visits every node depth first, roots at depth 1.
func Walk(forest []*domain.CommentNode, fn func(node *domain.CommentNode, depth int)) {
	var walk func(nodes []*domain.CommentNode, depth int)
	walk = func(nodes []*domain.CommentNode, depth int) {
		for _, node := range nodes {
			fn(node, depth)
			walk(node.Children, depth+1)
		}
	}
	walk(forest, 1)
}

// Count returns the number of nodes reachable in forest.
func Count(forest []*domain.CommentNode) int {
	n := 0
	Walk(forest, func(*domain.CommentNode, int) { n++ })
	return n
}

package primitive

import "slices"

// Group is an ordered container of painted shapes.
type Group struct {
	children  []*Shape
	destroyed bool
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends a shape. It panics if the group was destroyed.
func (g *Group) Add(s *Shape) {
	if g.destroyed {
		panic("primitive: add to destroyed group")
	}
	g.children = append(g.children, s)
}

// Remove detaches s and reports whether it was present.
func (g *Group) Remove(s *Shape) bool {
	i := slices.Index(g.children, s)
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	return true
}

// Clear removes every child.
func (g *Group) Clear() {
	clear(g.children)
	g.children = g.children[:0]
}

// Children returns the shapes in paint order.
func (g *Group) Children() []*Shape { return g.children }

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// BBox returns the union of the children's bounds.
func (g *Group) BBox() BBox {
	b := EmptyBBox()
	for _, c := range g.children {
		b = b.Union(c.BBox())
	}
	if b.IsEmpty() {
		return BBox{}
	}
	return b
}

// Destroy removes every child and marks the group unusable.
func (g *Group) Destroy() {
	g.Clear()
	g.destroyed = true
}

// Destroyed reports whether Destroy was called.
func (g *Group) Destroyed() bool { return g.destroyed }

package element

import "errors"

// SkipChildren may be returned by a WalkFunc to skip the children of the
// current element.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every element visited by Walk. depth is 0 for the
// root.
type WalkFunc func(e *Element, depth int) error

// Walk visits root and its descendants depth-first, parents before
// children, children in insertion order.
func Walk(root *Element, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	err := walk(root, 0, fn)
	if err == SkipChildren {
		return nil
	}
	return err
}

func walk(e *Element, depth int, fn WalkFunc) error {
	if err := fn(e, depth); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, c := range e.children {
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of elements of each kind in the tree.
func Count(root *Element) map[Kind]int {
	counts := make(map[Kind]int)
	_ = Walk(root, func(e *Element, _ int) error {
		counts[e.kind]++
		return nil
	})
	return counts
}

// Root follows parent pointers up to the top of the tree.
func (e *Element) Root() *Element {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth is the number of ancestors of e.
func (e *Element) Depth() int {
	d := 0
	for p := e.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

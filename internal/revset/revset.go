package revset

import "fmt"

// Revset is a Sapling revision-set expression, e.g. "bottom::top and bookmark()".
type Revset struct {
	expr string
}

// New wraps a raw expression.
func New(expr string) Revset {
	return Revset{expr: expr}
}

// BottomParent selects the parent of the oldest commit in the working stack.
func BottomParent() Revset {
	return New("bottom^")
}

// BookmarkedRange selects the bookmarked commits of the working stack, oldest first.
func BookmarkedRange() Revset {
	return New("bottom::top and bookmark()")
}

// Segment selects every commit reachable from base to head, excluding base.
func Segment(base, head string) Revset {
	return New(fmt.Sprintf("%s::%s - %s", base, head, base))
}

// String returns the expression as passed to `sl log -r`.
func (r Revset) String() string {
	return r.expr
}

// IsEmpty reports whether the expression is blank.
func (r Revset) IsEmpty() bool {
	return r.expr == ""
}

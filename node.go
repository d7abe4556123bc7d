package wren

import (
	"slices"
	"strings"
)

// capture records where a pattern binds a name, by segment depth. Partial
// captures additionally record the fixed text to strip from the segment when
// binding the remainder.
type capture struct {
	key     string
	prefix  string
	suffix  string
	depth   int
	partial bool
}

// leaf carries the value attached to a complete pattern, along with the
// bindings needed to build the [Params] of a successful match. Bindings live
// on the leaf rather than on edges so that patterns sharing a node under
// different names, e.g. "{a}/x" and "{b}/y", each bind their own name.
type leaf[T any] struct {
	value    T
	pattern  string
	captures []capture
}

// partialEdge matches a segment that starts with prefix, ends with suffix and
// keeps a non-empty remainder between the two.
type partialEdge[T any] struct {
	prefix string
	suffix string
	child  *node[T]
}

func (e partialEdge[T]) match(s string) bool {
	return len(s) > len(e.prefix)+len(e.suffix) &&
		strings.HasPrefix(s, e.prefix) &&
		strings.HasSuffix(s, e.suffix)
}

// node is one depth level of the trie. Children are partitioned by matcher
// class; the resolver tries the classes in declaration order below.
type node[T any] struct {
	// statics map a segment verbatim to its child.
	statics map[string]*node[T]
	// partials are tried in registration order, which is the tie-break order
	// between overlapping partial matchers.
	partials []partialEdge[T]
	// param and wildcard are the single designated slots for ":name" and "*"
	// components. The binding keys live on leaves, not here.
	param    *node[T]
	wildcard *node[T]
	// catchAll is terminal, no child can follow a "**" component.
	catchAll *leaf[T]
	// leaf is set when a pattern ends at this node.
	leaf *leaf[T]
}

func (n *node[T]) addStaticEdge(key string) *node[T] {
	if n.statics == nil {
		n.statics = make(map[string]*node[T])
	}
	if child, ok := n.statics[key]; ok {
		return child
	}
	child := &node[T]{}
	n.statics[key] = child
	return child
}

// addPartialEdge gets or appends the edge for the given fixed prefix and
// suffix. Capture and wildcard variants with the same fixed text share one
// edge since they accept exactly the same segments.
func (n *node[T]) addPartialEdge(prefix, suffix string) *node[T] {
	for _, e := range n.partials {
		if e.prefix == prefix && e.suffix == suffix {
			return e.child
		}
	}
	child := &node[T]{}
	n.partials = append(n.partials, partialEdge[T]{prefix: prefix, suffix: suffix, child: child})
	return child
}

func (n *node[T]) addParamEdge() *node[T] {
	if n.param == nil {
		n.param = &node[T]{}
	}
	return n.param
}

func (n *node[T]) addWildcardEdge() *node[T] {
	if n.wildcard == nil {
		n.wildcard = &node[T]{}
	}
	return n.wildcard
}

func (n *node[T]) String() string {
	return n.string(0, "root")
}

func (n *node[T]) string(space int, key string) string {
	sb := strings.Builder{}
	sb.WriteString(strings.Repeat(" ", space))
	sb.WriteString("path: ")
	sb.WriteString(key)
	if n.leaf != nil {
		sb.WriteString(" [leaf=")
		sb.WriteString(n.leaf.pattern)
		sb.WriteByte(']')
	}
	if n.catchAll != nil {
		sb.WriteString(" [catch-all=")
		sb.WriteString(n.catchAll.pattern)
		sb.WriteByte(']')
	}
	sb.WriteByte('\n')

	statics := make([]string, 0, len(n.statics))
	for k := range n.statics {
		statics = append(statics, k)
	}
	slices.Sort(statics)
	for _, k := range statics {
		sb.WriteString(n.statics[k].string(space+4, k))
	}
	for _, e := range n.partials {
		sb.WriteString(e.child.string(space+4, e.prefix+"{}"+e.suffix))
	}
	if n.param != nil {
		sb.WriteString(n.param.string(space+4, ":param"))
	}
	if n.wildcard != nil {
		sb.WriteString(n.wildcard.string(space+4, "*"))
	}
	return sb.String()
}

// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

package wren

import (
	"fmt"
	"iter"

	"github.com/wren-go/wren/internal/segment"
)

// Builder accumulates route patterns and their values before the tree is
// finalized with [Builder.Build]. A Builder is single-writer: registration is
// not safe for concurrent use without external synchronization. This is the
// mutable half of the builder to tree transition; once Build has been called
// the builder is sealed and any further Add fails with [ErrSealed].
type Builder[T any] struct {
	root   *node[T]
	sep    byte
	sealed bool
}

// NewBuilder returns an empty builder using [DefaultSeparator].
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{root: &node[T]{}, sep: DefaultSeparator}
}

// NewBuilderWithSeparator returns an empty builder splitting patterns and
// paths on sep. Separators that collide with the pattern syntax are rejected
// with an error wrapping [ErrInvalidConfig].
func NewBuilderWithSeparator[T any](sep byte) (*Builder[T], error) {
	if err := validateSeparator(sep); err != nil {
		return nil, err
	}
	return &Builder[T]{root: &node[T]{}, sep: sep}, nil
}

func validateSeparator(sep byte) error {
	switch sep {
	case 0:
		return fmt.Errorf("%w: separator cannot be the zero byte", ErrInvalidConfig)
	case paramDelim, starDelim, bracketDelim, bracketClose:
		return fmt.Errorf("%w: separator %q collides with the pattern syntax", ErrInvalidConfig, sep)
	}
	return nil
}

// Add registers pattern with its value. The empty pattern, or a pattern made
// only of separators, registers the zero-segment route matched by "" and "/".
//
// Registering a pattern that maps to an already occupied slot overwrites the
// previous value: the last registration wins. Note that two spellings can
// occupy the same slot without being textually identical, e.g. "{a}/x" and
// "{b}/x" describe the same structural route and the second registration
// replaces the first, bindings included.
//
// Add returns an error wrapping [ErrUnreachablePattern] when a segment
// follows a catch-all token, and [ErrSealed] when the builder has already
// been finalized.
func (b *Builder[T]) Add(pattern string, value T) error {
	if b.sealed {
		return fmt.Errorf("%w: cannot add %q after Build", ErrSealed, pattern)
	}

	var comps []component
	for token := range segment.Split(pattern, b.sep) {
		comps = append(comps, parseComponent(token))
	}
	for i, c := range comps {
		if c.kind == kindCatchAll && i != len(comps)-1 {
			return fmt.Errorf("%w: %q declares segments after %q", ErrUnreachablePattern, pattern, catchAllToken)
		}
	}

	n := b.root
	var captures []capture
	for depth, c := range comps {
		switch c.kind {
		case kindLiteral:
			n = n.addStaticEdge(c.text)
		case kindParam:
			captures = append(captures, capture{key: c.key, depth: depth})
			n = n.addParamEdge()
		case kindWildcard:
			n = n.addWildcardEdge()
		case kindPartialCapture:
			captures = append(captures, capture{key: c.key, prefix: c.prefix, suffix: c.suffix, depth: depth, partial: true})
			n = n.addPartialEdge(c.prefix, c.suffix)
		case kindPartialWildcard:
			n = n.addPartialEdge(c.prefix, c.suffix)
		case kindCatchAll:
			n.catchAll = &leaf[T]{value: value, pattern: pattern, captures: captures}
			return nil
		default:
			panic("internal error: unknown component kind")
		}
	}
	n.leaf = &leaf[T]{value: value, pattern: pattern, captures: captures}
	return nil
}

// Build seals the builder and returns the finalized tree. The tree is
// immutable: resolving paths against it is side-effect-free and safe for
// concurrent use without locking.
func (b *Builder[T]) Build() *Tree[T] {
	b.sealed = true
	return &Tree[T]{root: b.root, sep: b.sep}
}

// Tree resolves paths against the patterns registered on its [Builder].
// Lookup cost is bounded by the number of path segments, not by the number of
// registered routes.
type Tree[T any] struct {
	root *node[T]
	sep  byte
}

// matchClass orders the alternatives tried for one segment at one node. The
// resolver works through the classes in this order and never revisits an
// earlier class at the same node, but it does resume at the next alternative
// when a chosen subtree dead-ends deeper in the path.
type matchClass uint8

const (
	classStatic matchClass = iota
	classPartial
	classParam
	classWildcard
	classCatchAll
)

// frame is one level of the explicit depth-first search stack. An explicit
// stack bounds worst-case memory on attacker-controlled path depths where
// native recursion would not.
type frame[T any] struct {
	n     *node[T]
	depth int
	class matchClass
	pidx  int
}

// Lookup resolves path to the value of the best matching pattern and its
// captured parameters. It reports ok == false when no registered pattern
// matches; there is no partial-match outcome. Lookup never panics on any
// input and allocates a fresh [Params] per call.
//
// For each segment the matcher classes are tried in order: static, partial
// matchers in registration order, named parameter, wildcard, catch-all. The
// search backtracks to the next alternative when a branch fails to resolve
// the remaining path. A catch-all matches the whole remaining tail, including
// the empty one: "prefix/**" matches "/prefix" with zero tail segments.
func (t *Tree[T]) Lookup(path string) (value T, ps Params, ok bool) {
	segs := make([]string, 0, 16)
	for s := range segment.Split(path, t.sep) {
		segs = append(segs, s)
	}

	stack := make([]frame[T], 0, len(segs)+1)
	stack = append(stack, frame[T]{n: t.root})

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.depth == len(segs) {
			if f.n.leaf != nil {
				return f.n.leaf.value, bindParams(f.n.leaf, segs), true
			}
			if f.n.catchAll != nil {
				lf := f.n.catchAll
				ps := bindParams(lf, segs)
				ps.catchAll = segs[len(segs):]
				return lf.value, ps, true
			}
			stack = stack[:len(stack)-1]
			continue
		}
		seg := segs[f.depth]

		switch f.class {
		case classStatic:
			f.class = classPartial
			if child, found := f.n.statics[seg]; found {
				stack = append(stack, frame[T]{n: child, depth: f.depth + 1})
			}
		case classPartial:
			pushed := false
			for f.pidx < len(f.n.partials) {
				e := f.n.partials[f.pidx]
				f.pidx++
				if e.match(seg) {
					stack = append(stack, frame[T]{n: e.child, depth: f.depth + 1})
					pushed = true
					break
				}
			}
			if !pushed {
				f.class = classParam
			}
		case classParam:
			f.class = classWildcard
			if f.n.param != nil {
				stack = append(stack, frame[T]{n: f.n.param, depth: f.depth + 1})
			}
		case classWildcard:
			f.class = classCatchAll
			if f.n.wildcard != nil {
				stack = append(stack, frame[T]{n: f.n.wildcard, depth: f.depth + 1})
			}
		case classCatchAll:
			if f.n.catchAll != nil {
				lf := f.n.catchAll
				ps := bindParams(lf, segs)
				ps.catchAll = segs[f.depth:]
				return lf.value, ps, true
			}
			stack = stack[:len(stack)-1]
		}
	}

	var zero T
	return zero, Params{}, false
}

// bindParams builds the result parameters from the leaf's recorded captures
// and the matched segments. Bindings are resolved here rather than during the
// walk so that backtracking never has to undo partial results.
func bindParams[T any](lf *leaf[T], segs []string) Params {
	if len(lf.captures) == 0 {
		return Params{}
	}
	kv := make([]Param, 0, len(lf.captures))
	for _, c := range lf.captures {
		s := segs[c.depth]
		if c.partial {
			s = s[len(c.prefix) : len(s)-len(c.suffix)]
		}
		kv = append(kv, Param{Key: c.key, Value: s})
	}
	return Params{kv: kv}
}

// All returns a sequence over every registered pattern and its value, in
// depth-first order. The sequence is restartable and safe for concurrent use
// on a built tree.
func (t *Tree[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		walk(t.root, yield)
	}
}

func walk[T any](n *node[T], yield func(string, T) bool) bool {
	if n.leaf != nil && !yield(n.leaf.pattern, n.leaf.value) {
		return false
	}
	if n.catchAll != nil && !yield(n.catchAll.pattern, n.catchAll.value) {
		return false
	}
	for _, child := range n.statics {
		if !walk(child, yield) {
			return false
		}
	}
	for _, e := range n.partials {
		if !walk(e.child, yield) {
			return false
		}
	}
	if n.param != nil && !walk(n.param, yield) {
		return false
	}
	if n.wildcard != nil && !walk(n.wildcard, yield) {
		return false
	}
	return true
}

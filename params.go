// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

package wren

// Param is a single captured route parameter.
type Param struct {
	Key   string
	Value string
}

// emptySegments is returned by CatchAll when the matched route carries no
// catch-all. Callers must not mutate it.
var emptySegments = make([]string, 0)

// Params holds the parameters captured while resolving a path: named segment
// captures in pattern order plus, when the matched route ends with a
// catch-all, the ordered tail of unconsumed segments. The zero value is ready
// to use.
type Params struct {
	kv       []Param
	catchAll []string
}

// Get returns the value bound to name. When the same name is bound more than
// once along a pattern, the deepest binding wins.
func (p Params) Get(name string) (string, bool) {
	for i := len(p.kv) - 1; i >= 0; i-- {
		if p.kv[i].Key == name {
			return p.kv[i].Value, true
		}
	}
	return "", false
}

// Has checks whether a parameter exists by name.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Len returns the number of captured parameters, excluding the catch-all tail.
func (p Params) Len() int {
	return len(p.kv)
}

// At returns the i-th captured parameter in pattern order.
func (p Params) At(i int) Param {
	return p.kv[i]
}

// CatchAll returns the ordered segments consumed by the catch-all token of
// the matched route. It is empty, never nil, when the route has no catch-all
// or when the catch-all matched zero segments; use [Params.HasCatchAll] to
// tell the two apart. Callers must not mutate the returned slice.
func (p Params) CatchAll() []string {
	if p.catchAll == nil {
		return emptySegments
	}
	return p.catchAll
}

// HasCatchAll reports whether the matched route ends with a catch-all token.
// It returns true even when the catch-all consumed zero segments.
func (p Params) HasCatchAll() bool {
	return p.catchAll != nil
}

// Clone makes a deep copy of p.
func (p Params) Clone() Params {
	var cloned Params
	if p.kv != nil {
		cloned.kv = make([]Param, len(p.kv))
		copy(cloned.kv, p.kv)
	}
	if p.catchAll != nil {
		cloned.catchAll = make([]string, len(p.catchAll))
		copy(cloned.catchAll, p.catchAll)
	}
	return cloned
}

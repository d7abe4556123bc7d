// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

// Package segment provides lazy iterators over the non-empty segments of a
// delimited string. The sequences are pure closures: each range statement
// restarts from the beginning and concurrent readers of the same sequence
// never share position.
package segment

import "iter"

// Split returns a sequence over the non-empty segments of s, in left-to-right
// order. Leading, trailing and consecutive separators are collapsed, so
// "/a//b/" and "a/b" both yield "a" then "b". An empty string, or a string
// made only of separators, yields nothing.
func Split(s string, sep byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(s); {
			for i < len(s) && s[i] == sep {
				i++
			}
			start := i
			for i < len(s) && s[i] != sep {
				i++
			}
			if i > start && !yield(s[start:i]) {
				return
			}
		}
	}
}

// SplitN behaves like [Split] for the first n splits, then yields a single
// final segment holding the untouched remainder of s, separators included,
// starting at the first unconsumed non-separator character. It yields at most
// n+1 segments. SplitN(s, sep, 0) yields the whole string, less leading
// separators, in one segment and a negative n is equivalent to [Split].
func SplitN(s string, sep byte, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		var splits int
		for i := 0; i < len(s); {
			for i < len(s) && s[i] == sep {
				i++
			}
			if i == len(s) {
				return
			}
			if splits == n {
				yield(s[i:])
				return
			}
			start := i
			for i < len(s) && s[i] != sep {
				i++
			}
			if !yield(s[start:i]) {
				return
			}
			splits++
		}
	}
}

// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

package wren

import "strings"

const (
	// DefaultSeparator is the segment separator used unless overridden with
	// [WithSeparator].
	DefaultSeparator byte = '/'

	paramDelim    byte = ':'
	starDelim     byte = '*'
	bracketDelim  byte = '{'
	bracketClose  byte = '}'
	wildcardToken      = "*"
	catchAllToken      = "**"
)

type componentKind uint8

const (
	kindLiteral componentKind = iota
	kindParam
	kindWildcard
	kindPartialCapture
	kindPartialWildcard
	kindCatchAll
)

// component is one classified token of a route pattern. The kind set is
// closed: every consumer dispatches over it with an exhaustive switch so the
// matching priority order stays in a single place instead of being scattered
// across polymorphic matcher types.
type component struct {
	kind componentKind
	// text holds the raw token. It is the exact match key for kindLiteral.
	text string
	// key is the binding key for kindParam and kindPartialCapture.
	key string
	// prefix and suffix hold the fixed text surrounding the captured part of
	// a partial matcher. At least one of them is non-empty, otherwise the
	// token degenerates to kindParam or kindWildcard.
	prefix string
	suffix string
}

// parseComponent classifies a single pattern token.
//
//   - "**" is a catch-all and "*" a single-segment wildcard.
//   - ":name" and "{name}" are single-segment captures binding "name".
//   - "{}" is equivalent to "*".
//   - a balanced "{name}" group with surrounding text, e.g. "{file}.jpg",
//     captures only the part of the segment between its fixed prefix and
//     suffix. With an empty name, or with "*" in place of the group, the
//     remainder is matched but not bound.
//   - anything else, including tokens with an unbalanced brace, is a literal.
//
// The bare ":" token has no name to bind and is treated as a literal.
func parseComponent(token string) component {
	switch token {
	case catchAllToken:
		return component{kind: kindCatchAll, text: token}
	case wildcardToken:
		return component{kind: kindWildcard, text: token}
	}

	if len(token) > 1 && token[0] == paramDelim {
		return component{kind: kindParam, text: token, key: token[1:]}
	}

	if open := strings.IndexByte(token, bracketDelim); open >= 0 {
		end := strings.IndexByte(token[open:], bracketClose)
		if end < 0 {
			// Unbalanced brace, the whole token is a literal.
			return component{kind: kindLiteral, text: token}
		}
		end += open
		prefix, key, suffix := token[:open], token[open+1:end], token[end+1:]
		if prefix == "" && suffix == "" {
			if key == "" {
				return component{kind: kindWildcard, text: token}
			}
			return component{kind: kindParam, text: token, key: key}
		}
		if key == "" {
			return component{kind: kindPartialWildcard, text: token, prefix: prefix, suffix: suffix}
		}
		return component{kind: kindPartialCapture, text: token, key: key, prefix: prefix, suffix: suffix}
	}

	if star := strings.IndexByte(token, starDelim); star >= 0 {
		return component{kind: kindPartialWildcard, text: token, prefix: token[:star], suffix: token[star+1:]}
	}

	return component{kind: kindLiteral, text: token}
}

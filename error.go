// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

package wren

import "errors"

var (
	// ErrUnreachablePattern is returned when a pattern declares a segment
	// after a catch-all token, which no path could ever reach.
	ErrUnreachablePattern = errors.New("unreachable pattern")
	// ErrSealed is returned on any mutation attempted after the structure has
	// been finalized with Build, or after the router started serving.
	ErrSealed = errors.New("builder is sealed")
	// ErrInvalidRoute is returned when the provided method or pattern is invalid.
	ErrInvalidRoute = errors.New("invalid route")
	// ErrInvalidConfig is returned when a provided option is invalid.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrDiscardedResponseWriter is returned when writing on the response
	// writer of a cloned Context.
	ErrDiscardedResponseWriter = errors.New("discarded response writer")
)

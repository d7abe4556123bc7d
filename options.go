// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

package wren

import "fmt"

// Option configures a [Router] at construction time.
type Option interface {
	apply(*Router) error
}

type optionFunc func(*Router) error

func (o optionFunc) apply(r *Router) error {
	return o(r)
}

// WithNotFoundHandler registers the [HandlerFunc] called when no route
// matches the request. By default [DefaultNotFoundHandler] is used.
func WithNotFoundHandler(handler HandlerFunc) Option {
	return optionFunc(func(r *Router) error {
		if handler == nil {
			return fmt.Errorf("%w: not found handler cannot be nil", ErrInvalidConfig)
		}
		r.notFound = handler
		return nil
	})
}

// WithMiddleware attaches a global middleware chain. Middlewares are applied
// in the order given, the first one being the outermost. The chain wraps
// every route handler and the not-found handler.
func WithMiddleware(mws ...MiddlewareFunc) Option {
	return optionFunc(func(r *Router) error {
		for _, m := range mws {
			if m == nil {
				return fmt.Errorf("%w: middleware cannot be nil", ErrInvalidConfig)
			}
		}
		r.mws = append(r.mws, mws...)
		return nil
	})
}

// WithSeparator overrides the segment separator used when registering
// patterns and resolving request paths. The default is [DefaultSeparator].
func WithSeparator(sep byte) Option {
	return optionFunc(func(r *Router) error {
		if err := validateSeparator(sep); err != nil {
			return err
		}
		r.sep = sep
		return nil
	})
}

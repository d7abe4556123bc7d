// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

package wren

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// HandlerFunc is a function type that responds to an HTTP request. It
// enforces the same contract as [http.Handler] but provides the matched route
// parameters through the [Context]. The Context is freed once the HandlerFunc
// returns and may be reused later; copy it with [Context.Clone] if it must
// outlive the handler.
//
// HandlerFunc functions should be thread-safe, as they will be called
// concurrently.
type HandlerFunc func(c *Context)

// MiddlewareFunc is a function type for implementing [HandlerFunc]
// middleware. The returned HandlerFunc usually wraps the input HandlerFunc.
// MiddlewareFunc functions should be thread-safe, as they will be called
// concurrently.
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

// Router dispatches HTTP requests over per-method pattern trees. Routes are
// registered before serving begins; the first request seals registration and
// finalizes the trees, after which [Router.Handle] fails with [ErrSealed].
// Serving is lock-free: resolving a request only reads the sealed trees.
type Router struct {
	builders map[string]*Builder[route]
	trees    map[string]*Tree[route]
	pool     sync.Pool
	mws      []MiddlewareFunc
	notFound HandlerFunc
	mu       sync.Mutex
	once     sync.Once
	sealed   bool
	sep      byte
}

var _ http.Handler = (*Router)(nil)

// New returns a ready to use Router.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		builders: make(map[string]*Builder[route]),
		notFound: DefaultNotFoundHandler,
		sep:      DefaultSeparator,
	}
	for _, opt := range opts {
		if err := opt.apply(r); err != nil {
			return nil, err
		}
	}
	r.notFound = applyMiddleware(r.mws, r.notFound)
	r.pool.New = func() any {
		return &Context{router: r}
	}
	return r, nil
}

// DefaultNotFoundHandler replies with a plain 404 not found.
func DefaultNotFoundHandler(c *Context) {
	http.Error(c.Writer(), "404 page not found", http.StatusNotFound)
}

// Handle registers a handler for the given method and pattern. See [Builder.Add]
// for the accepted pattern syntax and overwrite semantics. Handle returns an
// error wrapping [ErrInvalidRoute] for an empty or lowercase method,
// [ErrSealed] once the router started serving, or the underlying registration
// error.
func (r *Router) Handle(method, pattern string, handler HandlerFunc) error {
	if handler == nil {
		return fmt.Errorf("%w: nil handler for %q", ErrInvalidRoute, pattern)
	}
	if method == "" || strings.ToUpper(method) != method {
		return fmt.Errorf("%w: missing or invalid http method %q", ErrInvalidRoute, method)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q while serving", ErrSealed, pattern)
	}
	b, ok := r.builders[method]
	if !ok {
		var err error
		b, err = NewBuilderWithSeparator[route](r.sep)
		if err != nil {
			return err
		}
		r.builders[method] = b
	}
	return b.Add(pattern, route{handler: applyMiddleware(r.mws, handler), pattern: pattern})
}

// MustHandle registers a handler for the given method and pattern, panicking
// on error. This is a convenience wrapper for [Router.Handle].
func (r *Router) MustHandle(method, pattern string, handler HandlerFunc) {
	if err := r.Handle(method, pattern, handler); err != nil {
		panic(err)
	}
}

// seal finalizes every per-method builder. After sealing, registration is
// rejected and the trees are immutable.
func (r *Router) seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
	r.trees = make(map[string]*Tree[route], len(r.builders))
	for method, b := range r.builders {
		r.trees[method] = b.Build()
	}
}

// Lookup resolves method and path to the registered handler and its captured
// parameters. It seals the router on first use, like serving does. Lookup is
// mostly useful for tests and for composing the router into a larger handler.
func (r *Router) Lookup(method, path string) (HandlerFunc, Params, bool) {
	r.once.Do(r.seal)
	tree, ok := r.trees[method]
	if !ok {
		return nil, Params{}, false
	}
	rte, params, found := tree.Lookup(path)
	if !found {
		return nil, Params{}, false
	}
	return rte.handler, params, true
}

// ServeHTTP implements [http.Handler]. The first request seals route
// registration.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.once.Do(r.seal)

	c := r.pool.Get().(*Context)
	defer r.pool.Put(c)
	c.reset(w, req)

	if tree, ok := r.trees[req.Method]; ok {
		if rte, params, found := tree.Lookup(req.URL.Path); found {
			c.params = params
			c.pattern = rte.pattern
			rte.handler(c)
			return
		}
	}
	r.notFound(c)
}

// route associates a registered handler with the pattern it was registered
// under, so the matched pattern is available on the [Context].
type route struct {
	handler HandlerFunc
	pattern string
}

func applyMiddleware(mws []MiddlewareFunc, h HandlerFunc) HandlerFunc {
	m := h
	for i := len(mws) - 1; i >= 0; i-- {
		m = mws[i](m)
	}
	return m
}

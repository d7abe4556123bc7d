// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

package wren

import "net/http"

// Context carries the request, the response writer and the parameters
// captured while resolving the route. The Context is put back in the pool
// once the [HandlerFunc] returns and may be reused to save resources. If you
// need to hold it longer, copy it first with [Context.Clone].
type Context struct {
	rec     recorder
	w       ResponseWriter
	req     *http.Request
	params  Params
	pattern string
	router  *Router
}

func (c *Context) reset(w http.ResponseWriter, r *http.Request) {
	c.rec.reset(w)
	c.w = &c.rec
	c.req = r
	c.params = Params{}
	c.pattern = ""
}

// Writer returns the [ResponseWriter] for the request.
func (c *Context) Writer() ResponseWriter {
	return c.w
}

// SetWriter replaces the [ResponseWriter] seen by subsequent handlers.
func (c *Context) SetWriter(w ResponseWriter) {
	c.w = w
}

// Request returns the current [http.Request].
func (c *Context) Request() *http.Request {
	return c.req
}

// Param returns the value of the named capture, or the empty string when the
// matched route binds no such name.
func (c *Context) Param(name string) string {
	v, _ := c.params.Get(name)
	return v
}

// Params returns all captured parameters for the matched route.
func (c *Context) Params() Params {
	return c.params
}

// CatchAll returns the segments consumed by the catch-all token of the
// matched route. It is empty when the route has no catch-all.
func (c *Context) CatchAll() []string {
	return c.params.CatchAll()
}

// Pattern returns the registered pattern that matched the request, e.g.
// "users/:id". It is empty for handlers outside route dispatch, such as the
// not-found handler.
func (c *Context) Pattern() string {
	return c.pattern
}

// Router returns the [Router] serving the request.
func (c *Context) Router() *Router {
	return c.router
}

// Clone returns a deep copy of the Context that is safe to retain after the
// handler returns. The cloned writer keeps the recorded status and size but
// is detached from the connection: writing on it returns an error wrapping
// [ErrDiscardedResponseWriter].
func (c *Context) Clone() *Context {
	cloned := &Context{
		rec:     c.rec,
		req:     c.req.Clone(c.req.Context()),
		params:  c.params.Clone(),
		pattern: c.pattern,
		router:  c.router,
	}
	cloned.rec.ResponseWriter = noopWriter{}
	cloned.w = &cloned.rec
	return cloned
}

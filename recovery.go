// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

package wren

import (
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
)

var stdErr = log.New(os.Stderr, "", log.LstdFlags)

// RecoveryFunc is a function type that defines how to handle panics that
// occur during the handling of an HTTP request.
type RecoveryFunc func(c *Context, err any)

// RecoveryWithHandler returns middleware that captures panics and recovers
// from them, calling handle with the Context and the recovered value. Panics
// caused by [http.ErrAbortHandler] are re-raised so the http server handles
// them as an abort.
func RecoveryWithHandler(handle RecoveryFunc) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(c *Context) {
			defer recovery(c, handle)
			next(c)
		}
	}
}

// Recovery returns middleware that captures panics using [DefaultHandleRecovery].
func Recovery() MiddlewareFunc {
	return RecoveryWithHandler(DefaultHandleRecovery)
}

// DefaultHandleRecovery logs the recovered panic to stderr, including the
// stack trace. If the response has not been written yet and the panic is not
// caused by a broken connection, it replies with a 500.
func DefaultHandleRecovery(c *Context, err any) {
	stdErr.Printf("[PANIC] %q panic recovered\n%s", err, debug.Stack())
	if !c.Writer().Written() && !connIsBroken(err) {
		http.Error(c.Writer(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func recovery(c *Context, handle RecoveryFunc) {
	if err := recover(); err != nil {
		if abortErr, ok := err.(error); ok && errors.Is(abortErr, http.ErrAbortHandler) {
			panic(abortErr)
		}
		handle(c, err)
	}
}

func connIsBroken(err any) bool {
	if ne, ok := err.(*net.OpError); ok {
		var se *os.SyscallError
		if errors.As(ne, &se) {
			seStr := strings.ToLower(se.Error())
			return strings.Contains(seStr, "broken pipe") || strings.Contains(seStr, "connection reset by peer")
		}
	}
	return false
}

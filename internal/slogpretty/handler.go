// Copyright 2024 The Wren Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/wren-go/wren/blob/master/LICENSE.txt.

// Package slogpretty provides a compact, colorized slog.Handler used by the
// request logging middleware.
package slogpretty

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// ANSI codes for text styling.
const (
	reset           = "\033[0m"
	bold            = "\033[1m"
	faint           = "\033[2m"
	normalIntensity = "\033[22m"
	fgRed           = "\033[31m"
	fgGreen         = "\033[32m"
	fgYellow        = "\033[33m"
	fgMagenta       = "\033[35m"
	fgCyan          = "\033[36m"
	bgRed           = "\033[41m"
	bgYellow        = "\033[43m"
	bgBlue          = "\033[44m"
	bgMagenta       = "\033[45m"
)

const (
	maxBufferSize     = 16 << 10
	initialBufferSize = 1024
)

var _ slog.Handler = (*Handler)(nil)

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, initialBufferSize)
		return &b
	},
}

func freeBuf(b *[]byte) {
	if cap(*b) <= maxBufferSize {
		*b = (*b)[:0]
		bufPool.Put(b)
	}
}

var (
	// DefaultHandler writes records below error level to stdout and the rest
	// to stderr.
	DefaultHandler = &Handler{
		We:  &lockedWriter{w: os.Stderr},
		Wo:  &lockedWriter{w: os.Stdout},
		Lvl: slog.LevelDebug,
	}
	timeFormat = time.DateOnly + " " + time.TimeOnly
)

type groupOrAttrs struct {
	attr  slog.Attr
	group string
}

// Handler renders records on a single line with level-aware colors. We
// receives records at error level and above, Wo everything below.
type Handler struct {
	We  io.Writer
	Wo  io.Writer
	Lvl slog.Leveler
	goa []groupOrAttrs
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.Lvl.Level()
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	bufp := bufPool.Get().(*[]byte)
	buf := *bufp

	defer func() {
		*bufp = buf
		freeBuf(bufp)
	}()

	buf = append(buf, "[WREN] "...)

	if !record.Time.IsZero() {
		buf = append(buf, faint...)
		buf = append(buf, record.Time.Format(timeFormat)...)
		buf = append(buf, normalIntensity...)
		buf = append(buf, ' ')
	}

	// Write level with appropriate color and right padding so columns line up.
	buf = append(buf, "| "...)
	switch record.Level {
	case slog.LevelInfo:
		buf = append(buf, fgGreen...)
		buf = append(buf, record.Level.String()...)
		buf = append(buf, ' ')
	case slog.LevelError:
		buf = append(buf, fgRed...)
		buf = append(buf, record.Level.String()...)
	case slog.LevelWarn:
		buf = append(buf, fgYellow...)
		buf = append(buf, record.Level.String()...)
		buf = append(buf, ' ')
	case slog.LevelDebug:
		buf = append(buf, fgMagenta...)
		buf = append(buf, record.Level.String()...)
	}

	buf = append(buf, reset...)
	buf = append(buf, " | "...)
	buf = append(buf, record.Message...)
	buf = append(buf, " | "...)

	lastGroup := ""
	for _, goa := range h.goa {
		switch {
		case goa.group != "":
			lastGroup += goa.group + "."
		default:
			attr := goa.attr
			if lastGroup != "" {
				attr.Key = lastGroup + attr.Key
			}
			buf = appendAttr(record.Level, buf, attr)
		}
	}

	if record.NumAttrs() > 0 {
		record.Attrs(func(attr slog.Attr) bool {
			if lastGroup != "" {
				attr.Key = lastGroup + attr.Key
			}
			buf = appendAttr(record.Level, buf, attr)
			return true
		})
	}

	// Replace the latest space by an EOL.
	buf[len(buf)-1] = '\n'

	if record.Level >= slog.LevelError {
		if _, err := h.We.Write(buf); err != nil {
			return fmt.Errorf("failed to write buffer: %w", err)
		}
		return nil
	}
	if _, err := h.Wo.Write(buf); err != nil {
		return fmt.Errorf("failed to write buffer: %w", err)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]groupOrAttrs, len(attrs))
	for i, attr := range attrs {
		newAttrs[i] = groupOrAttrs{attr: attr}
	}
	return &Handler{
		We:  h.We,
		Wo:  h.Wo,
		Lvl: h.Lvl,
		goa: append(h.goa, newAttrs...),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		We:  h.We,
		Wo:  h.Wo,
		Lvl: h.Lvl,
		goa: append(h.goa, groupOrAttrs{group: name}),
	}
}

func appendAttr(level slog.Level, buf []byte, attr slog.Attr) []byte {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return buf
	}

	buf = append(buf, faint...)
	buf = append(buf, bold...)
	buf = append(buf, attr.Key...)
	buf = append(buf, '=')
	buf = append(buf, normalIntensity...)

	var pad bool
	switch attr.Key {
	case "method":
		buf = append(buf, bgBlue...)
		pad = true
	case "status":
		buf = append(buf, levelColor(level)...)
		pad = true
	case "latency":
		buf = append(buf, latencyColor(attr.Value.Duration())...)
	case "error":
		buf = append(buf, fgRed...)
	default:
		buf = append(buf, fgCyan...)
	}

	if pad {
		buf = append(buf, " "+attr.Value.String()+" "...)
	} else {
		buf = append(buf, attr.Value.String()...)
	}
	buf = append(buf, reset...)
	buf = append(buf, ' ')

	return buf
}

type lockedWriter struct {
	w io.Writer
	sync.Mutex
}

func (w *lockedWriter) Write(p []byte) (n int, err error) {
	w.Lock()
	n, err = w.w.Write(p)
	w.Unlock()
	return
}

func levelColor(level slog.Level) string {
	switch level {
	case slog.LevelInfo:
		return bgBlue
	case slog.LevelWarn:
		return bgYellow
	case slog.LevelError:
		return bgRed
	default:
		return bgMagenta
	}
}

func latencyColor(d time.Duration) string {
	if d < 100*time.Millisecond {
		return fgGreen
	}
	if d < 500*time.Millisecond {
		return fgYellow
	}
	return fgRed
}

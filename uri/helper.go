/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

//go:generate go tool errtrace -w .

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/jplu/uriparse/internal/log"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(log.Noop)
}

// SetLogger sets the logger used by the package. A nil logger disables
// logging, which is the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = log.Noop
	}
	pkgLogger.Store(l)
}

// SetDebugLogging makes the package write debug records to w, or to stderr
// when w is nil. The dev logger prints multi-line records with sources; the
// default one prints a line per record.
func SetDebugLogging(w io.Writer, dev bool) {
	if w == nil {
		w = os.Stderr
	}
	if dev {
		SetLogger(log.Developer(w))
	} else {
		SetLogger(log.Console(w))
	}
}

func logger() *slog.Logger {
	return pkgLogger.Load()
}

// Decompose splits a URI string into its components. It is safe for
// concurrent use.
//
// The input is first decomposed byte-wise, the way a single-byte parser
// would. That result is returned as is when the input is pure ASCII or when
// recomposing it reproduces the input exactly. Otherwise multi-byte UTF-8
// sequences were damaged: the input is form-encoded except for the URI
// delimiters, decomposed again, and every component is decoded back.
//
// The recomposition check is a heuristic gate for the fast path, not a proof
// that the components are right.
//
// A *ParseError is returned when the input cannot be decomposed at all.
func Decompose(rawURL string) (Components, error) {
	ctx := context.Background()

	c, err := decomposeBytes(latin1View(rawURL))
	if err != nil {
		logger().LogAttrs(ctx, slog.LevelDebug, "URI decomposition failed",
			slog.Any("uri", log.StringValue(rawURL)),
			slog.Any("error", err),
		)
		return Components{}, errtrace.Wrap(newParseError(rawURL, err))
	}
	if !hasNonASCII(rawURL) || Recompose(c) == rawURL {
		return c, nil
	}

	logger().LogAttrs(ctx, slog.LevelDebug, "decomposing URI with UTF-8 safe encoding",
		slog.Any("uri", log.StringValue(rawURL)),
		slog.Any("fast", c),
	)
	c, err = decomposeBytes(escapeOpaque(rawURL))
	if err != nil {
		return Components{}, errtrace.Wrap(newParseError(rawURL, err))
	}
	c.Scheme = unescapeComponent(c.Scheme)
	c.User = unescapeComponent(c.User)
	c.Pass = unescapeComponent(c.Pass)
	c.Host = unescapeComponent(c.Host)
	c.Path = unescapeComponent(c.Path)
	c.Query = unescapeComponent(c.Query)
	c.Fragment = unescapeComponent(c.Fragment)
	return c, nil
}

// Recompose assembles components into a string: "scheme://",
// "user[:pass]@", host, ":port", path, "?query" and "#fragment", each
// written only when present.
func Recompose(c Components) string {
	var b strings.Builder
	if c.Has(PartScheme) {
		b.WriteString(c.Scheme)
		b.WriteString("://")
	}
	if c.Has(PartUser) {
		b.WriteString(c.User)
		if c.Has(PartPass) {
			b.WriteByte(':')
			b.WriteString(c.Pass)
		}
		b.WriteByte('@')
	}
	if c.Has(PartHost) {
		b.WriteString(c.Host)
	}
	if c.Has(PartPort) {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(c.Port)))
	}
	if c.Has(PartPath) {
		b.WriteString(c.Path)
	}
	if c.Has(PartQuery) {
		b.WriteByte('?')
		b.WriteString(c.Query)
	}
	if c.Has(PartFragment) {
		b.WriteByte('#')
		b.WriteString(c.Fragment)
	}
	return b.String()
}

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

import (
	"fmt"
	"net/url"
	"strings"
)

// reservedUnescaper reverts the form encoding of the delimiters the
// decomposer splits on.
var reservedUnescaper = strings.NewReplacer(
	"%21", "!",
	"%2A", "*",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%3B", ";",
	"%3A", ":",
	"%40", "@",
	"%26", "&",
	"%3D", "=",
	"%24", "$",
	"%2C", ",",
	"%2F", "/",
	"%3F", "?",
	"%23", "#",
	"%5B", "[",
	"%5D", "]",
)

// escapeOpaque form-encodes every byte of s except the URI delimiters, so
// that multi-byte UTF-8 sequences reach the decomposer as plain ASCII.
func escapeOpaque(s string) string {
	return reservedUnescaper.Replace(url.QueryEscape(s))
}

// unescapeComponent reverts escapeOpaque on a single component.
func unescapeComponent(s string) string {
	d, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return d
}

// percentEncode percent-encodes the non-ASCII bytes of s into b.
// It is used by URI.ToURI.
func percentEncode(s string, b *strings.Builder) {
	for i := range len(s) {
		if c := s[i]; c >= 0x80 {
			fmt.Fprintf(b, "%%%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
}

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

package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Parse decodes a query string with DefaultOptions.
func Parse(query string) (*Vars, error) {
	return ParseWithOptions(query, DefaultOptions)
}

// ParseWithOptions decodes a query string into an ordered mapping:
//   - pairs are split on opts.Separators, then on the first '=';
//   - keys and values are form-decoded ('+' is a space);
//   - leading spaces of a key are dropped, and spaces and dots of the name
//     before the first '[' become '_';
//   - "name[a][b]" stores into nested containers, "name[]" appends with the
//     next free integer index;
//   - plain assignments are last-wins and a bracketed key replaces a scalar.
//
// A leading '?' is part of the first key.
func ParseWithOptions(query string, opts Options) (*Vars, error) {
	opts = opts.withDefaults()

	vars := NewVars()
	pairs := strings.FieldsFunc(query, func(r rune) bool {
		return strings.ContainsRune(opts.Separators, r)
	})
	for _, pair := range pairs {
		k, v, _ := strings.Cut(pair, "=")
		key, err := decode(k, opts.StrictDecode)
		if err != nil {
			return nil, fmt.Errorf("decode key %q: %w", k, err)
		}
		value, err := decode(v, opts.StrictDecode)
		if err != nil {
			return nil, fmt.Errorf("decode value %q: %w", v, err)
		}
		register(vars, key, value, opts.MaxDepth)
	}
	return vars, nil
}

// register stores value under the decoded variable name.
func register(root *Vars, name, value string, maxDepth int) {
	name = strings.TrimLeft(name, " ")

	base, rest := name, ""
	if i := strings.IndexByte(name, '['); i >= 0 {
		base, rest = name[:i], name[i:]
	}
	base = strings.Map(func(r rune) rune {
		if r == ' ' || r == '.' {
			return '_'
		}
		return r
	}, base)
	if base == "" {
		return
	}

	tokens, ok := bracketTokens(rest)
	if !ok {
		// A '[' without ']' cannot open an index: it becomes part of the name.
		root.Set(base+"_"+rest[1:], StringValue(value))
		return
	}
	if len(tokens) > maxDepth {
		return
	}

	cur, key, appending := root, base, false
	for _, tok := range tokens {
		var child *Vars
		switch existing, found := cur.Get(key); {
		case appending:
			child = NewVars()
			cur.Append(Value{vars: child})
		case found && existing.vars != nil:
			child = existing.vars
		default:
			child = NewVars()
			cur.Set(key, Value{vars: child})
		}
		cur = child
		key, appending = tok, tok == ""
	}

	if appending {
		cur.Append(StringValue(value))
		return
	}
	cur.Set(key, StringValue(value))
}

// bracketTokens splits "[a][][b]" into "a", "", "b". Text after the last
// complete index is ignored. ok is false when the first '[' is not closed.
func bracketTokens(s string) (tokens []string, ok bool) {
	for strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return tokens, len(tokens) > 0
		}
		tokens = append(tokens, s[1:end])
		s = s[end+1:]
	}
	return tokens, true
}

// decode applies application/x-www-form-urlencoded rules. Unless strict,
// invalid percent sequences are kept literally.
func decode(s string, strict bool) (string, error) {
	d, err := url.QueryUnescape(s)
	if err == nil {
		return d, nil
	}
	if strict {
		return "", err
	}
	return lenientDecode(s), nil
}

// lenientDecode decodes '+' and valid %XX escapes and keeps anything else.
func lenientDecode(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			out = append(out, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			v, _ := strconv.ParseUint(s[i+1:i+3], 16, 8)
			out = append(out, byte(v))
			i += 2
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

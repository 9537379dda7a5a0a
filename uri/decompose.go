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
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

const (
	// authorityPrefix introduces the authority component.
	authorityPrefix = "//"
	// maxPortDigits is the longest port accepted, "65535".
	maxPortDigits = 5
	maxPort       = 65535
)

// Components holds the result of a decomposition. Present records which
// components were found; a component may be present and empty ("http://h/?").
type Components struct {
	Scheme   string
	User     string
	Pass     string
	Host     string
	Port     uint16
	Path     string
	Query    string
	Fragment string
	Present  Part
}

// Has reports whether the components p were found.
func (c Components) Has(p Part) bool {
	return c.Present.Has(p)
}

// String returns the recomposed components.
func (c Components) String() string {
	return Recompose(c)
}

// latin1View returns s the way a locale-naive C parser sees it: every byte is
// an ISO-8859-1 character and control characters (C0, DEL and C1) are
// replaced with '_'. UTF-8 continuation bytes in 0x80-0x9F are thereby lost.
func latin1View(s string) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return s
	}
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '_'
		}
		return r
	}, decoded)
	encoded, err := charmap.ISO8859_1.NewEncoder().String(sanitized)
	if err != nil {
		return s
	}
	return encoded
}

// decomposeBytes splits s into components. It works on bytes and knows
// nothing about UTF-8.
func decomposeBytes(s string) (Components, error) {
	var c Components
	rest := s

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		c.Fragment, rest = rest[i+1:], rest[:i]
		c.Present |= PartFragment
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		c.Query, rest = rest[i+1:], rest[:i]
		c.Present |= PartQuery
	}

	if i := schemeEnd(rest); i > 0 {
		after := rest[i+1:]
		switch {
		case strings.HasPrefix(after, authorityPrefix):
			c.Scheme = rest[:i]
			c.Present |= PartScheme
			rest = after
		case isPortPrefix(after):
			// "host:port/path" without a scheme.
			n := strings.IndexByte(after, '/')
			if n < 0 {
				n = len(after)
			}
			c.Host = rest[:i]
			c.Present |= PartHost
			if err := c.setPort(after[:n]); err != nil {
				return Components{}, err
			}
			c.setPath(after[n:])
			return c, nil
		default:
			// Opaque URI like "mailto:user@example.com".
			c.Scheme = rest[:i]
			c.Present |= PartScheme
			c.setPath(after)
			return c, nil
		}
	}

	if strings.HasPrefix(rest, authorityPrefix) {
		rest = rest[len(authorityPrefix):]
		if strings.EqualFold(c.Scheme, "file") && strings.HasPrefix(rest, "/") {
			c.setPath(rest)
			return c, nil
		}
		end := strings.IndexByte(rest, '/')
		if end < 0 {
			end = len(rest)
		}
		if err := c.parseAuthority(rest[:end]); err != nil {
			return Components{}, err
		}
		rest = rest[end:]
	}

	c.setPath(rest)
	if c.Present == 0 {
		// The empty string is an empty path.
		c.Present = PartPath
	}
	return c, nil
}

// schemeEnd returns the index of the ':' ending a leading scheme, or -1.
func schemeEnd(s string) int {
	if s == "" || !isASCIILetter(s[0]) {
		return -1
	}
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] == ':':
			return i
		case !isSchemeChar(s[i]):
			return -1
		}
	}
	return -1
}

// isPortPrefix reports whether s starts with 1 to 5 digits followed by the
// end of input or a '/'.
func isPortPrefix(s string) bool {
	n := strings.IndexByte(s, '/')
	if n < 0 {
		n = len(s)
	}
	return n <= maxPortDigits && isDigits(s[:n])
}

// parseAuthority splits "user:pass@host:port".
func (c *Components) parseAuthority(authority string) error {
	if authority == "" {
		return &kindError{kind: ErrEmptyHost}
	}

	hostport := authority
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		user, pass, hasPass := strings.Cut(authority[:i], ":")
		c.User = user
		c.Present |= PartUser
		if hasPass {
			c.Pass = pass
			c.Present |= PartPass
		}
		hostport = authority[i+1:]
	}

	host, port, hasPort := hostport, "", false
	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return &kindError{kind: ErrUnbalancedBrackets, details: hostport}
		}
		host = hostport[:end+1]
		if tail := hostport[end+1:]; tail != "" {
			if tail[0] != ':' {
				return &kindError{kind: ErrInvalidIPLiteral, details: hostport}
			}
			port, hasPort = tail[1:], true
		}
	} else {
		if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
			host, port, hasPort = hostport[:i], hostport[i+1:], true
		}
		if i := strings.IndexAny(host, "[]"); i >= 0 {
			return &kindError{kind: ErrUnbalancedBrackets, char: host[i]}
		}
	}

	if host == "" {
		return &kindError{kind: ErrEmptyHost, details: authority}
	}
	c.Host = host
	c.Present |= PartHost

	if hasPort && port != "" {
		return c.setPort(port)
	}
	return nil
}

// setPort validates and stores a decimal port.
func (c *Components) setPort(s string) error {
	if len(s) > maxPortDigits || !isDigits(s) {
		return &kindError{kind: ErrInvalidPort, details: s}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > maxPort {
		return &kindError{kind: ErrInvalidPort, details: s}
	}
	c.Port = uint16(n)
	c.Present |= PartPort
	return nil
}

// setPath stores a non-empty path.
func (c *Components) setPath(s string) {
	if s == "" {
		return
	}
	c.Path = s
	c.Present |= PartPath
}

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

// Package uri parses, inspects, modifies and renders URIs.
//
// The package offers two layers:
//   - Decompose and Recompose: stateless functions splitting a URI string into
//     Components and back. Decompose is safe for UTF-8 input that a
//     byte-oriented parser would damage.
//   - URI: a mutable value holding the components of one URI together with its
//     query variables, able to render any subset of its components.
//
// Query variables follow PHP form semantics (see package query), so
// "?a[]=1&a[]=2" yields a list under "a".
package uri

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/idna"

	"github.com/jplu/uriparse/query"
)

// secureSchemes are the schemes IsSecure accepts.
var secureSchemes = []string{"https", "ftps", "sftp", "rtsps"}

// URI is a decomposed URI. The zero value is an empty URI ready to use.
//
// A URI is not safe for concurrent use.
type URI struct {
	original string

	scheme   string
	user     string
	pass     string
	host     string
	port     uint16
	path     string
	fragment string
	// present records the components set, the query excepted.
	present Part

	vars *query.Vars
	// query caches query.Build(vars); it is valid while queryRev matches
	// vars.Rev().
	query      string
	queryRev   uint64
	queryValid bool
}

// New returns an empty URI.
func New() *URI {
	return &URI{vars: query.NewVars()}
}

// Parse decomposes s into a new URI. The query is split into variables after
// replacing any HTML-escaped "&amp;" with "&".
//
// A *ParseError is returned when s cannot be decomposed.
func Parse(s string) (*URI, error) {
	c, err := Decompose(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u := &URI{original: s, vars: query.NewVars()}
	if err := u.assign(c); err != nil {
		return nil, errtrace.Wrap(newParseError(s, err))
	}
	return u, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) *URI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// assign stores the decomposed components into u.
func (u *URI) assign(c Components) error {
	for _, pn := range partNames {
		if !c.Has(pn.part) {
			continue
		}
		switch pn.part {
		case PartScheme:
			u.scheme = c.Scheme
		case PartUser:
			u.user = c.User
		case PartPass:
			u.pass = c.Pass
		case PartHost:
			u.host = c.Host
		case PartPort:
			u.port = c.Port
		case PartPath:
			u.path = c.Path
		case PartQuery:
			q := unescapeAmp(c.Query)
			vars, err := query.Parse(q)
			if err != nil {
				return err
			}
			u.vars = vars
			u.query, u.queryRev, u.queryValid = q, vars.Rev(), true
			continue
		case PartFragment:
			u.fragment = c.Fragment
		}
		u.present |= pn.part
	}
	return nil
}

// unescapeAmp replaces the HTML entity "&amp;" with "&".
func unescapeAmp(q string) string {
	return strings.ReplaceAll(q, "&amp;", "&")
}

// Original returns the string the URI was parsed from.
func (u *URI) Original() string {
	return u.original
}

// String returns the URI with all its components.
func (u *URI) String() string {
	return u.Render(AllParts)
}

// Render returns the URI restricted to the selected components:
//   - "scheme://" if selected and not empty;
//   - the user if selected and not empty;
//   - ":pass" if selected and not empty, whether the user is rendered or not;
//   - the host if selected and not empty, preceded by '@' when the URI has a
//     user, whether the user is selected or not;
//   - ":port" if selected and set;
//   - the path if selected and not empty;
//   - "?query" if selected and the query is not empty;
//   - "#fragment" if selected and not empty.
func (u *URI) Render(parts Part) string {
	q := u.Query()

	var b strings.Builder
	if parts.Has(PartScheme) && u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteString("://")
	}
	if parts.Has(PartUser) && u.user != "" {
		b.WriteString(u.user)
	}
	if parts.Has(PartPass) && u.pass != "" {
		b.WriteByte(':')
		b.WriteString(u.pass)
	}
	if parts.Has(PartHost) && u.host != "" {
		if u.user != "" {
			b.WriteByte('@')
		}
		b.WriteString(u.host)
	}
	if parts.Has(PartPort) && u.present.Has(PartPort) {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(u.port)))
	}
	if parts.Has(PartPath) && u.path != "" {
		b.WriteString(u.path)
	}
	if parts.Has(PartQuery) && q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	if parts.Has(PartFragment) && u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// ToURI renders the URI with ASCII characters only: the host is converted
// with IDNA ToASCII and non-ASCII bytes of the other components are
// percent-encoded. A host rejected by IDNA is percent-encoded as well.
func (u *URI) ToURI() string {
	q := u.Query()

	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteString("://")
	}
	if u.user != "" {
		percentEncode(u.user, &b)
	}
	if u.pass != "" {
		b.WriteByte(':')
		percentEncode(u.pass, &b)
	}
	if u.host != "" {
		if u.user != "" {
			b.WriteByte('@')
		}
		if asciiHost, err := idna.ToASCII(u.host); err == nil && !strings.HasPrefix(u.host, "[") {
			b.WriteString(asciiHost)
		} else {
			percentEncode(u.host, &b)
		}
	}
	if u.present.Has(PartPort) {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(u.port)))
	}
	percentEncode(u.path, &b)
	if q != "" {
		b.WriteByte('?')
		percentEncode(q, &b)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		percentEncode(u.fragment, &b)
	}
	return b.String()
}

// Scheme returns the scheme (e.g., "https") and whether it is set.
func (u *URI) Scheme() (string, bool) {
	return u.scheme, u.present.Has(PartScheme)
}

// User returns the user name and whether it is set.
func (u *URI) User() (string, bool) {
	return u.user, u.present.Has(PartUser)
}

// Pass returns the password and whether it is set.
func (u *URI) Pass() (string, bool) {
	return u.pass, u.present.Has(PartPass)
}

// Host returns the host name or IP literal and whether it is set.
func (u *URI) Host() (string, bool) {
	return u.host, u.present.Has(PartHost)
}

// Port returns the port and whether it is set.
func (u *URI) Port() (uint16, bool) {
	return u.port, u.present.Has(PartPort)
}

// Path returns the path and whether it is set.
func (u *URI) Path() (string, bool) {
	return u.path, u.present.Has(PartPath)
}

// Fragment returns the fragment (without '#') and whether it is set.
func (u *URI) Fragment() (string, bool) {
	return u.fragment, u.present.Has(PartFragment)
}

// SetScheme sets the scheme, without "://".
func (u *URI) SetScheme(scheme string) {
	u.scheme = scheme
	u.present |= PartScheme
}

// SetUser sets the user name.
func (u *URI) SetUser(user string) {
	u.user = user
	u.present |= PartUser
}

// SetPass sets the password. It is rendered even without a user.
func (u *URI) SetPass(pass string) {
	u.pass = pass
	u.present |= PartPass
}

// SetHost sets the host. IP literals keep their brackets.
func (u *URI) SetHost(host string) {
	u.host = host
	u.present |= PartHost
}

// SetPort sets the port. Port 0 is rendered too; use Unset(PartPort) to
// remove it.
func (u *URI) SetPort(port uint16) {
	u.port = port
	u.present |= PartPort
}

// SetPath sets the path after resolving its "." and ".." segments with
// CleanPath.
func (u *URI) SetPath(path string) {
	u.path = CleanPath(path)
	u.present |= PartPath
}

// SetFragment sets the fragment, without '#'.
func (u *URI) SetFragment(fragment string) {
	u.fragment = fragment
	u.present |= PartFragment
}

// Unset clears the given components. Clearing PartQuery removes every query
// variable.
func (u *URI) Unset(parts Part) {
	if parts.Has(PartScheme) {
		u.scheme = ""
	}
	if parts.Has(PartUser) {
		u.user = ""
	}
	if parts.Has(PartPass) {
		u.pass = ""
	}
	if parts.Has(PartHost) {
		u.host = ""
	}
	if parts.Has(PartPort) {
		u.port = 0
	}
	if parts.Has(PartPath) {
		u.path = ""
	}
	if parts.Has(PartFragment) {
		u.fragment = ""
	}
	if parts.Has(PartQuery) {
		u.SetQueryVars(nil)
	}
	u.present &^= parts &^ PartQuery
}

// IsSecure reports whether the scheme is one of https, ftps, sftp or rtsps.
// The comparison is case-sensitive.
func (u *URI) IsSecure() bool {
	return slices.Contains(secureSchemes, u.scheme)
}

// IsSSL reports whether the URI uses a secure scheme.
//
// Deprecated: Use IsSecure instead.
func (u *URI) IsSSL() bool {
	return u.IsSecure()
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	c := *u
	c.vars = u.vars.Clone()
	return &c
}

// Equal reports whether both URIs have the same components and query
// variables. The original input strings are not compared.
func (u *URI) Equal(other *URI) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.present == other.present &&
		u.scheme == other.scheme &&
		u.user == other.user &&
		u.pass == other.pass &&
		u.host == other.host &&
		u.port == other.port &&
		u.path == other.path &&
		u.fragment == other.fragment &&
		u.vars.Equal(other.vars)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. On error
// the receiver is left unchanged.
func (u *URI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*u = *parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a
// JSON string.
func (u *URI) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(u.String()))
}

// UnmarshalJSON implements the json.Unmarshaler interface. On error the
// receiver is left unchanged.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(u.UnmarshalText([]byte(s)))
}

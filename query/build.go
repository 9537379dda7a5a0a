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
	"net/url"
	"strings"
)

// Encode renders vars as a form-encoded query string, the way
// http_build_query does: nested values become "name[key]=value" pairs with
// encoded brackets, empty containers produce nothing.
func Encode(vars *Vars, opts Options) string {
	opts = opts.withDefaults()
	var b strings.Builder
	encodeVars(&b, vars, "", opts.ArgSeparator)
	return b.String()
}

func encodeVars(b *strings.Builder, vars *Vars, prefix, sep string) {
	for key, val := range vars.All() {
		name := url.QueryEscape(key)
		if prefix != "" {
			name = prefix + "%5B" + name + "%5D"
		}
		if val.IsContainer() {
			encodeVars(b, val.vars, name, sep)
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(val.str))
	}
}

// Build returns the decoded form of Encode(vars, DefaultOptions), e.g.
// "a[0]=x y&b=1". It is the representation a URI keeps for its query.
func Build(vars *Vars) string {
	encoded := Encode(vars, DefaultOptions)
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		return encoded
	}
	return decoded
}

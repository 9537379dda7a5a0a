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

import "strings"

// Part is a set of URI components. It selects the components rendered by
// URI.Render and records which components a decomposition found.
type Part uint8

const (
	PartScheme Part = 1 << iota
	PartUser
	PartPass
	PartHost
	PartPort
	PartPath
	PartQuery
	PartFragment

	// AllParts selects every component.
	AllParts = PartScheme | PartUser | PartPass | PartHost | PartPort | PartPath | PartQuery | PartFragment
)

// partNames lists the component names in rendering order.
var partNames = [...]struct {
	part Part
	name string
}{
	{PartScheme, "scheme"},
	{PartUser, "user"},
	{PartPass, "pass"},
	{PartHost, "host"},
	{PartPort, "port"},
	{PartPath, "path"},
	{PartQuery, "query"},
	{PartFragment, "fragment"},
}

// Has reports whether every component of q is in p.
func (p Part) Has(q Part) bool {
	return p&q == q
}

// String returns the component names of p joined with '|'.
func (p Part) String() string {
	if p == 0 {
		return "none"
	}
	names := make([]string, 0, len(partNames))
	for _, pn := range partNames {
		if p.Has(pn.part) {
			names = append(names, pn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParsePart returns the component named name ("scheme", "user", "pass",
// "host", "port", "path", "query" or "fragment").
func ParsePart(name string) (Part, bool) {
	for _, pn := range partNames {
		if pn.name == name {
			return pn.part, true
		}
	}
	return 0, false
}

// PartsOf builds a Part set from component names. Unknown names are ignored.
func PartsOf(names ...string) Part {
	var p Part
	for _, name := range names {
		if q, ok := ParsePart(name); ok {
			p |= q
		}
	}
	return p
}

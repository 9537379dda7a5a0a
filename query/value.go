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

// Kind is the kind of a Value.
type Kind uint8

const (
	// KindString is a scalar value.
	KindString Kind = iota
	// KindList is a container whose keys are exactly 0..n-1 in order.
	KindList
	// KindMap is any other container.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the value of a query variable: a string, or a container of nested
// values produced by bracketed keys.
//
// A Value is immutable. Containers are copied on the way in (MapValue) and on
// the way out (Map), so a Value can be shared freely.
type Value struct {
	str  string
	vars *Vars
}

// StringValue returns a scalar value.
func StringValue(s string) Value {
	return Value{str: s}
}

// ListValue returns a list of scalar values.
func ListValue(items ...string) Value {
	v := NewVars()
	for _, item := range items {
		v.Append(StringValue(item))
	}
	return Value{vars: v}
}

// MapValue returns a container holding a copy of vars.
func MapValue(vars *Vars) Value {
	if vars == nil {
		return Value{vars: NewVars()}
	}
	return Value{vars: vars.Clone()}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	switch {
	case v.vars == nil:
		return KindString
	case v.vars.isList():
		return KindList
	default:
		return KindMap
	}
}

// IsContainer reports whether v is a list or a map.
func (v Value) IsContainer() bool {
	return v.vars != nil
}

// String returns the scalar value, or an empty string for containers.
func (v Value) String() string {
	return v.str
}

// Len returns the number of nested values; 0 for scalars.
func (v Value) Len() int {
	return v.vars.Len()
}

// Keys returns the keys of a container in order.
func (v Value) Keys() []string {
	return v.vars.Keys()
}

// Get returns the nested value stored under key.
func (v Value) Get(key string) (Value, bool) {
	return v.vars.Get(key)
}

// List returns the nested values in order; nil for scalars.
func (v Value) List() []Value {
	if v.vars == nil {
		return nil
	}
	out := make([]Value, 0, v.vars.Len())
	for _, val := range v.vars.All() {
		out = append(out, val)
	}
	return out
}

// Strings returns the scalar nested values in order, skipping containers.
func (v Value) Strings() []string {
	if v.vars == nil {
		return nil
	}
	out := make([]string, 0, v.vars.Len())
	for _, val := range v.vars.All() {
		if !val.IsContainer() {
			out = append(out, val.str)
		}
	}
	return out
}

// Map returns a copy of the nested mapping; nil for scalars.
func (v Value) Map() *Vars {
	return v.vars.Clone()
}

// Equal reports whether v and other hold the same data.
func (v Value) Equal(other Value) bool {
	if v.IsContainer() != other.IsContainer() {
		return false
	}
	if !v.IsContainer() {
		return v.str == other.str
	}
	return v.vars.Equal(other.vars)
}

func (v Value) clone() Value {
	if v.vars == nil {
		return v
	}
	return Value{vars: v.vars.Clone()}
}

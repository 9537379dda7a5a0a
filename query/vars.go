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
	"iter"
	"math"
	"slices"
	"strconv"
)

// Vars is an insertion-ordered mapping from variable names to values. Keys
// are unique. Like a PHP array it remembers the next free integer index used
// by Append. Once math.MaxInt has been used as an index, Append refuses new
// values.
//
// Every mutation increments a revision counter (see Rev), which lets owners
// cache a representation derived from the mapping.
type Vars struct {
	keys []string
	vals map[string]Value
	next int
	full bool
	rev  uint64
}

// NewVars returns an empty mapping.
func NewVars() *Vars {
	return &Vars{vals: make(map[string]Value)}
}

// Len returns the number of variables.
func (v *Vars) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Keys returns the variable names in insertion order.
func (v *Vars) Keys() []string {
	if v == nil {
		return nil
	}
	return slices.Clone(v.keys)
}

// Has reports whether the variable key exists.
func (v *Vars) Has(key string) bool {
	if v == nil {
		return false
	}
	_, ok := v.vals[key]
	return ok
}

// Get returns the value of the variable key.
func (v *Vars) Get(key string) (Value, bool) {
	if v == nil {
		return Value{}, false
	}
	val, ok := v.vals[key]
	return val, ok
}

// Set assigns val to key. A new key is appended to the end of the order, an
// existing key keeps its position.
func (v *Vars) Set(key string, val Value) {
	if v.vals == nil {
		v.vals = make(map[string]Value)
	}
	if _, ok := v.vals[key]; !ok {
		v.keys = append(v.keys, key)
		if n, ok := indexKey(key); ok && n >= v.next {
			if n == math.MaxInt {
				v.full = true
			} else {
				v.next = n + 1
			}
		}
	}
	v.vals[key] = val
	v.rev++
}

// Append stores val under the next free integer index and returns that index.
// It returns "" and stores nothing when no index is left.
func (v *Vars) Append(val Value) string {
	if v.full {
		return ""
	}
	key := strconv.Itoa(v.next)
	v.Set(key, val)
	return key
}

// Del removes the variable key. It is a no-op if key does not exist.
func (v *Vars) Del(key string) {
	if !v.Has(key) {
		return
	}
	delete(v.vals, key)
	v.keys = slices.DeleteFunc(v.keys, func(k string) bool { return k == key })
	v.rev++
}

// All iterates over the variables in insertion order.
func (v *Vars) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v == nil {
			return
		}
		for _, k := range v.keys {
			if !yield(k, v.vals[k]) {
				return
			}
		}
	}
}

// Rev returns the revision of the mapping. It changes on every mutation.
func (v *Vars) Rev() uint64 {
	if v == nil {
		return 0
	}
	return v.rev
}

// Clone returns a deep copy of the mapping.
func (v *Vars) Clone() *Vars {
	if v == nil {
		return nil
	}
	c := &Vars{
		keys: slices.Clone(v.keys),
		vals: make(map[string]Value, len(v.vals)),
		next: v.next,
		full: v.full,
		rev:  v.rev,
	}
	for k, val := range v.vals {
		c.vals[k] = val.clone()
	}
	return c
}

// Equal reports whether both mappings hold the same variables in the same
// order. A nil mapping equals an empty one.
func (v *Vars) Equal(other *Vars) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i, k := range v.Keys() {
		if other.keys[i] != k || !v.vals[k].Equal(other.vals[k]) {
			return false
		}
	}
	return true
}

// isList reports whether the keys are exactly "0", "1", ... in order.
func (v *Vars) isList() bool {
	for i, k := range v.keys {
		if k != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// indexKey reports whether key is the canonical decimal form of a
// non-negative integer and returns it.
func indexKey(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := range len(key) {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}

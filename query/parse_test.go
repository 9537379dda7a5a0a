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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// varsOf builds a mapping from alternating keys and values.
func varsOf(kv ...any) *Vars {
	v := NewVars()
	for i := 0; i < len(kv); i += 2 {
		key := kv[i].(string)
		switch val := kv[i+1].(type) {
		case string:
			v.Set(key, StringValue(val))
		case *Vars:
			v.Set(key, MapValue(val))
		case Value:
			v.Set(key, val)
		}
	}
	return v
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected *Vars
	}{
		{name: "Empty", in: "", expected: NewVars()},
		{name: "Plain pairs", in: "a=1&b=2", expected: varsOf("a", "1", "b", "2")},
		{name: "Leading question mark is kept", in: "?a=1&b=2", expected: varsOf("?a", "1", "b", "2")},
		{name: "Duplicate plain key, last wins", in: "a=b&a=c", expected: varsOf("a", "c")},
		{name: "Key without value", in: "flag&x=", expected: varsOf("flag", "", "x", "")},
		{name: "Empty pairs are skipped", in: "&&a=1&&", expected: varsOf("a", "1")},
		{name: "Form decoding", in: "a+b=c+d&e=%26%3D", expected: varsOf("a_b", "c d", "e", "&=")},
		{name: "Dots and spaces in names", in: "a.b=1&c%20d=2", expected: varsOf("a_b", "1", "c_d", "2")},
		{name: "Leading spaces of names", in: "%20%20a=1", expected: varsOf("a", "1")},
		{name: "Array append", in: "a[]=b&a[]=c", expected: varsOf("a", ListValue("b", "c"))},
		{name: "No index after the largest one", in: "a[9223372036854775807]=x&a[]=y", expected: varsOf("a", varsOf("9223372036854775807", "x"))},
		{
			name:     "Nested maps",
			in:       "a[b][c]=d&a[b][e]=f",
			expected: varsOf("a", varsOf("b", varsOf("c", "d", "e", "f"))),
		},
		{
			name:     "Append of containers",
			in:       "a[][b]=c&a[][b]=d",
			expected: varsOf("a", varsOf("0", varsOf("b", "c"), "1", varsOf("b", "d"))),
		},
		{
			name:     "Explicit index then append",
			in:       "a[5]=x&a[]=y",
			expected: varsOf("a", varsOf("5", "x", "6", "y")),
		},
		{name: "Scalar replaced by array", in: "a=1&a[]=2", expected: varsOf("a", ListValue("2"))},
		{name: "Array replaced by scalar", in: "a[]=1&a=2", expected: varsOf("a", "2")},
		{name: "Unmatched bracket joins the name", in: "a[b=1", expected: varsOf("a_b", "1")},
		{name: "Text after index is ignored", in: "a[b]c=1", expected: varsOf("a", varsOf("b", "1"))},
		{name: "Dots in index are kept", in: "a[b.c]=1", expected: varsOf("a", varsOf("b.c", "1"))},
		{name: "Empty base name is skipped", in: "=1&[x]=2&a=3", expected: varsOf("a", "3")},
		{name: "Malformed escape kept literally", in: "a=%zz&b=100%", expected: varsOf("a", "%zz", "b", "100%")},
		{name: "UTF-8 values", in: "キー=値", expected: varsOf("キー", "値")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.in, err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestParseWithOptions(t *testing.T) {
	t.Run("Custom separators", func(t *testing.T) {
		got, err := ParseWithOptions("a=1;b=2&c=3", Options{Separators: ";&"})
		if err != nil {
			t.Fatalf("ParseWithOptions() error: %v", err)
		}
		if diff := cmp.Diff(varsOf("a", "1", "b", "2", "c", "3"), got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Depth limit drops deep variables", func(t *testing.T) {
		got, err := ParseWithOptions("a[b][c]=1&d[e]=2", Options{MaxDepth: 1})
		if err != nil {
			t.Fatalf("ParseWithOptions() error: %v", err)
		}
		if diff := cmp.Diff(varsOf("d", varsOf("e", "2")), got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Strict decoding", func(t *testing.T) {
		if _, err := ParseWithOptions("a=%zz", Options{StrictDecode: true}); err == nil {
			t.Error("ParseWithOptions() should fail on a malformed escape")
		}
		if _, err := ParseWithOptions("%zz=a", Options{StrictDecode: true}); err == nil {
			t.Error("ParseWithOptions() should fail on a malformed key escape")
		}
	})
}

func TestLenientDecode(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"a+b", "a b"},
		{"%41%4a", "AJ"},
		{"%", "%"},
		{"%4", "%4"},
		{"%G1x", "%G1x"},
		{"50%+off", "50% off"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := lenientDecode(tc.in); got != tc.expected {
				t.Errorf("lenientDecode(%q) = %q, want %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestBracketTokens(t *testing.T) {
	testCases := []struct {
		in       string
		expected []string
		ok       bool
	}{
		{"", nil, true},
		{"[a]", []string{"a"}, true},
		{"[a][][b]", []string{"a", "", "b"}, true},
		{"[a]x[b]", []string{"a"}, true},
		{"[a][b", []string{"a"}, true},
		{"[a", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := bracketTokens(tc.in)
			if ok != tc.ok {
				t.Errorf("bracketTokens(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("bracketTokens(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

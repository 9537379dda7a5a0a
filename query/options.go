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

// Package query decodes and encodes form-encoded URI query strings.
//
// Decoding follows the bracket semantics of PHP's parse_str: "a[]=1&a[]=2"
// produces a list, "a[b][c]=1" produces nested maps, plain keys are last-wins.
// Encoding is the inverse operation of http_build_query. Variables are kept in
// an insertion-ordered Vars mapping so that rendering is deterministic.
package query

// Options configures Parse and Encode.
//
// Separators lists the characters splitting key/value pairs while parsing.
// ArgSeparator joins pairs while encoding. MaxDepth bounds the number of
// bracketed segments of a key; deeper variables are dropped. When StrictDecode
// is set, malformed percent escapes make Parse fail instead of being kept
// literally.
type Options struct {
	Separators   string
	ArgSeparator string
	MaxDepth     int
	StrictDecode bool
}

// DefaultOptions is used by Parse, Encode and Build.
var DefaultOptions = Options{
	Separators:   "&",
	ArgSeparator: "&",
	MaxDepth:     64,
	StrictDecode: false,
}

// withDefaults fills the zero fields of opts from DefaultOptions.
func (opts Options) withDefaults() Options {
	if opts.Separators == "" {
		opts.Separators = DefaultOptions.Separators
	}
	if opts.ArgSeparator == "" {
		opts.ArgSeparator = DefaultOptions.ArgSeparator
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultOptions.MaxDepth
	}
	return opts
}

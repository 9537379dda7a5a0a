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
	"slices"
	"strings"
)

// CleanPath collapses repeated '/' separators and resolves "." and ".."
// segments lexically, for example:
//
//	/foo/bar/../boo.php    => /foo/boo.php
//	/foo/bar/../../boo.php => /boo.php
//	/foo/bar/.././/boo.php => /foo/boo.php
//	/../foo                => /foo
//
// A ".." directly under the root is dropped. A leading ".." of a relative
// path has nothing to consume and is kept.
func CleanPath(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	segments := strings.Split(path, "/")

	for i := 0; i < len(segments); i++ {
		switch {
		case segments[i] == ".", segments[i] == ".." && i == 1 && segments[0] == "":
			segments = slices.Delete(segments, i, i+1)
			i--
		case segments[i] == ".." && i > 0:
			segments = slices.Delete(segments, i-1, i+1)
			i -= 2
		}
	}
	return strings.Join(segments, "/")
}

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
package uri

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/jplu/uriparse/internal/log"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := Decompose("http://例え.jp/パス"); err != nil {
		t.Fatalf("Decompose() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "decomposing URI with UTF-8 safe encoding") {
		t.Errorf("fallback was not logged, got %q", out)
	}
	if !strings.Contains(out, "fast.type=uri.Components") {
		t.Errorf("rejected components were not logged, got %q", out)
	}

	buf.Reset()
	if _, err := Decompose("http://[::1/"); err == nil {
		t.Fatal("Decompose() should fail")
	}
	out = buf.String()
	if !strings.Contains(out, "URI decomposition failed") || !strings.Contains(out, "unbalanced brackets") {
		t.Errorf("failure was not logged, got %q", out)
	}

	buf.Reset()
	SetLogger(nil)
	if _, err := Decompose("http://例え.jp/パス"); err != nil {
		t.Fatalf("Decompose() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("noop logger wrote %q", buf.String())
	}
}

func TestSetDebugLogging(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	testCases := []struct {
		name string
		dev  bool
	}{
		{"Console", false},
		{"Developer", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetDebugLogging(&buf, tc.dev)
			if _, err := Decompose("http://例え.jp/パス"); err != nil {
				t.Fatalf("Decompose() error: %v", err)
			}
			if !strings.Contains(buf.String(), "decomposing URI with UTF-8 safe encoding") {
				t.Errorf("fallback was not logged, got %q", buf.String())
			}
		})
	}

	SetDebugLogging(nil, false)
	if logger() == log.Noop {
		t.Error("SetDebugLogging(nil) should log to stderr")
	}
}

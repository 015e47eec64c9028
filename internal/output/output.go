// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package output persists run reports as pretty-printed JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
	indent   = "  "
)

// Write serializes v as JSON with two-space indentation and writes it to
// path, replacing any existing file. Missing parent directories are
// created. It returns the absolute path that was written.
//
// The write is a plain overwrite, not an atomic rename. Failures are
// reported as *WriteError.
func Write(path string, v any) (string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("error resolving output path %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), dirPerm); err != nil {
		return "", &WriteError{Path: resolved, Op: OpMkdir, Err: err}
	}

	data, err := Marshal(v)
	if err != nil {
		return "", &WriteError{Path: resolved, Op: OpEncode, Err: err}
	}

	if err := os.WriteFile(resolved, data, filePerm); err != nil {
		return "", &WriteError{Path: resolved, Op: OpWrite, Err: err}
	}

	return resolved, nil
}

// Marshal renders v the way [Write] stores it: two-space indentation, no
// HTML escaping and no trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

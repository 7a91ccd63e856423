// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for designdoc.
//
// ReadResponse bounds response body reads at MaxResponseSize so that a
// misbehaving server cannot exhaust memory; ErrorBody does the same for
// error responses, keeping whatever was read. IsTextPayload decides
// whether a retrieved document body is usable text.
package netutil

import (
	"bytes"
	"io"
	"mime"
	"strings"
	"unicode/utf8"
)

// MaxResponseSize bounds response body reads: 32 MB. Documentation
// artifacts are a few kilobytes; GitHub's contents API refuses files
// over 100 MB, and the raw media type caps at that as well.
const MaxResponseSize int64 = 32 << 20

// ReadResponse reads a response body up to MaxResponseSize bytes. Use
// instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// ErrorBody reads an HTTP error response body and returns it as a
// string for diagnostic messages. Read errors are ignored: a partial
// body is still useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	return string(data)
}

// IsTextPayload reports whether a response with the given Content-Type
// header and body is textual. JSON media types are rejected: the
// GitHub contents API answers a raw-media request for a directory with
// a JSON listing, which is not a document. The raw media types GitHub
// may echo back are not JSON and are accepted, as is an empty
// Content-Type. The body must be valid UTF-8 and free of NUL bytes.
func IsTextPayload(contentType string, body []byte) bool {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return false
		}
		if strings.HasPrefix(mediaType, "application/vnd.github.raw") {
			return utf8.Valid(body) && bytes.IndexByte(body, 0) < 0
		}
		if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
			return false
		}
		if strings.HasPrefix(mediaType, "image/") ||
			strings.HasPrefix(mediaType, "audio/") ||
			strings.HasPrefix(mediaType, "video/") {
			return false
		}
	}
	return utf8.Valid(body) && bytes.IndexByte(body, 0) < 0
}

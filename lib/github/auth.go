// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

// authenticator provides the Authorization header value for a request.
// An empty value means the request is sent anonymously.
type authenticator interface {
	AuthorizationHeader() string
}

// tokenAuth is a static Bearer token authenticator for personal access
// tokens and fine-grained tokens.
type tokenAuth struct {
	header string
}

func newTokenAuth(token string) *tokenAuth {
	return &tokenAuth{header: "Bearer " + token}
}

func (auth *tokenAuth) AuthorizationHeader() string { return auth.header }

// anonymousAuth sends no Authorization header.
type anonymousAuth struct{}

func (anonymousAuth) AuthorizationHeader() string { return "" }

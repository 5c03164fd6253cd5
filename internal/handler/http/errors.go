// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSessionCookie is logged when an authenticated route is called
	// without the session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrNoUserInContext means a handler behind the auth middleware found
	// no user ID in the request context.
	ErrNoUserInContext = errors.New("no user ID in request context")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress stops the server at startup: without a listen address no
// HTTP handler is built.
var errNoHTTPAddress = errors.New("http address is not configured")

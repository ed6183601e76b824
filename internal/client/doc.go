// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the users API.
//
// Each invocation runs exactly one command against the server through
// [adapter.UserAdapter] and prints the JSON result:
//
//	users-client create -name Ana -email ana@x -password pw -cpf 123 -number 555
//	users-client get 1
//	users-client update 1 -name "Ana B"
//	users-client delete 1
//	users-client list
//	users-client version
//	users-client build-info
package client

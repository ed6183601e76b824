// Package config loads the settings of the users API server and its
// command-line client.
//
// Sources are merged with mergo, each one overriding the non-zero fields of
// the previous:
//  0. Built-in defaults (SQLite file, 0.0.0.0:8000)
//  1. Environment variables (APP_*, SERVER_*, STORAGE_DB_*, ADAPTER_*)
//  2. Command-line flags
//  3. JSON config file (CONFIG or -c/-config)
//
// [GetStructuredConfig] serves cmd/server, [GetClientConfig] serves cmd/client.
package config

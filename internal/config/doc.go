// Package config provides layered configuration for the remuneration
// analytics pipeline: built-in defaults, an optional YAML file, and
// REMCLI_* environment variable overrides, validated before use.
//
// The defaults reproduce behavior the source application left implicit —
// most importantly the Indian currency convention — so a bare Load("")
// matches what its dashboards displayed.
package config

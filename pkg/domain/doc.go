// Package domain contains the core value types shared across the application:
// the canonical form produced by the URL normalizer and the outcome of a copy
// command. They carry no infrastructure concerns so they can be passed freely
// between the normalizer, the copy command, the CLI and the HTTP API.
package domain

// Package schema parses YAML type descriptions into typedesc trees.
//
// The layout flattener normally consumes trees produced by a debugger
// adapter; the schema loader is the in-repo stand-in for that
// resolver boundary, letting layouts be produced from a hand-written
// description for tests, tooling, and offline use.
package schema

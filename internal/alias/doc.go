// SPDX-License-Identifier: MPL-2.0

// Package alias implements reprise's invocation alias engine: canonical
// name resolution, the persistent per-tool alias catalog, ancestor-scope
// search, front-end command classification, and argument splicing.
//
// An alias maps a short name to a stored sequence of command-line tokens.
// Aliases are global (spelled "/name") or scoped to a directory (spelled
// ".name" for the working directory, "..name" for its parent, and so on,
// or "~name" for the home directory). The storage identity of an alias is
// its CanonicalKey: "/" + name for global aliases, or the symlink-resolved
// absolute scope directory + "/" + name for local ones. Two spellings typed
// from different working directories that denote the same directory collapse
// to the same key.
//
// The engine treats stored and trailing tokens as opaque; validating them
// is the command-line parser's job.
package alias

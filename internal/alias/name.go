// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// CanonicalKey is the fully-resolved storage identity of an alias: "/" plus
// the bare name for global aliases, or an absolute, symlink-resolved scope
// directory plus "/" plus the bare name for local ones. Keys always use
// forward slashes, regardless of platform. Resolution is idempotent:
// resolving an already-canonical key returns it unchanged.
type CanonicalKey string

// Label returns the bare alias name (the final path element of the key).
func (k CanonicalKey) Label() string {
	return path.Base(string(k))
}

// ScopeDir returns the scope directory of the key ("/" for global aliases).
func (k CanonicalKey) ScopeDir() string {
	return path.Dir(string(k))
}

// IsGlobal reports whether the key lives in the global scope. A local alias
// defined at the filesystem root shares the global key space; this is a
// documented consequence of the key format.
func (k CanonicalKey) IsGlobal() bool {
	return k.ScopeDir() == "/"
}

// JoinKey builds a canonical key from an already-canonical scope directory
// and a bare name.
func JoinKey(dir, bare string) CanonicalKey {
	if dir == "/" {
		return CanonicalKey("/" + bare)
	}
	return CanonicalKey(dir + "/" + bare)
}

// IsAliasSpelling reports whether a command-line token uses an explicit
// alias spelling: a leading "/", ".", or "~". Bare tokens may still match an
// alias, but only through the classifier's probe order.
func IsAliasSpelling(tok string) bool {
	if tok == "" {
		return false
	}
	switch tok[0] {
	case '/', '.', '~':
		return true
	}
	return false
}

// IsBareName reports whether the typed name has no scope prefix and no
// path separators. Bare names are only meaningful to the alias-management
// commands, where they default to current-directory scope.
func IsBareName(typed string) bool {
	return typed != "" && !IsAliasSpelling(typed) && !strings.ContainsAny(typed, `/\`)
}

// Resolve canonicalizes a typed alias name against the given working
// directory. The rules apply in order:
//
//   - "~" is expanded to the symlink-resolved home directory first, as a
//     textual substitution ("~name" and "~/name" both become home + "/name").
//   - A name starting with "/" is already canonical; it is cleaned and
//     returned with the working directory ignored.
//   - N leading dots scope the name to the working directory walked upward
//     N-1 times (".name" is the working directory itself, "..name" its
//     parent, and so on). Walking above the filesystem root fails with
//     ErrScopeOutOfRange rather than clamping, so that two different intents
//     can never collide on one key.
//   - A bare name resolves like ".name"; callers that offer a global option
//     should use ResolveInScope instead.
//
// The remainder after the prefix must be non-empty and free of path
// separators, otherwise ErrMalformedAliasName is returned.
func Resolve(typed, cwd string) (CanonicalKey, error) {
	if typed == "" {
		return "", &MalformedNameError{Name: typed, Reason: "name is empty"}
	}

	name := typed
	if name[0] == '~' {
		rest := name[1:]
		if rest == "" || rest == "/" {
			return "", &MalformedNameError{Name: typed, Reason: "no name after home prefix"}
		}
		if rest[0] != '/' {
			rest = "/" + rest
		}
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		name = canonicalDir(home) + rest
	}

	if name[0] == '/' {
		key := path.Clean(name)
		base := path.Base(key)
		if key == "/" || base == "/" || base == "." || base == ".." {
			return "", &MalformedNameError{Name: typed, Reason: "no name after path prefix"}
		}
		return CanonicalKey(key), nil
	}

	dots := 0
	for dots < len(name) && name[dots] == '.' {
		dots++
	}
	rest := name[dots:]
	if rest == "" {
		return "", &MalformedNameError{Name: typed, Reason: "no name after scope prefix"}
	}
	if strings.ContainsAny(rest, `/\`) {
		return "", &MalformedNameError{Name: typed, Reason: "path separator after scope prefix"}
	}
	if dots == 0 {
		// Bare name: current-directory scope, management context only.
		dots = 1
	}

	dir := canonicalDir(cwd)
	for i := 1; i < dots; i++ {
		parent := path.Dir(dir)
		if parent == dir {
			return "", &ScopeOutOfRangeError{Name: typed, Dir: canonicalDir(cwd)}
		}
		dir = parent
	}
	return JoinKey(dir, rest), nil
}

// ResolveInScope is the management-command entry point: a bare name resolves
// globally when global is set, and to the working directory otherwise.
// Explicitly prefixed names resolve by their spelling regardless of global.
func ResolveInScope(typed, cwd string, global bool) (CanonicalKey, error) {
	if global && IsBareName(typed) {
		return Resolve("/"+typed, cwd)
	}
	return Resolve(typed, cwd)
}

// Shrink is the display-form inverse of Resolve: keys scoped to the working
// directory, its parent, or the home directory shrink to the ".", "..", and
// "~" spellings. Any other key is shown in full.
func Shrink(key CanonicalKey, cwd string) string {
	dir := key.ScopeDir()
	label := key.Label()
	cur := canonicalDir(cwd)
	if dir == cur {
		return "." + label
	}
	if parent := path.Dir(cur); parent != cur && dir == parent {
		return ".." + label
	}
	if home, err := homeDir(); err == nil && dir == canonicalDir(home) {
		return "~" + label
	}
	return string(key)
}

// canonicalDir normalizes a directory to the absolute, symlink-resolved,
// slash-separated form used inside canonical keys. Symlink resolution is
// best-effort: a directory that cannot be resolved (for example, one that
// no longer exists) keeps its cleaned absolute form.
func canonicalDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = filepath.Clean(dir)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return path.Clean(filepath.ToSlash(abs))
}

// homeOverride lets tests pin the home directory, since os.UserHomeDir does
// not respect the HOME environment variable on every platform.
var homeOverride string

// SetHomeOverride sets a custom home directory for "~" expansion.
// Pass "" to restore the real home directory. Intended for tests.
func SetHomeOverride(dir string) {
	homeOverride = dir
}

func homeDir() (string, error) {
	if homeOverride != "" {
		return homeOverride, nil
	}
	return os.UserHomeDir()
}

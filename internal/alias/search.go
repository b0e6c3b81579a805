// SPDX-License-Identifier: MPL-2.0

package alias

import "path"

// FindLocal searches for a bare alias name from the working directory
// upward. It probes the canonical key for each directory on the way to the
// filesystem root, including the root itself, and stops at the first hit,
// so the nearest-ancestor definition always wins. An alias defined at /a/b
// is therefore visible from /a/b and any of its descendants, but not from
// an unrelated sibling such as /a/z.
func FindLocal(bare, cwd string, t *Table) (CanonicalKey, Record, bool) {
	dir := canonicalDir(cwd)
	for {
		key := JoinKey(dir, bare)
		if rec, ok := t.Get(key); ok {
			return key, rec, true
		}
		parent := path.Dir(dir)
		if parent == dir {
			return "", Record{}, false
		}
		dir = parent
	}
}

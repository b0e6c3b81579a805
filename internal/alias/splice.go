// SPDX-License-Identifier: MPL-2.0

package alias

// Splice reconstitutes the final argument vector for an alias invocation:
// the stored tokens followed by the trailing tokens from the command line,
// in that order, with no deduplication or reordering. Stored-first placement
// lets an alias pin the leading sub-command and option context while
// trailing positional arguments vary per invocation.
func Splice(rec Record, trailing []string) []string {
	final := make([]string, 0, len(rec.Command)+len(trailing))
	final = append(final, rec.Command...)
	return append(final, trailing...)
}

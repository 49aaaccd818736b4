// Package timestamp detects a trailing timestamp in a file name and moves it
// to the front, ahead of the descriptive part.
package timestamp

import "regexp"

// suffixPattern matches a description followed by a timestamp in one of two
// layouts:
//
//  1. Standard: YYYY-M-D-H-M-S-<meridiem>  (e.g. 2025-10-09-21-15-39-PM),
//     joined to the description by a hyphen.
//  2. Edge case: YYYY-M-D_-_H-M-S with an optional meridiem
//     (e.g. 2025-05-29_-_19-29-55), joined by a hyphen or by the same `_-_`
//     token that joins its date and time portions.
//
// The description capture is greedy, so when a name contains several
// timestamp-shaped runs the last one wins. Trailing text after the seconds or
// meridiem (such as an extension) is outside the match and carries through
// unchanged. Exactly one of the two timestamp groups participates in a match.
var suffixPattern = regexp.MustCompile(`(.+)(?:-(\d{4}-\d+-\d+-\d+-\d+-\d+-\w+)|(?:_-_|-)(\d{4}-\d+-\d+_-_\d+-\d+-\d+(?:-\w+)?))`)

// Relocate rewrites "<description>-<timestamp><rest>" as
// "<timestamp>-<description><rest>". Names without a timestamp suffix are
// returned unchanged.
func Relocate(name string) string {
	return suffixPattern.ReplaceAllString(name, "${2}${3}-${1}")
}

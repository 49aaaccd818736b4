// Package sanitize normalizes file names into a constrained character set
// while preserving bracket-delimited hash/id annotations verbatim.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// disallowedChars matches anything not in [A-Za-z0-9.-_].
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)
	// multiHyphen collapses consecutive hyphens.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// segmentKind tags a segment as plain text or a bracket annotation.
type segmentKind int

const (
	outside segmentKind = iota
	bracket
)

// segment is one piece of a split name. For bracket segments, text holds the
// content between the brackets, without the brackets themselves.
type segment struct {
	kind segmentKind
	text string
}

// split scans name once and produces its ordered segments. A bracket segment
// requires an opening `[`, at least one non-`]` character, and a closing `]`;
// anything else (unclosed or empty brackets) stays in the surrounding outside
// text. A second `[` inside an open bracket is ordinary content.
func split(name string) []segment {
	var segs []segment
	var out strings.Builder

	for i := 0; i < len(name); i++ {
		if name[i] == '[' {
			if j := strings.IndexByte(name[i+1:], ']'); j > 0 {
				if out.Len() > 0 {
					segs = append(segs, segment{outside, out.String()})
					out.Reset()
				}
				segs = append(segs, segment{bracket, name[i+1 : i+1+j]})
				i += j + 1
				continue
			}
		}
		out.WriteByte(name[i])
	}

	if out.Len() > 0 {
		segs = append(segs, segment{outside, out.String()})
	}
	return segs
}

// Name converts a file name to a constrained, filesystem-friendly form.
//
// Text outside brackets:
//   - Replaces spaces with hyphens
//   - Strips all characters not in [A-Za-z0-9.-_]
//   - Collapses consecutive hyphens
//   - Lowercases
//   - Trims leading/trailing hyphens
//
// Text inside a [..] annotation keeps its case and hyphens; only the
// character filter applies, and the annotation is reattached as `-[content]`.
//
// Example: "My Report [AbC123].pdf" → "my-report-[abc123].pdf"
func Name(name string) string {
	var b strings.Builder
	for _, seg := range split(name) {
		switch seg.kind {
		case bracket:
			b.WriteString("-[")
			b.WriteString(disallowedChars.ReplaceAllString(seg.text, ""))
			b.WriteString("]")
		default:
			s := strings.ReplaceAll(seg.text, " ", "-")
			s = disallowedChars.ReplaceAllString(s, "")
			s = multiHyphen.ReplaceAllString(s, "-")
			s = strings.ToLower(s)
			s = strings.Trim(s, "-")
			b.WriteString(s)
		}
	}
	return b.String()
}

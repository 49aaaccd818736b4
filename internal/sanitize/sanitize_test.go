package sanitize

import (
	"regexp"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bracket case preserved", input: "My Report [AbC123].pdf", want: "my-report-[AbC123].pdf"},
		{name: "spaces and punctuation", input: "Vacation  Photo!!.jpg", want: "vacation-photo.jpg"},
		{name: "leading trailing spaces", input: "  spaces  ", want: "spaces"},
		{name: "collapse hyphens", input: "a--b", want: "a-b"},
		{name: "uppercase outside", input: "UPPER_case.TXT", want: "upper_case.txt"},
		{name: "entirely bracket content", input: "[abc]", want: "-[abc]"},
		{name: "bracket hyphens kept", input: "notes [v1.2-FINAL] (draft).md", want: "notes-[v1.2-FINAL]draft.md"},
		{name: "adjacent brackets", input: "a[X][Y-Z]b", want: "a-[X]-[Y-Z]b"},
		{name: "brackets around text", input: "[A-1] [B-2]", want: "-[A-1]-[B-2]"},
		{name: "empty brackets are plain text", input: "a[]b", want: "ab"},
		{name: "unclosed bracket is plain text", input: "x[unclosed", want: "xunclosed"},
		{name: "nested open bracket", input: "a[[b]]", want: "a-[b]"},
		{name: "brackets mid name", input: "a[x]mid[y]z", want: "a-[x]mid-[y]z"},
		{name: "only hyphens", input: "---", want: ""},
		{name: "only special chars", input: "()", want: ""},
		{name: "empty string", input: "", want: ""},
		{name: "already valid", input: "already-valid.txt", want: "already-valid.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{
		"My Report [AbC123].pdf",
		"Vacation  Photo!!.jpg",
		"notes [v1.2-FINAL] (draft).md",
		"a[X][Y-Z]b",
		"[A-1] [B-2]",
		"a[]b",
		"UPPER_case.TXT",
		"  spaces  ",
		"",
	}

	for _, input := range inputs {
		once := Name(input)
		twice := Name(once)
		if twice != once {
			t.Errorf("Name not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

// bracketRegion matches a reattached bracket annotation, wrapper hyphen
// included, so it can be cut out before checking the outside-text invariant.
var bracketRegion = regexp.MustCompile(`-\[[^\]]*\]`)

func TestNameNoDoubleHyphensOutsideBrackets(t *testing.T) {
	inputs := []string{
		"a -- b --- c",
		"x[a--b]y--z",
		"!! spaced !! out !!",
		"many----hyphens [KEEP--THESE] more----here",
	}

	for _, input := range inputs {
		got := Name(input)
		stripped := bracketRegion.ReplaceAllString(got, "")
		if strings.Contains(stripped, "--") {
			t.Errorf("Name(%q) = %q has consecutive hyphens outside brackets", input, got)
		}
	}
}

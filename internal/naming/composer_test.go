package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		g        Granularity
		addDate  bool
		created  Date
		want     string
	}{
		{
			name: "separators and case only", filename: "Hello_World.txt",
			g: GranularityDay, want: "hello-world.txt",
		},
		{
			name: "space to hyphen and extension lowered", filename: "My Document.PDF",
			g: GranularityDay, want: "my-document.pdf",
		},
		{
			name: "underscore date reformatted", filename: "2024_05_15_Report.docx",
			g: GranularityDay, want: "2024-05-15-report.docx",
		},
		{
			name: "digit run date reformatted", filename: "20240515-notes.txt",
			g: GranularityDay, want: "2024-05-15-notes.txt",
		},
		{
			name: "creation date prefix", filename: "document.txt",
			g: GranularityDay, addDate: true, created: Date{2024, 12, 13},
			want: "2024-12-13-document.txt",
		},
		{
			name: "month granularity", filename: "2024_05_15_Report.txt",
			g: GranularityMonth, want: "2024-05-report.txt",
		},
		{
			name: "year granularity", filename: "2024_05_15_Report.txt",
			g: GranularityYear, want: "2024-report.txt",
		},
		{
			name: "date stays inline", filename: "report_2024_05_15_final.txt",
			g: GranularityDay, want: "report-2024-05-15-final.txt",
		},
		{
			name: "year token inline", filename: "Summary 2024 Draft.md",
			g: GranularityDay, want: "summary-2024-draft.md",
		},
		{
			name: "existing date wins over prefix", filename: "2024-12-13-document.txt",
			g: GranularityDay, addDate: true, created: Date{2025, 1, 1},
			want: "2024-12-13-document.txt",
		},
		{
			name: "creation date at month granularity", filename: "document.txt",
			g: GranularityMonth, addDate: true, created: Date{2024, 12, 13},
			want: "2024-12-document.txt",
		},
		{
			name: "add date without creation date is a no-op", filename: "document.txt",
			g: GranularityDay, addDate: true,
			want: "document.txt",
		},
		{
			name: "creation year out of detection range is not prefixed", filename: "document.txt",
			g: GranularityDay, addDate: true, created: Date{2150, 1, 2},
			want: "document.txt",
		},
		{
			name: "creation year before detection range is not prefixed", filename: "document.txt",
			g: GranularityDay, addDate: true, created: Date{1899, 12, 31},
			want: "document.txt",
		},
		{
			name: "no extension", filename: "My Notes",
			g: GranularityDay, want: "my-notes",
		},
		{
			name: "separator-only stem", filename: "___.txt",
			g: GranularityDay, want: ".txt",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCandidate("/tmp/" + tc.filename)
			c.Created = tc.created
			assert.Equal(t, tc.want, Compose(c, tc.g, tc.addDate))
		})
	}
}

// A name that is already canonical for a given configuration must come out
// unchanged: the primary correctness property of the composer.
func TestCompose_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello_World.txt",
		"My Document.PDF",
		"2024_05_15_Report.docx",
		"20240515-notes.txt",
		"report_2024_05_15_final.txt",
		"Summary 2024 Draft.md",
		"plain.txt",
		"NoExtension File",
	}
	grans := []Granularity{GranularityDay, GranularityMonth, GranularityYear}
	// Includes years the detector would not recognize: prefixing one would
	// make the second pass prefix again.
	createds := []Date{{2024, 12, 13}, {2150, 1, 2}, {1899, 12, 31}}

	for _, in := range inputs {
		for _, g := range grans {
			for _, addDate := range []bool{false, true} {
				for _, created := range createds {
					first := NewCandidate("/tmp/" + in)
					first.Created = created
					once := Compose(first, g, addDate)

					second := NewCandidate("/tmp/" + once)
					second.Created = created
					assert.Equal(t, once, Compose(second, g, addDate),
						"input %q granularity %s addDate %v created %v", in, g, addDate, created)
				}
			}
		}
	}
}

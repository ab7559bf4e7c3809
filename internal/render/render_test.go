// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func TestMarkdownBlocks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "heading levels",
			src:  "<body><h1>One</h1><h3>Three</h3></body>",
			want: "# One\n\n### Three",
		},
		{
			name: "link and emphasis",
			src:  `<body><p>see <a href="http://x">the <b>bold</b> paper</a> here</p></body>`,
			want: "see [the **bold** paper](http://x) here",
		},
		{
			name: "image",
			src:  `<body><p>fig <img src="a.png" alt="chart"> end</p></body>`,
			want: "fig ![chart](a.png) end",
		},
		{
			name: "unordered list",
			src:  "<body><ul><li>a</li><li>b</li></ul></body>",
			want: "- a\n- b",
		},
		{
			name: "ordered list",
			src:  "<body><ol><li>a</li><li>b</li></ol></body>",
			want: "1. a\n2. b",
		},
		{
			name: "paragraph whitespace collapsed",
			src:  "<body><p>a\n   b\t\tc</p></body>",
			want: "a b c",
		},
		{
			name: "blockquote",
			src:  "<body><blockquote>quoted</blockquote></body>",
			want: "> quoted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Markdown(parse(t, tt.src))
			if got != tt.want {
				t.Errorf("Markdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarkdownTableRows(t *testing.T) {
	src := `<body><table>
		<tr><th>文章</th><th>核心问题</th></tr>
		<tr><td>[T](http://x)|core|src|method|concl|sum</td></tr>
	</table></body>`

	got := Markdown(parse(t, src))
	lines := strings.Split(got, "\n")

	if len(lines) != 3 {
		t.Fatalf("want 3 table lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "文章|核心问题" {
		t.Errorf("header row = %q", lines[0])
	}
	if lines[1] != "---|---" {
		t.Errorf("separator row = %q", lines[1])
	}
	if lines[2] != "[T](http://x)|core|src|method|concl|sum" {
		t.Errorf("data row = %q", lines[2])
	}
}

func TestMarkdownNoTripleBlankLines(t *testing.T) {
	src := "<body>" + strings.Repeat("<h2>h</h2><p>p</p>", 20) + "</body>"
	got := Markdown(parse(t, src))
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("output contains a run of 3+ newlines")
	}
	if strings.HasSuffix(got, "\n") || strings.HasPrefix(got, "\n") {
		t.Errorf("output not trimmed: %q", got)
	}
}

func TestMarkdownNoTrailingSpaces(t *testing.T) {
	got := Markdown(parse(t, "<body><p>a</p><p>b</p></body>"))
	for _, line := range strings.Split(got, "\n") {
		if line != strings.TrimRight(line, " \t") {
			t.Errorf("line has trailing whitespace: %q", line)
		}
	}
}

func TestText(t *testing.T) {
	src := `<body><h2>标题</h2><p>first   paragraph with <a href="http://x">link</a></p><p>second</p></body>`
	got := Text(parse(t, src))

	if strings.Contains(got, "<") || strings.Contains(got, "http://x") {
		t.Errorf("tags or URLs leaked into text output: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("space run survived: %q", got)
	}
	if !strings.Contains(got, "first paragraph with link") {
		t.Errorf("content missing: %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank-line run survived: %q", got)
	}
}

func TestTextTableCellsSeparated(t *testing.T) {
	got := Text(parse(t, "<body><table><tr><td>a</td><td>b</td></tr></table></body>"))
	if !strings.Contains(got, "a b") {
		t.Errorf("cells not space-separated: %q", got)
	}
}

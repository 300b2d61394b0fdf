package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`<a href="x">'&'</a>`, "&lt;a href=&quot;x&quot;&gt;&#39;&amp;&#39;&lt;/a&gt;"},
		{"&amp;", "&amp;amp;"},
		{"言<>", "言&lt;&gt;"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHTML(tt.in))
	}
}

func TestEscapeHTML_NoRawSpecials(t *testing.T) {
	t.Parallel()

	inputs := []string{`<<>>""''&&`, "a<b>c", `"quoted" 'single'`, "x & y"}
	for _, in := range inputs {
		out := EscapeHTML(in)
		assert.False(t, strings.ContainsAny(out, `<>"'`), "output %q", out)
		// Every remaining ampersand starts an entity.
		for i := strings.IndexByte(out, '&'); i >= 0; {
			rest := out[i:]
			assert.True(t,
				strings.HasPrefix(rest, "&amp;") || strings.HasPrefix(rest, "&lt;") ||
					strings.HasPrefix(rest, "&gt;") || strings.HasPrefix(rest, "&quot;") ||
					strings.HasPrefix(rest, "&#39;"),
				"bare ampersand in %q", out)
			next := strings.IndexByte(out[i+1:], '&')
			if next < 0 {
				break
			}
			i += next + 1
		}
	}
}

func TestSpanHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span domain.Span
		want string
	}{
		{
			name: "plain",
			span: domain.PlainSpan("a<b"),
			want: "a&lt;b",
		},
		{
			name: "plain newlines",
			span: domain.PlainSpan("\n\n"),
			want: "\n<br>\n<br>",
		},
		{
			name: "word",
			span: domain.WordSpan("言", "toki : 说话", 0),
			want: `<span title="toki : 说话">言</span>`,
		},
		{
			name: "mark",
			span: domain.WordSpan("者", "li : ", domain.RoleMark),
			want: `<span class="mark" title="li : ">者</span>`,
		},
		{
			name: "prepo",
			span: domain.WordSpan("在", `lon : "at"`, domain.RolePrepo),
			want: `<span class="prepo" title="lon : &quot;at&quot;">在</span>`,
		},
		{
			name: "both roles",
			span: domain.WordSpan("x", "t", domain.RoleMark|domain.RolePrepo),
			want: `<span class="mark prepo" title="t">x</span>`,
		},
		{
			name: "trailing space",
			span: domain.Span{Text: "toki", Annotated: true, Tooltip: "toki", TrailingSpace: true},
			want: `<span title="toki">toki</span> `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SpanHTML(tt.span))
		})
	}
}

func TestRenderHTML_Forward(t *testing.T) {
	t.Parallel()

	got := RenderHTML(ConvertForward("mi li toki.\n", testDict()))
	want := `<span title="mi : 我">吾</span> <span class="mark" title="li : ">者</span> ` +
		`<span title="toki : 说话">言</span>。` + "\n<br>"
	assert.Equal(t, want, got)
}

func TestRenderHTML_Reverse(t *testing.T) {
	t.Parallel()

	got := RenderHTML(ConvertReverse("吾在。", testDict()))
	want := `<span title="我">mi</span> <span class="prepo" title="at">lon</span> .`
	assert.Equal(t, want, got)
}

func TestRenderPage(t *testing.T) {
	t.Parallel()

	page := RenderPage("<span>x</span>")
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>道本语转换结果</title>")
	assert.Contains(t, page, "<body>\n<span>x</span>\n</body>")
	assert.Contains(t, page, ".mark {")
}

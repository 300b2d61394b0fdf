package convert

import (
	"strings"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the five HTML-significant characters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// SpanHTML renders a single span as an HTML fragment.
func SpanHTML(sp domain.Span) string {
	var b strings.Builder
	writeSpan(&b, sp)
	return b.String()
}

// RenderHTML concatenates the HTML fragments of spans.
func RenderHTML(spans []domain.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		writeSpan(&b, sp)
	}
	return b.String()
}

// RenderPlain concatenates the visible text of spans without markup.
func RenderPlain(spans []domain.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
		if sp.Annotated && sp.TrailingSpace {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func writeSpan(b *strings.Builder, sp domain.Span) {
	if !sp.Annotated {
		b.WriteString(strings.ReplaceAll(EscapeHTML(sp.Text), "\n", "\n<br>"))
		return
	}

	b.WriteString("<span")
	if classes := sp.Roles.Classes(); len(classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(strings.Join(classes, " "))
		b.WriteByte('"')
	}
	b.WriteString(` title="`)
	b.WriteString(EscapeHTML(sp.Tooltip))
	b.WriteString(`">`)
	b.WriteString(EscapeHTML(sp.Text))
	b.WriteString("</span>")
	if sp.TrailingSpace {
		b.WriteByte(' ')
	}
}

const pageHead = `<!DOCTYPE html>
<html lang="zh">
<head>
<meta charset="UTF-8">
<title>道本语转换结果</title>
<style>
body {
    line-height: 1.6;
    margin: 100px;
}
span {
    cursor: help;
    border-bottom: 1px dotted #888;
}
.mark {
    color: #999;
}
.prepo {
    font-style: italic;
}
</style>
</head>
<body>
`

const pageTail = `
</body>
</html>
`

// RenderPage wraps rendered HTML fragments into a standalone document.
func RenderPage(body string) string {
	return pageHead + body + pageTail
}

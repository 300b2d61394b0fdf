package csvdict

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MauritiusChief/toki-ante/internal/domain"
)

func csvText(rows ...string) string {
	return strings.Join(append([]string{Header}, rows...), "\n")
}

func TestParse_Basic(t *testing.T) {
	t.Parallel()

	d, err := Parse(csvText("toki,言,说话", "mi,吾,我"))
	require.NoError(t, err)

	assert.Equal(t, []domain.Entry{
		{Word: "toki", Display: "言", Gloss: "说话"},
		{Word: "mi", Display: "吾", Gloss: "我"},
	}, d.Entries())
}

func TestParse_HeaderMismatch(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":          "",
		"blank":          "   ",
		"wrong header":   "word,display,gloss\ntoki,言,说话",
		"header later":   "\n" + Header + "\ntoki,言,说话",
		"partial header": "道本语,正字\ntoki,言,说话",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d, err := Parse(in)
			assert.Nil(t, d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrFormat))

			var fe *FormatError
			assert.True(t, errors.As(err, &fe))
		})
	}
}

func TestParse_BOMAndCRLF(t *testing.T) {
	t.Parallel()

	in := "\uFEFF" + Header + "\r\ntoki,言,说话\r\nmi,吾,\r\n"
	d, err := Parse(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"toki", "mi"}, d.Words())
	e, _ := d.Lookup("mi")
	assert.Equal(t, "", e.Gloss)
}

func TestParse_HeaderWhitespaceTrimmed(t *testing.T) {
	t.Parallel()

	d, err := Parse("  " + Header + "\t\ntoki,言,")
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	t.Parallel()

	d, err := Parse(csvText(
		"",
		"   ",
		"lonely",
		" ,空,empty key",
		"toki,言,说话",
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"toki"}, d.Words())
}

func TestParse_TrimsFields(t *testing.T) {
	t.Parallel()

	d, err := Parse(csvText("  pona , 良 ,  好  "))
	require.NoError(t, err)

	e, ok := d.Lookup("pona")
	require.True(t, ok)
	assert.Equal(t, "良", e.Display)
	assert.Equal(t, "好", e.Gloss)
}

func TestParse_LastWriteWins(t *testing.T) {
	t.Parallel()

	d, err := Parse(csvText("toki,言,说话", "mi,吾,我", "toki,语,语言"))
	require.NoError(t, err)

	e, ok := d.Lookup("toki")
	require.True(t, ok)
	assert.Equal(t, "语", e.Display)
	assert.Equal(t, "语言", e.Gloss)
	assert.Equal(t, []string{"toki", "mi"}, d.Words())
}

func TestParse_QuotedFields(t *testing.T) {
	t.Parallel()

	d, err := Parse(csvText(
		`ala,"无,不","没有, 不"`,
		`o,"""乎""",呼唤`,
		`a,啊,"未闭合, 到行尾`,
	))
	require.NoError(t, err)

	ala, _ := d.Lookup("ala")
	assert.Equal(t, "无,不", ala.Display)
	assert.Equal(t, "没有, 不", ala.Gloss)

	o, _ := d.Lookup("o")
	assert.Equal(t, `"乎"`, o.Display)

	a, _ := d.Lookup("a")
	assert.Equal(t, "未闭合, 到行尾", a.Gloss)
}

func TestParse_EmptyDisplayKept(t *testing.T) {
	t.Parallel()

	d, err := Parse(csvText("kin,,also"))
	require.NoError(t, err)

	e, ok := d.Lookup("kin")
	require.True(t, ok)
	assert.Equal(t, "", e.Display)
}

func TestSplitLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"trailing comma", "a,b,", []string{"a", "b", ""}},
		{"quoted comma", `"a,b",c`, []string{"a,b", "c"}},
		{"escaped quote", `"a""b",c`, []string{`a"b`, "c"}},
		{"quote mid field", `a"b,c"d,e`, []string{"ab,cd", "e"}},
		{"empty", "", []string{""}},
		{"multibyte", "toki,言,说话", []string{"toki", "言", "说话"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitLine(tt.in))
		})
	}
}

func TestWrite_ParsesBack(t *testing.T) {
	t.Parallel()

	src := domain.NewDictionary()
	src.Set("ala", "无,不", `"not"`)
	src.Set("toki", "言", "")
	src.Set("mi", "吾", "我")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src))
	assert.True(t, strings.HasPrefix(buf.String(), "\uFEFF"+Header+"\n"))

	got, err := Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, src.Entries(), got.Entries())
}

package preset

import (
	"fmt"
	"strings"

	"github.com/MauritiusChief/toki-ante/internal/csvdict"
	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// Variant rewrites the display form of selected words of the base
// dictionary.
type Variant struct {
	File  string
	Edits map[string]string
}

// VariantConservative shows particles as their Latin spelling.
var VariantConservative = Variant{
	File: "dictionary_c.csv",
	Edits: map[string]string{
		"e":  "e",
		"la": "la",
		"li": "li",
		"o":  "o",
		"pi": "pi",
	},
}

// VariantOnomatopoeia shows particles as sound-alike interjections.
var VariantOnomatopoeia = Variant{
	File: "dictionary_d.csv",
	Edits: map[string]string{
		"e":  "唉",
		"la": "啦",
		"li": "哩",
		"o":  "哦",
		"pi": "噼",
	},
}

// VariantFriendly widens display forms with common synonyms so that more
// written characters map back to a word.
var VariantFriendly = Variant{
	File: "dictionary_f.csv",
	Edits: map[string]string{
		"ala":     "无不非否",
		"e":       "把将",
		"ijo":     "什物",
		"ike":     "坏歹",
		"kalama":  "声音",
		"kama":    "来至到",
		"kasi":    "草木",
		"ken":     "可能",
		"kili":    "果蔬",
		"kin":     "亦也",
		"kiwen":   "石硬",
		"laso":    "蓝兰",
		"lawa":    "首头",
		"li":      "者兮",
		"loje":    "红丹",
		"luka":    "手五",
		"lukin":   "看见",
		"mi":      "吾我",
		"o":       "乎请",
		"pali":    "工作做造",
		"pan":     "米面",
		"pana":    "出予",
		"pona":    "良好",
		"sewi":    "上天",
		"sike":    "年轮",
		"sina":    "你尔",
		"sitelen": "图书",
		"taso":    "但惟",
		"toki":    "语言话",
		"tawa":    "向往",
		"utala":   "战斗",
		"weka":    "离去",
	},
}

// Variants lists the variants generated from the base dictionary.
var Variants = []Variant{VariantConservative, VariantOnomatopoeia, VariantFriendly}

// Derive returns a copy of base with the display form of every edited word
// replaced. Order and glosses are kept; words absent from base are ignored.
func Derive(base *domain.Dictionary, v Variant) *domain.Dictionary {
	out := domain.NewDictionary()
	base.Each(func(e domain.Entry) bool {
		display := e.Display
		if d, ok := v.Edits[e.Word]; ok {
			display = d
		}
		out.Set(e.Word, display, e.Gloss)
		return true
	})
	return out
}

// DeriveCSV parses baseCSV, applies v and serializes the result.
func DeriveCSV(baseCSV string, v Variant) (string, error) {
	base, err := csvdict.Parse(baseCSV)
	if err != nil {
		return "", fmt.Errorf("derive %s: %w", v.File, err)
	}

	var b strings.Builder
	if err := csvdict.Write(&b, Derive(base, v)); err != nil {
		return "", fmt.Errorf("derive %s: %w", v.File, err)
	}
	return b.String(), nil
}

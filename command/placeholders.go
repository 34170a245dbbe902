package command

import "strings"

// Placeholders are the words inserted when a command runs without a
// selection. Each decoration has its own word so a second toggle can find
// the one it inserted.
type Placeholders struct {
	Bold   string `json:"bold"   toml:"bold"`
	Italic string `json:"italic" toml:"italic"`
	Strike string `json:"strike" toml:"strike"`
	Link   string `json:"link"   toml:"link"`
	Code   string `json:"code"   toml:"code"`
}

const DefaultLocale = "en"

var localePlaceholders = map[string]Placeholders{
	"en": {
		Bold:   "strong text",
		Italic: "emphasized text",
		Strike: "struck text",
		Link:   "link text",
		Code:   "enter code here",
	},
	"ko": {
		Bold:   "굵은 텍스트",
		Italic: "기울인 텍스트",
		Strike: "취소선 텍스트",
		Link:   "링크텍스트",
		Code:   "코드를 입력하세요",
	},
}

// PlaceholdersFor returns the built-in placeholders for locale. Region
// suffixes are ignored ("ko-KR" resolves to "ko").
func PlaceholdersFor(locale string) (Placeholders, bool) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	p, ok := localePlaceholders[locale]
	return p, ok
}

// Merge returns p with empty fields taken from fallback.
func (p Placeholders) Merge(fallback Placeholders) Placeholders {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Placeholders{
		Bold:   pick(p.Bold, fallback.Bold),
		Italic: pick(p.Italic, fallback.Italic),
		Strike: pick(p.Strike, fallback.Strike),
		Link:   pick(p.Link, fallback.Link),
		Code:   pick(p.Code, fallback.Code),
	}
}

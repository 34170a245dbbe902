package embed

import (
	"regexp"
	"strings"
)

type matcher struct {
	provider Provider
	extract  func(text string) (string, bool)
}

// Providers are tried in this order; the first hit wins.
var matchers = []matcher{
	{provider: YouTube, extract: submatch(regexp.MustCompile(`^<iframe.*src="https://www\.youtube\.com/embed/(.*?)".*</iframe>$`))},
	{provider: Twitter, extract: tweetID},
	{provider: CodeSandbox, extract: submatch(regexp.MustCompile(`(?s)^<iframe.*src="https://codesandbox\.io/embed/(.*?)".*</iframe>$`))},
	// Not end-anchored: any text after the src attribute is accepted.
	{provider: CodePen, extract: submatch(regexp.MustCompile(`^<iframe.*src="https://codepen\.io/(.*?)".*`))},
}

var (
	tweetHref = regexp.MustCompile(`href="(.*?)"`)
	tweetPath = regexp.MustCompile(`twitter\.com/(.*?)\?`)
)

const tweetPrefix = `<blockquote class="twitter-tweet`

// Detect reports the first provider whose snippet shape matches text.
func Detect(text string) (Match, bool) {
	for _, m := range matchers {
		if id, ok := m.extract(text); ok {
			return Match{Provider: m.provider, ID: id}, true
		}
	}
	return Match{}, false
}

func submatch(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		sm := re.FindStringSubmatch(text)
		if sm == nil {
			return "", false
		}
		return sm[1], true
	}
}

// tweetID takes the last href in the blockquote, which is the tweet
// permalink in the markup twitter hands out, and returns its path.
func tweetID(text string) (string, bool) {
	if !strings.HasPrefix(text, tweetPrefix) {
		return "", false
	}
	links := tweetHref.FindAllStringSubmatch(text, -1)
	if len(links) == 0 {
		return "", false
	}
	sm := tweetPath.FindStringSubmatch(links[len(links)-1][1])
	if sm == nil {
		return "", false
	}
	return sm[1], true
}

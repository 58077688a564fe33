package tags

import (
	"net/url"
	"path"
	"slices"
	"strings"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// SplitImage finds the first http(s) link to an image file in content and returns
// it along with the remaining text. url is empty when content holds no image link.
func SplitImage(content string) (imageURL, rest string) {
	for _, word := range strings.Fields(content) {
		u, err := url.Parse(word)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			continue
		}
		if slices.Contains(imageExtensions, strings.ToLower(path.Ext(u.Path))) {
			return word, strings.TrimSpace(strings.Replace(content, word, "", 1))
		}
	}
	return "", content
}

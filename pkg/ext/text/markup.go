package text

import "regexp"

var tagPattern = regexp.MustCompile(`(?s)<.*?>`)

// StripMarkup removes every tag-like substring from s. It does not validate
// structure or decode entities, and whitespace around removed tags is kept.
func StripMarkup(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

func StripHTML(s string) string {
	return StripMarkup(s)
}

func StripXML(s string) string {
	return StripMarkup(s)
}

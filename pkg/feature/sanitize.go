package feature

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// SanitizeDescription collapses whitespace in raw and strips everything but
// inline formatting (emphasis, code, line breaks and links).
func SanitizeDescription(raw string) RichText {
	collapsed := strings.Join(strings.Fields(raw), " ")
	if collapsed == "" {
		return ""
	}
	cleaned := strings.TrimSpace(descriptionSanitizer().Sanitize(collapsed))
	return RichText(cleaned)
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("strong", "em", "b", "i", "code", "br", "span", "small", "mark")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowURLSchemes("http", "https", "mailto")
		policy.RequireParseableURLs(true)
		policy.AllowRelativeURLs(true)
		policy.RequireNoFollowOnFullyQualifiedLinks(true)
		policy.AllowAttrs("class").OnElements("span", "code", "mark")
		descriptionPolicy = policy
	})
	return descriptionPolicy
}

package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

// sanitizeRichText cleans host-authored description markup before it lands in
// the sheet. The policy allows common prose elements only; scripts, event
// handlers and styles are stripped.
func sanitizeRichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"p", "br", "hr", "em", "strong", "i", "b", "u", "s",
			"ul", "ol", "li", "blockquote", "pre", "code",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowElements("a")
		policy.RequireNoFollowOnLinks(true)
		policy.AllowStandardURLs()

		richTextPolicy = policy
	})
	return richTextPolicy
}

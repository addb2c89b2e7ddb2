package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	widgetPolicyOnce sync.Once
	widgetPolicy     *bluemonday.Policy
)

// sanitizeWidget strips anything the widget templates never emit. Attribute
// values come straight from DSL source, so links and image sources are
// limited to http, https, mailto and relative URLs.
func sanitizeWidget(raw string) string {
	return strings.TrimSpace(widgetSanitizer().Sanitize(raw))
}

func widgetSanitizer() *bluemonday.Policy {
	widgetPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"a", "aside", "button", "div", "dl", "dd", "dt", "footer", "form",
			"h2", "h3", "i", "img", "input", "label", "li", "nav", "ol",
			"option", "p", "select", "span", "strong", "table", "tbody", "td",
			"textarea", "th", "thead", "tr", "ul",
		)
		policy.AllowAttrs("class", "style", "role", "title").Globally()
		policy.AllowAttrs("aria-current", "aria-selected", "aria-valuenow", "aria-valuemax").Globally()
		policy.AllowDataAttributes()

		policy.AllowAttrs("href").OnElements("a")
		policy.AllowAttrs("src", "alt").OnElements("img")
		policy.AllowAttrs("type", "placeholder", "value", "min", "max", "step", "checked", "disabled").OnElements("input")
		policy.AllowAttrs("type").OnElements("button")
		policy.AllowAttrs("value").OnElements("option")
		policy.AllowAttrs("rows").OnElements("textarea")

		policy.AllowURLSchemes("http", "https", "mailto")
		policy.AllowRelativeURLs(true)
		policy.RequireParseableURLs(true)

		widgetPolicy = policy
	})
	return widgetPolicy
}

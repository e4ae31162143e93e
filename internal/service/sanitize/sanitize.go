// Package sanitize strips markup from user-submitted text before it is
// persisted. The API stores plain text only.
package sanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes every HTML element from s. Entities introduced by the policy
// are unescaped again so plain text like "1 < 2" round-trips unchanged.
func Text(s string) string {
	return html.UnescapeString(policy.Sanitize(s))
}

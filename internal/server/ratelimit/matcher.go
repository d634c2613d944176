package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for routes that are never limited.
var unlimited = &Rule{}

// Match finds the rule for a request. Exact paths win over prefixes and the longest
// prefix wins among prefixes. It returns nil when no rule applies.
func Match(path, method string, rules []Rule) *Rule {
	if method == http.MethodGet && path == "/health" {
		return unlimited
	}

	var best *Rule
	for i := range rules {
		r := &rules[i]
		if r.Method != method {
			continue
		}
		if r.Path == path {
			return r
		}
		if strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			if best == nil || len(r.Path) > len(best.Path) {
				best = r
			}
		}
	}
	return best
}

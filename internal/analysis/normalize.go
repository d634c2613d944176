package analysis

import (
	"strings"
	"unicode"
)

// skillAliases maps common skill name variants to one lowercase canonical key
var skillAliases = map[string]string{
	"golang":              "go",
	"go lang":             "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"k8s":                 "kubernetes",
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"node.js":             "node",
	"nodejs":              "node",
	"postgres":            "postgresql",
	"ml":                  "machine learning",
	"ai":                  "machine learning",
	"amazon web services": "aws",
	"ux":                  "ux design",
	"ui":                  "ui design",
}

// stopwords are dropped from free-text tokens
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "of": true, "to": true, "in": true,
	"for": true, "with": true, "on": true, "my": true, "i": true, "be": true, "want": true,
}

// normalizeSkill lowercases a skill and resolves known aliases.
func normalizeSkill(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}
	return lower
}

// tokens splits free text into lowercase words, keeping characters like + and # that
// appear in skill names.
func tokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if stopwords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

func tokenSet(texts ...string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range texts {
		for _, tok := range tokens(t) {
			set[tok] = true
		}
	}
	return set
}

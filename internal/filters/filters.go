// Package filters turns free-text names typed by a developer into the
// canonical identifiers the project manifest is keyed by.
package filters

import (
	"strings"
	"unicode"

	"github.com/huandu/xstrings"
)

// PackageName returns the dash-case form of a package name ("Blog Posts" -> "blog-posts").
func PackageName(name string) string {
	return dashCase(name)
}

// AppName returns the dash-case form of an application name.
func AppName(name string) string {
	return dashCase(name)
}

// ModuleName returns the camel-case form of a module name ("blog posts" -> "blogPosts").
func ModuleName(name string) string {
	words := strings.Split(dashCase(name), "-")
	var b strings.Builder
	for i, word := range words {
		if word == "" {
			continue
		}
		if i == 0 {
			b.WriteString(word)
			continue
		}
		b.WriteString(xstrings.FirstRuneToUpper(word))
	}
	return b.String()
}

// PascalName returns the PascalCase form of a name ("blogPosts" -> "BlogPosts").
func PascalName(name string) string {
	return xstrings.FirstRuneToUpper(ModuleName(name))
}

func dashCase(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words := make([]string, 0, len(fields))
	for _, field := range fields {
		words = append(words, xstrings.ToKebabCase(field))
	}
	return strings.Join(words, "-")
}

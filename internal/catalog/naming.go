package catalog

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

// NamingExamples maps each naming convention to the "Hello World" sample
// file stem it produces.
var NamingExamples = map[interfaces.NamingConvention]string{
	interfaces.NamingCamel:      "helloWorld",
	interfaces.NamingHyphen:     "hello-world",
	interfaces.NamingLower:      "helloworld",
	interfaces.NamingPascal:     "HelloWorld",
	interfaces.NamingUnderscore: "hello_world",
}

// displayOverrides maps archive slugs whose display name cannot be derived
// by word capitalization (symbols, acronyms).
var displayOverrides = map[string]string{
	"c":                  "C",
	"c-sharp":            "C#",
	"c-plus-plus":        "C++",
	"f-sharp":            "F#",
	"q-sharp":            "Q#",
	"objective-c":        "Objective-C",
	"php":                "PHP",
	"cobol":              "COBOL",
	"sql":                "SQL",
	"plsql":              "PL/SQL",
	"abap":               "ABAP",
	"applescript":        "AppleScript",
	"javascript":         "JavaScript",
	"typescript":         "TypeScript",
	"coffeescript":       "CoffeeScript",
	"visual-basic":       "Visual Basic",
	"google-apps-script": "Google Apps Script",
}

// DisplayName derives the human readable language name from an archive slug.
func DisplayName(archiveSlug string) string {
	normalized := strings.ToLower(strings.TrimSpace(archiveSlug))
	if name, ok := displayOverrides[normalized]; ok {
		return name
	}
	words := strings.Split(normalized, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Slugify normalizes a display name into the archive/URL slug, mapping
// language symbols the way the corpus does ("C#" becomes "c-sharp").
func Slugify(name string) (string, error) {
	replacer := strings.NewReplacer(
		"++", " plus plus",
		"#", " sharp",
		"*", " star",
	)
	return slug.Normalize(replacer.Replace(strings.TrimSpace(name)))
}

// NormalizeStem reduces a sample program file stem to the project slug it
// implements. camelCase, PascalCase, hyphen, underscore, and lower stems of
// the same project all reduce to an identical slug.
func NormalizeStem(stem string) string {
	var sb strings.Builder
	runes := []rune(stem)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			sb.WriteRune('-')
		case unicode.IsUpper(r):
			if i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '-' && runes[i-1] != '_' {
				sb.WriteRune('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	normalized, err := slug.Normalize(sb.String())
	if err != nil || normalized == "" {
		return strings.ToLower(stem)
	}
	return normalized
}

package catalog

import (
	"testing"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

func TestDisplayName(t *testing.T) {
	cases := []struct {
		slug string
		want string
	}{
		{"go", "Go"},
		{"hello-world", "Hello World"},
		{"c-sharp", "C#"},
		{"c-plus-plus", "C++"},
		{"php", "PHP"},
		{"objective-c", "Objective-C"},
		{"google-apps-script", "Google Apps Script"},
		{" Python ", "Python"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.slug); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.slug, got, tc.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Hello World", "hello-world"},
		{"C#", "c-sharp"},
		{"C++", "c-plus-plus"},
		{"F#", "f-sharp"},
		{"Go", "go"},
	}
	for _, tc := range cases {
		got, err := Slugify(tc.name)
		if err != nil {
			t.Fatalf("Slugify(%q) returned error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeStem(t *testing.T) {
	cases := []struct {
		stem string
		want string
	}{
		{"helloWorld", "hello-world"},
		{"HelloWorld", "hello-world"},
		{"hello_world", "hello-world"},
		{"hello-world", "hello-world"},
		{"helloworld", "helloworld"},
		{"ROT13", "rot13"},
	}
	for _, tc := range cases {
		if got := NormalizeStem(tc.stem); got != tc.want {
			t.Fatalf("NormalizeStem(%q) = %q, want %q", tc.stem, got, tc.want)
		}
	}
}

func TestNamingExamplesCoverEveryConvention(t *testing.T) {
	conventions := []interfaces.NamingConvention{
		interfaces.NamingCamel,
		interfaces.NamingHyphen,
		interfaces.NamingLower,
		interfaces.NamingPascal,
		interfaces.NamingUnderscore,
	}
	for _, convention := range conventions {
		if _, ok := NamingExamples[convention]; !ok {
			t.Fatalf("missing naming example for %q", convention)
		}
	}
}

package catalog

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

// TestInfoFileName is the per-language testing manifest.
const TestInfoFileName = "testinfo.yml"

// UntestableFileName declares a language cannot be tested and why.
const UntestableFileName = "untestable.yml"

// ParseTestInfo decodes and validates a testinfo.yml document.
func ParseTestInfo(data []byte) (*interfaces.TestInfo, error) {
	var info interfaces.TestInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("catalog: decode testinfo: %w", err)
	}
	if err := validateTestInfo(&info); err != nil {
		return nil, fmt.Errorf("catalog: validate testinfo: %w", err)
	}
	return &info, nil
}

func validateTestInfo(info *interfaces.TestInfo) error {
	return validation.Errors{
		"folder.extension": validation.Validate(info.Folder.Extension,
			validation.Required,
			validation.By(requireLeadingDot),
		),
		"folder.naming": validation.Validate(string(info.Folder.Naming),
			validation.Required,
			validation.In(
				string(interfaces.NamingCamel),
				string(interfaces.NamingHyphen),
				string(interfaces.NamingLower),
				string(interfaces.NamingPascal),
				string(interfaces.NamingUnderscore),
			),
		),
		"container.image": validation.Validate(info.Container.Image, validation.Required),
		"container.tag":   validation.Validate(info.Container.Tag, validation.Required),
	}.Filter()
}

func requireLeadingDot(value any) error {
	str, _ := value.(string)
	if !strings.HasPrefix(str, ".") {
		return validation.NewError("readmegen.catalog.extension_dot", "extension must start with a dot")
	}
	return nil
}

// ParseUntestable decodes an untestable.yml document. Entries without a
// reason are rejected.
func ParseUntestable(data []byte) ([]interfaces.UntestableInfo, error) {
	var entries []interfaces.UntestableInfo
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog: decode untestable: %w", err)
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry.Reason) == "" {
			return nil, fmt.Errorf("catalog: untestable entry %d is missing a reason", i)
		}
	}
	return entries, nil
}

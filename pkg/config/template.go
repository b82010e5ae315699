package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full also writes out every setting with its current value and lists the
	// given component types.
	Full bool

	// Components documents the registered component types in a full template.
	Components []ComponentConfig
}

const minimalTemplate = `# srcedit configuration

# Write <file>.srcedit.bak before replacing a file.
# backups:
#   enabled: false
#   mode: sidecar

# Refuse files that do not look like Java source.
# require_java: true

# Refuse files that do not parse cleanly.
# refuse_syntax_errors: false

# Skip a clean file whose edited text would no longer parse.
# reparse: false

# Number of files processed in parallel (0 = auto).
# jobs: 0

# Output format: text, json, or diff.
# format: text

# Extra component types for add and set operations.
# components:
#   - name: checkbox
#     class: com.vaadin.flow.component.checkbox.Checkbox
#     property: setLabel
`

// GenerateTemplate creates the contents of a .srcedit.yml file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if !opts.Full {
		return []byte(minimalTemplate), nil
	}

	cfg := NewConfig()
	body, err := cfg.ToYAML()
	if err != nil {
		return nil, fmt.Errorf("generate template: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# srcedit configuration (all settings)\n\n")
	buf.Write(body)

	if len(opts.Components) > 0 {
		buf.WriteString("\n# Registered component types:\n")
		for _, c := range opts.Components {
			fmt.Fprintf(&buf, "#   %-10s %s", c.Name, c.Class)
			if c.Property != "" {
				fmt.Fprintf(&buf, " (%s)", c.Property)
			}
			buf.WriteByte('\n')
		}
	}

	return buf.Bytes(), nil
}

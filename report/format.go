package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatText produces a human-readable console layout.
	FormatText Format = "text"

	// FormatJSON produces indented JSON.
	FormatJSON Format = "json"

	// FormatYAML produces YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
}

// Render serializes a result in the given format.
func Render(r Result, format Format) (string, error) {
	switch format {
	case FormatText:
		return renderText(r), nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// renderText writes the console layout.
func renderText(r Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Ontology: %s\n", r.Source)
	fmt.Fprintf(&sb, "Triples: %d | Classes: %d | Instances: %d | Object props: %d | Data props: %d\n",
		r.Summary.Triples, r.Summary.Classes, r.Summary.Instances,
		r.Summary.ObjectProperties, r.Summary.DataProperties)

	sb.WriteString("\n--- Schema Metrics ---\n")
	fmt.Fprintf(&sb, "Relationship Richness (RR): %.3f\n", r.Schema.RelationshipRichness)
	fmt.Fprintf(&sb, "Inheritance Richness (IR): %.3f\n", r.Schema.InheritanceRichness)
	fmt.Fprintf(&sb, "Attribute Richness (AR): %.3f\n", r.Schema.AttributeRichness)

	sb.WriteString("\n--- Knowledgebase Metrics ---\n")
	fmt.Fprintf(&sb, "Class Richness (CR): %.3f\n", r.ClassRichness)
	fmt.Fprintf(&sb, "Cohesion (components): %d\n", r.Cohesion)

	if len(r.TopConnectivity) > 0 {
		sb.WriteString("\nMost connected classes:\n")
		for _, c := range r.TopConnectivity {
			fmt.Fprintf(&sb, "  %s: %.0f\n", c.Class, c.Score)
		}
	}
	if len(r.TopImportance) > 0 {
		sb.WriteString("\nMost important classes:\n")
		for _, c := range r.TopImportance {
			fmt.Fprintf(&sb, "  %s: %.3f\n", c.Class, c.Score)
		}
	}
	return sb.String()
}

package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const envPrefix = "env."

// expandEnv substitutes ${env.KEY} inside scalar values of a parsed document.
// Mapping keys are never rewritten. Each reference to an unset variable is
// returned as an issue instead of being replaced with an empty string.
func expandEnv(node *yaml.Node) []error {
	var issues []error
	var visit func(n *yaml.Node)
	visit = func(n *yaml.Node) {
		switch n.Kind {
		case yaml.DocumentNode, yaml.SequenceNode:
			for _, child := range n.Content {
				visit(child)
			}
		case yaml.MappingNode:
			for i := 1; i < len(n.Content); i += 2 {
				visit(n.Content[i])
			}
		case yaml.ScalarNode:
			if !strings.Contains(n.Value, "${"+envPrefix) {
				return
			}
			n.Value = os.Expand(n.Value, func(key string) string {
				name, ok := strings.CutPrefix(key, envPrefix)
				if !ok {
					return "${" + key + "}"
				}
				value, ok := os.LookupEnv(name)
				if !ok {
					issues = append(issues, fmt.Errorf("line %d: environment variable %v is not set", n.Line, name))
				}
				return value
			})
			// plain scalars are re-resolved so ${env.N} can feed an int field
			if n.Style == 0 {
				n.Tag = ""
			}
		}
	}
	visit(node)
	return issues
}

package help

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColdstartYAML_IsValid(t *testing.T) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &doc); err != nil {
		t.Fatalf("ColdstartYAML is not valid YAML: %v", err)
	}

	for _, key := range []string{"input", "label_modes", "commands", "key_files", "matching_rules"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("ColdstartYAML missing %q section", key)
		}
	}
}

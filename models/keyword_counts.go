package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// KeywordCounts maps keywords to hit counts and remembers the order in which
// each keyword was first added. Marshalled output follows that order.
type KeywordCounts struct {
	keys   []string
	counts map[string]int
}

// NewKeywordCounts returns an empty count map.
func NewKeywordCounts() *KeywordCounts {
	return &KeywordCounts{counts: make(map[string]int)}
}

// Add increments keyword by n, registering it on first sight.
func (kc *KeywordCounts) Add(keyword string, n int) {
	if kc.counts == nil {
		kc.counts = make(map[string]int)
	}
	if _, ok := kc.counts[keyword]; !ok {
		kc.keys = append(kc.keys, keyword)
	}
	kc.counts[keyword] += n
}

// Get returns the count for keyword, zero when absent.
func (kc *KeywordCounts) Get(keyword string) int {
	if kc == nil {
		return 0
	}
	return kc.counts[keyword]
}

// Keys returns keywords in first-appearance order.
func (kc *KeywordCounts) Keys() []string {
	if kc == nil {
		return nil
	}
	return append([]string(nil), kc.keys...)
}

// Len returns the number of distinct keywords.
func (kc *KeywordCounts) Len() int {
	if kc == nil {
		return 0
	}
	return len(kc.keys)
}

// Map returns a plain copy of the counts.
func (kc *KeywordCounts) Map() map[string]int {
	out := make(map[string]int, kc.Len())
	if kc == nil {
		return out
	}
	for k, v := range kc.counts {
		out[k] = v
	}
	return out
}

// MarshalJSON writes an object whose keys keep first-appearance order.
func (kc *KeywordCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range kc.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(kc.counts[k]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object produced by MarshalJSON, keeping key order.
func (kc *KeywordCounts) UnmarshalJSON(data []byte) error {
	kc.keys = nil
	kc.counts = make(map[string]int)
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("keyword counts: expected JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("keyword counts: expected string key, got %v", tok)
		}
		var n int
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("keyword counts: value for %q: %w", key, err)
		}
		kc.Add(key, n)
	}
	_, err = dec.Token()
	return err
}

// MarshalYAML emits a mapping node so YAML output keeps key order too.
func (kc *KeywordCounts) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range kc.Keys() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(kc.counts[k])},
		)
	}
	return node, nil
}

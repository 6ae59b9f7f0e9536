package variation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseDocument builds the node tree for data. Valid JSON is read with the
// JSON decoder so escapes such as surrogate pairs and repeated keys behave as
// in JSON; everything else is parsed as YAML. Object key order is preserved
// and a repeated key keeps its last value.
func parseDocument(data []byte) (*yaml.Node, error) {
	if !json.Valid(data) {
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, err
		}
		return &root, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	value, err := jsonNode(dec)
	if err != nil {
		return nil, err
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{value}}, nil
}

func jsonNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				item, err := jsonNode(dec)
				if err != nil {
					return nil, err
				}
				seq.Content = append(seq.Content, item)
			}
			_, err := dec.Token()
			return seq, err
		}
		return jsonMapping(dec)
	case string:
		return scalar("!!str", t), nil
	case json.Number:
		return numberNode(t), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(t)), nil
	case nil:
		return scalar("!!null", "null"), nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

func jsonMapping(dec *json.Decoder) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		value, err := jsonNode(dec)
		if err != nil {
			return nil, err
		}
		if at, seen := index[key]; seen {
			mapping.Content[at+1] = value
			continue
		}
		index[key] = len(mapping.Content)
		mapping.Content = append(mapping.Content, scalar("!!str", key), value)
	}
	_, err := dec.Token()
	return mapping, err
}

func numberNode(n json.Number) *yaml.Node {
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		if _, err := strconv.ParseInt(text, 10, 64); err == nil {
			return scalar("!!int", text)
		}
	}
	return scalar("!!float", text)
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

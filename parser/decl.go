/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"vartab/fs"
	"vartab/token"
)

// DeclParser parses YAML or JSON(-with-comments) token declaration files.
//
// Declarations nest in groups; a token is any mapping with a $value key.
// Group names join with "-" to form the token name, and a group's $type
// is inherited by tokens below it. Since YAML/JSON mappings carry no
// author order, batches from this parser are dependency-sorted before
// table construction.
type DeclParser struct{}

// NewDeclParser creates a new declaration file parser.
func NewDeclParser() *DeclParser {
	return &DeclParser{}
}

// Ordered reports that declaration file output has no author order.
func (p *DeclParser) Ordered() bool { return false }

// Parse parses YAML or JSON declaration data and returns tokens.
func (p *DeclParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	var raw map[string]any

	if isLikelyJSON(data) {
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		var yamlRaw any
		if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		normalized := normalizeMap(yamlRaw)
		var ok bool
		raw, ok = normalized.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("declaration file root must be a mapping")
		}
	}

	result := []*token.Token{}
	p.extractTokens(raw, "", "", opts, &result)
	return result, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to map[string]any.
// YAML with numeric keys creates map[interface{}]interface{}, which must be
// normalized for string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// extractTokens recursively extracts tokens from a parsed group mapping.
// inheritedType is passed down from parent groups for $type inheritance.
func (p *DeclParser) extractTokens(data map[string]any, path, inheritedType string, opts Options, result *[]*token.Token) {
	currentType := inheritedType
	if groupType, ok := data["$type"].(string); ok {
		currentType = groupType
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}

	if !opts.SkipSort {
		sort.Strings(keys)
	}

	for _, key := range keys {
		valueMap, ok := data[key].(map[string]any)
		if !ok {
			continue
		}

		name := key
		if path != "" {
			name = path + "-" + key
		}

		if dollarValue, hasValue := valueMap["$value"]; hasValue {
			*result = append(*result, p.createToken(name, valueMap, dollarValue, currentType, opts))
			continue
		}

		p.extractTokens(valueMap, name, currentType, opts, result)
	}
}

// createToken creates a Token from a $value mapping.
func (p *DeclParser) createToken(name string, valueMap map[string]any, dollarValue any, inheritedType string, opts Options) *token.Token {
	value := ""
	switch v := dollarValue.(type) {
	case string:
		value = v
	default:
		value = fmt.Sprintf("%v", v)
	}

	t := &token.Token{
		Name:   name,
		Value:  value,
		Prefix: opts.Prefix,
	}

	// Token's own $type takes precedence over inherited.
	if typeStr, ok := valueMap["$type"].(string); ok {
		t.Type = typeStr
	} else if inheritedType != "" {
		t.Type = inheritedType
	} else {
		t.Type = InferType(value)
	}
	if descStr, ok := valueMap["$description"].(string); ok {
		t.Description = descStr
	}

	return t
}

// ParseFile parses a declaration file and returns tokens.
func (p *DeclParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	for _, t := range tokens {
		t.FilePath = path
	}

	return tokens, nil
}

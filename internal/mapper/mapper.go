package mapper

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultMapping maps the standard hotels table columns to hotel fields
//
//go:embed mapping.json
var DefaultMapping []byte

var (
	templateVar    = regexp.MustCompile(`\{\{([^}]+)\}\}`)
	repeatedCommas = regexp.MustCompile(`\s*,\s*,\s*`)
	edgeCommas     = regexp.MustCompile(`^,\s*|,\s*$`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// MappingEngine turns tabular records into normalized hotel JSON based on
// a mapping configuration
type MappingEngine struct {
	config MappingConfig
}

// MappingConfig represents the structure of mapping.json
type MappingConfig map[string]interface{}

// FieldMapping represents a leaf of the mapping: where a value comes from
// and what to do with it
type FieldMapping struct {
	Columns  []string // header aliases, first present non-empty wins
	Template string   // "{{City}}, {{Country}}" style template, used when no column matched
	Actions  []string // actions to apply, in order
}

// Record is a single table row encoded as a JSON object keyed by header
type Record = json.RawMessage

// NewMappingEngine creates a new mapping engine
func NewMappingEngine(mappingJSON []byte) (*MappingEngine, error) {
	if !gjson.ValidBytes(mappingJSON) {
		return nil, fmt.Errorf("failed to parse mapping config: invalid json")
	}

	var config MappingConfig
	if err := json.Unmarshal(mappingJSON, &config); err != nil {
		return nil, fmt.Errorf("failed to parse mapping config: %w", err)
	}

	return &MappingEngine{config: config}, nil
}

// Transform applies the mapping to every record and returns a JSON array with
// one object per record, in record order
func (m *MappingEngine) Transform(records []Record) (json.RawMessage, error) {
	results := make([]map[string]interface{}, 0, len(records))
	for i, record := range records {
		result := make(map[string]interface{})
		if err := m.processMapping("", m.config, record, result); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		results = append(results, result)
	}

	output, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results: %w", err)
	}

	return json.RawMessage(output), nil
}

// processMapping recursively processes the mapping configuration
func (m *MappingEngine) processMapping(currentPath string, config interface{}, record Record, result map[string]interface{}) error {
	switch v := config.(type) {
	case map[string]interface{}:
		if m.isLeafMapping(v) {
			value, err := m.processLeafMapping(v, record)
			if err != nil {
				return fmt.Errorf("field %s: %w", currentPath, err)
			}
			m.setNestedValue(result, currentPath, value)
			return nil
		}

		// sorted so the first failing field is the same on every run
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			newPath := key
			if currentPath != "" {
				newPath = currentPath + "." + key
			}
			if err := m.processMapping(newPath, v[key], record, result); err != nil {
				return err
			}
		}
	case MappingConfig: // unfortunately golang doesn't support type aliasing in type switches
		return m.processMapping(currentPath, map[string]interface{}(v), record, result)
	}
	return nil
}

// isLeafMapping checks if a mapping object describes a value source
func (*MappingEngine) isLeafMapping(mapping map[string]interface{}) bool {
	_, hasColumns := mapping["columns"]
	_, hasTemplate := mapping["template"]
	return hasColumns || hasTemplate
}

// processLeafMapping resolves a leaf mapping against one record
func (m *MappingEngine) processLeafMapping(mapping map[string]interface{}, record Record) (interface{}, error) {
	fieldMapping := m.parseFieldMapping(mapping)

	value := m.extractValue(record, fieldMapping)
	if value == nil {
		return nil, nil
	}

	return m.applyActions(value, fieldMapping.Actions)
}

// parseFieldMapping converts raw mapping to FieldMapping struct
func (*MappingEngine) parseFieldMapping(mapping map[string]interface{}) FieldMapping {
	var fieldMapping FieldMapping

	for key, value := range mapping {
		switch key {
		case "columns":
			fieldMapping.Columns = stringList(value)
		case "actions":
			fieldMapping.Actions = stringList(value)
		case "template":
			if str, ok := value.(string); ok {
				fieldMapping.Template = str
			}
		}
	}

	return fieldMapping
}

func stringList(value interface{}) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []interface{}:
		var out []string
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// extractValue returns the first non-empty aliased column, falling back to
// the template. nil means no source had a value.
func (m *MappingEngine) extractValue(record Record, fieldMapping FieldMapping) interface{} {
	for _, column := range fieldMapping.Columns {
		result := gjson.GetBytes(record, escapePath(column))
		if !result.Exists() {
			continue
		}
		if str := result.String(); strings.TrimSpace(str) != "" {
			return str
		}
	}

	if m.isTemplate(fieldMapping.Template) {
		if str := m.processTemplate(record, fieldMapping.Template); str != "" {
			return str
		}
	}

	return nil
}

// escapePath makes a header name safe to use as a gjson path
func escapePath(column string) string {
	var b strings.Builder
	for _, r := range column {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', '"', ',', ':', '[', ']', '{', '}', '(', ')':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isTemplate checks if a string is a template (contains {{...}})
func (*MappingEngine) isTemplate(str string) bool {
	return strings.Contains(str, "{{") && strings.Contains(str, "}}")
}

// processTemplate processes template strings like "{{City}}, {{Country}}"
func (*MappingEngine) processTemplate(record Record, template string) string {
	result := template
	for _, match := range templateVar.FindAllStringSubmatch(template, -1) {
		placeholder, column := match[0], strings.TrimSpace(match[1])

		value := gjson.GetBytes(record, escapePath(column))
		if value.Exists() {
			result = strings.ReplaceAll(result, placeholder, strings.TrimSpace(value.String()))
		} else {
			result = strings.ReplaceAll(result, placeholder, "")
		}
	}

	// clean up extra commas and spaces left by missing columns
	result = strings.TrimSpace(result)
	result = repeatedCommas.ReplaceAllString(result, ", ")
	result = edgeCommas.ReplaceAllString(result, "")

	return strings.TrimSpace(result)
}

// applyActions applies processing actions to a value
func (m *MappingEngine) applyActions(value interface{}, actions []string) (interface{}, error) {
	result := value

	for _, action := range actions {
		action = strings.TrimSpace(action)
		switch action {
		case "trim":
			result = m.mapString(result, strings.TrimSpace)
		case "to_lowercase":
			result = m.mapString(result, strings.ToLower)
		case "collapse_spaces":
			result = m.mapString(result, collapseSpaces)
		case "normalize_url":
			result = m.mapString(result, normalizeURL)
		case "parse_float":
			f, err := m.parseFloat(result)
			if err != nil {
				return nil, err
			}
			result = f
		default:
			return nil, fmt.Errorf("unknown action %q", action)
		}
	}

	return result, nil
}

func (*MappingEngine) mapString(value interface{}, fn func(string) string) interface{} {
	if str, ok := value.(string); ok {
		return fn(str)
	}
	return value
}

func collapseSpaces(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// normalizeURL adds a scheme to bare host names so the link is absolute
func normalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	return "https://" + strings.TrimPrefix(s, "//")
}

// parseFloat accepts both "." and "," as the decimal separator
func (*MappingEngine) parseFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		if s == "" {
			return 0, fmt.Errorf("parse_float: empty value")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse_float: %w", err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("parse_float: unsupported value %v", value)
}

// setNestedValue sets a value at a nested path in the result map
func (*MappingEngine) setNestedValue(result map[string]interface{}, path string, value interface{}) {
	if value == nil || path == "" {
		return
	}

	parts := strings.Split(path, ".")
	current := result

	// navigate to the parent of the target
	for _, part := range parts[:len(parts)-1] {
		if _, exists := current[part]; !exists {
			current[part] = make(map[string]interface{})
		}
		next, ok := current[part].(map[string]interface{})
		if !ok {
			// path conflict, can't proceed
			return
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

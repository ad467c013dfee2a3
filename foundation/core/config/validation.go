// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks configuration values against declared rules: required
//              keys, value types and numeric or length bounds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-17 v0.2.0: Read-only validation, structured error result

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	mdwerror "github.com/msto63/tantalum/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool   // Whether the key must be present
	Type     string // "string", "int", "bool", "duration" or "[]string"
	Min      *int64 // Minimum value (int) or length (string, []string)
	Max      *int64 // Maximum value (int) or length (string, []string)
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, else a CONFIG_ERROR listing every violation
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Validate").
		WithDetail("violations", len(r.Errors))
}

// Bound is a helper for ValidationRule.Min and ValidationRule.Max
func Bound(v int64) *int64 {
	return &v
}

// Validate validates the configuration against the provided rules. Keys are
// checked in sorted order so the error list is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "":
		return nil
	case "string":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
		return checkBounds(key, "length", int64(len(s)), rule)
	case "int":
		n, ok := toInt64(value)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
		return checkBounds(key, "value", n, rule)
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "duration":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' must be a duration string, got %T", key, value)
		}
		if _, err := time.ParseDuration(s); err != nil {
			return fmt.Errorf("field '%s' must be a valid duration string, got '%s'", key, s)
		}
	case "[]string":
		n, ok := sliceLen(value)
		if !ok {
			return fmt.Errorf("field '%s' must be a list, got %T", key, value)
		}
		return checkBounds(key, "length", int64(n), rule)
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}
	return nil
}

func checkBounds(key, what string, n int64, rule ValidationRule) error {
	if rule.Min != nil && n < *rule.Min {
		return fmt.Errorf("field '%s' %s %d is less than minimum %d", key, what, n, *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Errorf("field '%s' %s %d is greater than maximum %d", key, what, n, *rule.Max)
	}
	return nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

func sliceLen(v interface{}) (int, bool) {
	switch s := v.(type) {
	case []interface{}:
		return len(s), true
	case []string:
		return len(s), true
	}
	return 0, false
}

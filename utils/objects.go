package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
)

// ParseObject parses a struct of any type from an input object that can be a
// map, a json []byte/string, an already parsed struct of the desired type or
// a pointer to it.
func ParseObject[K any](inputObject any, result *K) error {
	if result == nil {
		return fmt.Errorf("result variable must be an empty struct of desired type, got nil")
	}
	switch cfg := inputObject.(type) {
	case *K:
		*result = *cfg
	case K:
		*result = cfg
	case map[string]any:
		if err := mapstructure.Decode(cfg, result); err != nil {
			return fmt.Errorf("failed to parse map as %T : %v", result, err)
		}
	case []byte:
		if len(cfg) == 0 {
			return fmt.Errorf("failed to parse: input data is empty")
		}
		if err := jsoniter.Unmarshal(cfg, result); err != nil {
			return fmt.Errorf("failed to parse json as %T : %v", result, err)
		}
	case string:
		if len(cfg) == 0 {
			return fmt.Errorf("failed to parse: input string is empty")
		}
		if err := jsoniter.Unmarshal([]byte(cfg), result); err != nil {
			return fmt.Errorf("failed to parse json as %T : %v", result, err)
		}
	default:
		return fmt.Errorf("can't parse object from type: %T", cfg)
	}
	return nil
}

// Nvl returns the first non-zero value from varargs
func Nvl[T comparable](args ...T) T {
	var empty T
	for _, str := range args {
		if str != empty {
			return str
		}
	}
	return empty
}

// Ternary returns a if condition is true, otherwise b
func Ternary[T any](condition bool, a T, b T) T {
	if condition {
		return a
	}
	return b
}

// MapValue extracts a nested value from a map by path, e.g.
// MapValue(rec, "accountInfo", "type")
func MapValue(object map[string]any, path ...string) any {
	var current any = object
	for _, key := range path {
		mp, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = mp[key]
	}
	return current
}

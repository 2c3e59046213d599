package datastructures

import (
	"fmt"
	"reflect"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// MergeMethod selects how DictMerge resolves keys present in both maps.
type MergeMethod string

const (
	// TakeLeftShallow keeps the left value for conflicting keys
	TakeLeftShallow MergeMethod = "take_left_shallow"

	// TakeLeftDeep keeps the left value, recursing into nested maps
	TakeLeftDeep MergeMethod = "take_left_deep"

	// TakeRightShallow keeps the right value for conflicting keys
	TakeRightShallow MergeMethod = "take_right_shallow"

	// TakeRightDeep keeps the right value, recursing into nested maps
	TakeRightDeep MergeMethod = "take_right_deep"

	// MergeSum adds conflicting values, treating missing keys as zero
	MergeSum MergeMethod = "sum"
)

// DictMerge merges two maps into a new map. Neither input is modified.
//
// For the shallow methods a conflicting key takes the whole value from the
// favored side; the deep methods recurse when both sides hold nested
// map[string]any values. MergeSum adds conflicting leaf values and keeps
// the union of keys otherwise. Summing supports int, float64 and string
// leaves (strings concatenate).
func DictMerge(left, right map[string]any, method MergeMethod) (map[string]any, error) {
	switch method {
	case TakeRightShallow, TakeRightDeep:
		return mergeRight(left, right, method)
	case TakeLeftShallow:
		return mergeRight(right, left, TakeRightShallow)
	case TakeLeftDeep:
		return mergeRight(right, left, TakeRightDeep)
	case MergeSum:
		return mergeSum(left, right)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMergeMethod, method)
	}
}

func mergeRight(left, right map[string]any, method MergeMethod) (map[string]any, error) {
	merged := copyDict(left)
	for key, value := range right {
		existing, present := merged[key]
		if !present {
			merged[key] = deepCopyValue(value)
			continue
		}
		leftMap, leftIsMap := existing.(map[string]any)
		rightMap, rightIsMap := value.(map[string]any)
		if method == TakeRightDeep && leftIsMap && rightIsMap {
			sub, err := mergeRight(leftMap, rightMap, method)
			if err != nil {
				return nil, err
			}
			merged[key] = sub
		} else {
			merged[key] = deepCopyValue(value)
		}
	}
	return merged, nil
}

func mergeSum(left, right map[string]any) (map[string]any, error) {
	merged := copyDict(left)
	for key, value := range right {
		existing, present := merged[key]
		if !present {
			merged[key] = deepCopyValue(value)
			continue
		}
		leftMap, leftIsMap := existing.(map[string]any)
		rightMap, rightIsMap := value.(map[string]any)
		if leftIsMap && rightIsMap {
			sub, err := mergeSum(leftMap, rightMap)
			if err != nil {
				return nil, err
			}
			merged[key] = sub
			continue
		}
		summed, err := sumValues(existing, value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		merged[key] = summed
	}
	return merged, nil
}

func sumValues(a, b any) (any, error) {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av + bv, nil
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av + bv, nil
		}
	case string:
		if bv, ok := b.(string); ok {
			return av + bv, nil
		}
	}
	return nil, fmt.Errorf("cannot sum values of types %T and %T", a, b)
}

// MergeJSON merges two JSON documents according to RFC 7386 (JSON Merge
// Patch): members of patch overwrite members of doc, and null members in
// patch delete them. It is the serialized-form sibling of DictMerge with
// TakeRightDeep.
func MergeJSON(doc, patch []byte) ([]byte, error) {
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("json merge patch failed: %w", err)
	}
	return merged, nil
}

// SetNestedValue sets a value in a nested map by following a path of keys,
// creating intermediate maps as needed. The map is modified in place. It
// fails if keys is empty or an intermediate key holds a non-map value.
func SetNestedValue(dict map[string]any, keys []string, value any) error {
	if len(keys) == 0 {
		return ErrEmptyKeychain
	}
	current := dict
	for _, key := range keys[:len(keys)-1] {
		next, present := current[key]
		if !present {
			created := map[string]any{}
			current[key] = created
			current = created
			continue
		}
		nested, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q holds %T, not a nested map", key, next)
		}
		current = nested
	}
	current[keys[len(keys)-1]] = value
	return nil
}

// HasKeychain reports whether the full path of keys exists in the nested
// map. An empty path trivially exists.
func HasKeychain(dict map[string]any, keys []string) bool {
	current := dict
	for i, key := range keys {
		value, present := current[key]
		if !present {
			return false
		}
		if i == len(keys)-1 {
			return true
		}
		nested, ok := value.(map[string]any)
		if !ok {
			return false
		}
		current = nested
	}
	return true
}

// Flatten recursively flattens nested slices and arrays into one flat
// slice. Strings are kept atomic unless flattenStrings is set, in which
// case each string element expands into its one-rune strings.
//
//	Flatten([]any{1, []any{2, []any{3}}}, false) // [1 2 3]
//	Flatten([]any{"ab", []any{"c"}}, true)       // ["a" "b" "c"]
func Flatten(nested []any, flattenStrings bool) []any {
	flat := make([]any, 0, len(nested))
	for _, item := range nested {
		value := reflect.ValueOf(item)
		switch {
		case item == nil:
			flat = append(flat, item)
		case value.Kind() == reflect.String && flattenStrings:
			for _, r := range value.String() {
				flat = append(flat, string(r))
			}
		case value.Kind() == reflect.Slice || value.Kind() == reflect.Array:
			inner := make([]any, value.Len())
			for i := range inner {
				inner[i] = value.Index(i).Interface()
			}
			flat = append(flat, Flatten(inner, flattenStrings)...)
		default:
			flat = append(flat, item)
		}
	}
	return flat
}

func copyDict(dict map[string]any) map[string]any {
	copied := make(map[string]any, len(dict))
	for key, value := range dict {
		copied[key] = deepCopyValue(value)
	}
	return copied
}

func deepCopyValue(value any) any {
	if nested, ok := value.(map[string]any); ok {
		return copyDict(nested)
	}
	if list, ok := value.([]any); ok {
		copied := make([]any, len(list))
		for i, item := range list {
			copied[i] = deepCopyValue(item)
		}
		return copied
	}
	return value
}

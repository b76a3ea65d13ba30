// Package dfs provides small helpers shared by the traversal engine and
// the cycle error: key validation, path lookup and trace rendering.
package dfs

import (
	"fmt"
	"reflect"
	"strings"
)

// isNilKey reports whether k is a nil interface or a nil value of a
// nilable kind (pointer, map, slice, channel, function, interface).
// Zero values of other kinds, such as 0 or "", are valid keys.
// Time Complexity: O(1).
func isNilKey[K any](k K) bool {
	v := reflect.ValueOf(any(k))
	if !v.IsValid() {
		return true // nil interface
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// identity is the default key selector: a node is its own key.
func identity[T any](n T) T { return n }

// indexOfKey returns the first index i with same(keys[i], k), or -1.
// Time Complexity: O(n) where n = len(keys).
func indexOfKey[K any](keys []K, k K, same func(a, b K) bool) int {
	for i := range keys {
		if same(keys[i], k) {
			return i
		}
	}

	return -1
}

// JoinPath renders nodes with fmt.Sprint and joins them with " -> ".
// Time Complexity: O(n + total rendered length).
func JoinPath[T any](nodes []T) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprint(n)
	}

	return strings.Join(parts, " -> ")
}

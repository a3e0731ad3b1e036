// Package entities holds the closed enumerations describing the fixed game
// world: kongs, levels, items, shop locations, maps, logic regions, events
// and vendors.
package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// parseName resolves s against all by exact name first, then case-insensitively,
// then as an ordinal index.
func parseName[T ~string](all []T, s string) (T, bool) {
	for _, v := range all {
		if string(v) == s {
			return v, true
		}
	}
	for _, v := range all {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	if i, err := strconv.Atoi(s); err == nil {
		return fromIndex(all, i)
	}
	var zero T
	return zero, false
}

func fromIndex[T ~string](all []T, i int) (T, bool) {
	if i < 0 || i >= len(all) {
		var zero T
		return zero, false
	}
	return all[i], true
}

func indexOf[T ~string](all []T, v T) int {
	for i, candidate := range all {
		if candidate == v {
			return i
		}
	}
	return -1
}

// parseJSON accepts either a JSON string (name) or a JSON number (ordinal).
func parseJSON[T ~string](all []T, data []byte) (T, bool) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return parseName(all, name)
	}
	var ordinal int
	if err := json.Unmarshal(data, &ordinal); err == nil {
		return fromIndex(all, ordinal)
	}
	var zero T
	return zero, false
}

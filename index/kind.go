package index

import (
	"fmt"
	"strings"
)

// Kind selects an Index implementation.
type Kind string

const (
	KindAuto    Kind = "auto"
	KindBrute   Kind = "brute"
	KindBitmask Kind = "bitmask"
)

// autoBitmaskMinPairs is the combination x subset product from which the
// bitmask index is preferred when Kind is auto.
const autoBitmaskMinPairs = 4096

// ParseKind parses a kind name; aliases follow the CLI flag values.
func ParseKind(v string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return KindAuto, nil
	case "brute", "bruteforce":
		return KindBrute, nil
	case "bitmask", "bitset", "popcount":
		return KindBitmask, nil
	}
	return "", fmt.Errorf("index: unknown kind %q", v)
}

// Resolve turns KindAuto into a concrete kind for the given pair count.
func Resolve(kind Kind, pairs uint64) Kind {
	switch kind {
	case KindBrute, KindBitmask:
		return kind
	}
	if pairs >= autoBitmaskMinPairs {
		return KindBitmask
	}
	return KindBrute
}

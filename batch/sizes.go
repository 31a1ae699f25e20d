package batch

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"strconv"
	"strings"
)

// ParseSizes parses a comma-separated list of byte sizes such as "1GiB,5GiB,500MB".
func ParseSizes(s string) ([]uint64, error) {
	var sizes []uint64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := humanize.ParseBytes(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// ParseCounts parses a comma-separated list of file counts.
func ParseCounts(s string) ([]int, error) {
	var counts []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		count, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid file count %q: %w", field, err)
		}
		counts = append(counts, count)
	}
	return counts, nil
}

// SizeLabel renders size for use in a key, e.g. "10GiB".
// Sizes that the short form would round are rendered in bytes, e.g. "30000B",
// so distinct sizes never share a label.
func SizeLabel(size uint64) string {
	label := strings.ReplaceAll(humanize.IBytes(size), " ", "")
	if n, err := humanize.ParseBytes(label); err == nil && n == size {
		return label
	}
	return strconv.FormatUint(size, 10) + "B"
}

package candihelper

import (
	"crypto/subtle"
	"fmt"
	"strings"
)

// StringYellow func
func StringYellow(str string) string {
	return fmt.Sprintf("\x1b[33;2m%s\x1b[0m", str)
}

// StringGreen func
func StringGreen(str string) string {
	return fmt.Sprintf("\x1b[32;2m%s\x1b[0m", str)
}

// StringInSlice function for checking whether string in slice
func StringInSlice(str string, list []string) bool {
	for _, v := range list {
		if v == str {
			return true
		}
	}
	return false
}

// ParseCSV split comma separated value, trimming spaces and skipping empty items
func ParseCSV(str string) []string {
	var res []string
	for _, s := range strings.Split(str, ",") {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

// ParseKeyValueCSV parse "k1:v1,k2:v2" into map, items without separator are skipped
func ParseKeyValueCSV(str string) map[string]string {
	res := make(map[string]string)
	for _, item := range ParseCSV(str) {
		k, v, ok := strings.Cut(item, ":")
		if !ok {
			continue
		}
		if k, v = strings.TrimSpace(k), strings.TrimSpace(v); k != "" {
			res[k] = v
		}
	}
	return res
}

// CopyMap shallow copy map, nil map return empty map
func CopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// SecureCompare constant time string comparison, empty expected never match
func SecureCompare(given, expected string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}

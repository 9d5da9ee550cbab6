package stringutil

import "regexp"

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor checks if s is a CSS hex color in #rgb or #rrggbb form.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

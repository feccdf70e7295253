package utils

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Splits a shell line into a lower-cased command name and its arguments.
// Quoting follows POSIX shell rules, so file names with spaces can be quoted.
func SplitStringIntoCommandAndArguments(line string) (string, []string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, err
	}
	if len(words) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}

	return strings.ToLower(words[0]), words[1:], nil
}

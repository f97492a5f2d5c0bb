package workload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParseReferences reads a comma-separated reference string such as "7, 0, 1, 2, 0".
// Tokens that are not integers are skipped with a warning; negative page ids are rejected.
// Blank input yields an empty sequence. Input that has tokens but no valid page id is an error.
func ParseReferences(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return []int{}, nil
	}
	tokens := strings.Split(text, ",")
	refs := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		page, err := strconv.Atoi(tok)
		if err != nil {
			logrus.Warnf("skipping reference %d: %q is not a page number", i, tok)
			continue
		}
		if page < 0 {
			return nil, fmt.Errorf("reference %d: page id must be non-negative, got %d", i, page)
		}
		refs = append(refs, page)
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("no valid page ids in %q", text)
	}
	return refs, nil
}

// FormatReferences renders refs in the comma-separated form ParseReferences accepts.
func FormatReferences(refs []int) string {
	parts := make([]string, len(refs))
	for i, p := range refs {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

package extract

import (
	"os"
	"strings"
)

// formFeed splits a plain-text document into pages, mirroring how the
// PDF path yields one string per page.
const formFeed = "\f"

func extractTextPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.Contains(text, formFeed) {
		return []string{text}, nil
	}
	return strings.Split(text, formFeed), nil
}

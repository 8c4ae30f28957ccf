package generator

import (
	"encoding/json"
	"strings"
)

// richNode is one node of a serialized rich-text document: either a text
// leaf or an element with children.
type richNode struct {
	Text     *string    `json:"text"`
	Children []richNode `json:"children"`
}

// PlainText flattens a serialized rich-text document (a JSON array of
// block nodes) into newline-separated text. Anything else is returned
// unchanged.
func PlainText(content string) string {
	var blocks []richNode
	if err := json.Unmarshal([]byte(content), &blocks); err != nil {
		return content
	}
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, b.text())
	}
	return strings.Join(lines, "\n")
}

func (n richNode) text() string {
	if n.Text != nil {
		return *n.Text
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.text())
	}
	return sb.String()
}

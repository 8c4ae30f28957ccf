package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// extractor pulls a candidate JSON document out of model output.
type extractor func(content string) (string, bool)

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\n(.*?)\\n```")
	fencedAnyPattern  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```|`(.*?)`")
	bareArrayPattern  = regexp.MustCompile(`(?s)\[.*?\]`)
)

func fencedJSON(content string) (string, bool) {
	m := fencedJSONPattern.FindStringSubmatch(content)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

func fencedAny(content string) (string, bool) {
	m := fencedAnyPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	body := m[1]
	if body == "" {
		body = m[2]
	}
	return strings.TrimSpace(body), true
}

func bareArray(content string) (string, bool) {
	m := bareArrayPattern.FindString(content)
	return m, m != ""
}

func wholeBody(content string) (string, bool) {
	return content, true
}

// parseArray tries each extractor in order and returns the first candidate
// that decodes as a JSON array of T.
func parseArray[T any](content string, extractors ...extractor) ([]T, error) {
	var errs []error
	for _, extract := range extractors {
		candidate, ok := extract(content)
		if !ok {
			continue
		}
		var items []T
		if err := json.Unmarshal([]byte(candidate), &items); err != nil {
			errs = append(errs, err)
			continue
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("no JSON array found")
	}
	return nil, errors.Join(errs...)
}

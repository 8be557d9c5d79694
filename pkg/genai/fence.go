/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package genai

import (
	"strings"

	"github.com/tidwall/gjson"

	docerrors "github.com/NVIDIA/docsmith/pkg/errors"
)

// StripFence removes a markdown code fence wrapping, if any, and returns the
// inner content. Behavior is defined for all shapes the model produces:
//
//   - no fence: the input is returned trimmed
//   - one fence (``` or ```json, with optional prose around it): the fenced
//     content is returned
//   - malformed fence (opening line without a closing line): everything
//     after the opening line is returned
func StripFence(s string) string {
	trimmed := strings.TrimSpace(s)

	lines := strings.Split(trimmed, "\n")
	open := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			open = i
			break
		}
	}
	if open == -1 {
		return trimmed
	}

	closing := -1
	for i := open + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "```" {
			closing = i
			break
		}
	}
	if closing == -1 {
		closing = len(lines)
	}

	return strings.TrimSpace(strings.Join(lines[open+1:closing], "\n"))
}

// ExtractPayload returns the JSON object embedded in a model response,
// stripping any markdown fence first. When the unfenced text is not itself
// valid JSON, the outermost brace-delimited span is tried before giving up.
func ExtractPayload(s string) (string, error) {
	candidate := StripFence(s)
	if gjson.Valid(candidate) {
		return candidate, nil
	}

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start >= 0 && end > start {
		span := candidate[start : end+1]
		if gjson.Valid(span) {
			return span, nil
		}
	}

	return "", docerrors.New(docerrors.ErrCodeMalformedJSON,
		"response does not contain a valid JSON object")
}

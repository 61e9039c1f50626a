package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lshigami/Mocktail/internal/model"
)

// The oracle's output is free-form text expected to carry embedded JSON.
// Parsing is a two-phase affair: best-effort extraction of the bracket/brace
// span, then a strict decode with per-field fallbacks. Nothing here panics or
// guesses beyond that.

// stripCodeFences removes markdown ``` markers the model likes to wrap
// JSON payloads in.
func stripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// extractJSONArray returns the span from the first '[' to the last ']'.
func extractJSONArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return raw[start : end+1], nil
}

// extractJSONObject returns the first balanced '{'..'}' span, tracking string
// literals so braces inside feedback text do not end the scan early.
func extractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	if start == -1 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], nil
				}
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON object in response")
}

// parseQuestionSet decodes the generation response into a validated question
// set. Questions missing text or a reference answer are dropped; fewer than
// minCount surviving questions is a setup failure.
func parseQuestionSet(raw string, minCount int) ([]model.Question, error) {
	jsonStr, err := extractJSONArray(stripCodeFences(raw))
	if err != nil {
		return nil, err
	}

	var parsed []model.Question
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("response is not a valid question array: %w", err)
	}

	questions := make([]model.Question, 0, len(parsed))
	for _, q := range parsed {
		if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) < minCount {
		return nil, fmt.Errorf("expected at least %d questions, got %d", minCount, len(questions))
	}
	return questions, nil
}

// gradePayload mirrors the {rating, feedback} contract of the grading prompt.
// Rating arrives as a number most of the time, but the oracle has been seen
// returning it quoted, so both are accepted.
type gradePayload struct {
	Rating   json.Number `json:"rating"`
	Feedback string      `json:"feedback"`
}

// parseGrade extracts rating and feedback from the grading response.
// A decodable object with a missing or non-numeric rating yields the neutral
// rating 5 rather than an error; only an undecodable response errors.
// The returned rating is NOT yet clamped.
func parseGrade(raw string) (int, string, error) {
	jsonStr, err := extractJSONObject(stripCodeFences(raw))
	if err != nil {
		return 0, "", err
	}

	var payload gradePayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		// Retry with rating as a bare string ("7") before giving up.
		var loose struct {
			Rating   string `json:"rating"`
			Feedback string `json:"feedback"`
		}
		if err2 := json.Unmarshal([]byte(jsonStr), &loose); err2 != nil {
			return 0, "", fmt.Errorf("response is not a valid grade object: %w", err)
		}
		payload.Rating = json.Number(loose.Rating)
		payload.Feedback = loose.Feedback
	}

	rating, err := strconv.Atoi(strings.TrimSpace(payload.Rating.String()))
	if err != nil {
		// A float like 7.5 still counts.
		if f, ferr := payload.Rating.Float64(); ferr == nil {
			return int(f), payload.Feedback, nil
		}
		return neutralRating, payload.Feedback, nil
	}
	return rating, payload.Feedback, nil
}

// neutralRating is stored when the oracle's rating is absent or unusable.
const neutralRating = 5

// clampRating forces a rating into the inclusive [1,10] band.
func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 10 {
		return 10
	}
	return rating
}

package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidQuery flags a query that is empty or out of bounds after
	// sanitization.
	ErrInvalidQuery = errors.New("invalid query format")
	// ErrInvalidID flags a product identifier that fails the allow-list or
	// length constraints.
	ErrInvalidID = errors.New("invalid id format")
)

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	// Word characters, whitespace, the Thai block, and light punctuation.
	queryDeniedPattern = regexp.MustCompile(`[^\w\s\x{0E00}-\x{0E7F}\-.,]`)
	// Identifiers allow word characters plus "-", "_" and "*".
	idDeniedPattern = regexp.MustCompile(`[^\w\-_*]`)
)

func (s *Service) sanitizeQuery(query string) (string, error) {
	query = htmlTagPattern.ReplaceAllString(query, "")
	query = queryDeniedPattern.ReplaceAllString(query, "")
	sanitized := strings.TrimSpace(query)

	if sanitized == "" {
		return "", fmt.Errorf("%w: empty query after sanitization", ErrInvalidQuery)
	}
	if len([]rune(sanitized)) < s.limits.MinQueryLength || len([]rune(sanitized)) > s.limits.MaxQueryLength {
		return "", fmt.Errorf("%w: query length must be between %d and %d characters",
			ErrInvalidQuery, s.limits.MinQueryLength, s.limits.MaxQueryLength)
	}

	return sanitized, nil
}

func (s *Service) sanitizeID(id string) (string, error) {
	sanitized := strings.TrimSpace(idDeniedPattern.ReplaceAllString(id, ""))

	if sanitized == "" {
		return "", fmt.Errorf("%w: empty id after sanitization", ErrInvalidID)
	}
	if len(sanitized) < s.limits.MinIDLength || len(sanitized) > s.limits.MaxIDLength {
		return "", fmt.Errorf("%w: id length must be between %d and %d characters",
			ErrInvalidID, s.limits.MinIDLength, s.limits.MaxIDLength)
	}

	return sanitized, nil
}

func isDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package dto

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/yamdb-api/models"
)

// ReservedUsernames may never be registered; "me" clashes with /users/me/
var ReservedUsernames = []string{"me"}

// reservedEmailPatterns reject addresses whose local part is a reserved username
var reservedEmailPatterns = buildReservedEmailPatterns(ReservedUsernames)

func buildReservedEmailPatterns(names []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(names))
	for _, name := range names {
		patterns = append(patterns, regexp.MustCompile(`(?i)^`+regexp.QuoteMeta(name)+`@`))
	}
	return patterns
}

// IsReservedUsername checks the whole denylist, case-insensitively
func IsReservedUsername(username string) bool {
	for _, name := range ReservedUsernames {
		if strings.EqualFold(username, name) {
			return true
		}
	}
	return false
}

// IsReservedEmail checks the email against every denylist pattern
func IsReservedEmail(email string) bool {
	for _, p := range reservedEmailPatterns {
		if p.MatchString(email) {
			return true
		}
	}
	return false
}

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}

func notReservedUsername(value interface{}) error {
	s, ok := stringValue(value)
	if ok && IsReservedUsername(s) {
		return errors.New("username \"" + s + "\" is reserved")
	}
	return nil
}

func notReservedEmail(value interface{}) error {
	s, ok := stringValue(value)
	if ok && IsReservedEmail(s) {
		return errors.New("email \"" + s + "\" contains a reserved name")
	}
	return nil
}

// optionalRole accepts an omitted role so the default applies on create
func optionalRole(value interface{}) error {
	if s, ok := value.(string); ok && s == "" {
		return nil
	}
	return validRole(value)
}

func validRole(value interface{}) error {
	s, ok := stringValue(value)
	if ok && !models.Role(s).IsValid() {
		return errors.New("unknown role \"" + s + "\"")
	}
	return nil
}

// scoreInRange rejects nil-less out-of-range scores, including 0
func scoreInRange(value interface{}) error {
	var score int
	switch v := value.(type) {
	case int:
		score = v
	case *int:
		if v == nil {
			return nil
		}
		score = *v
	default:
		return errors.New("score must be an integer")
	}
	if score < models.MinScore || score > models.MaxScore {
		return errors.New("score must be between 1 and 10")
	}
	return nil
}

// usernameRules are shared by signup and profile requests
func usernameRules() []validation.Rule {
	return []validation.Rule{
		validation.Length(1, models.UsernameMaxLength),
		validation.Match(models.UsernamePattern).Error("username may contain only letters, digits and @/./+/-/_"),
		validation.By(notReservedUsername),
	}
}

func slugRules() []validation.Rule {
	return []validation.Rule{
		validation.Length(1, models.SlugMaxLength),
		validation.Match(models.SlugPattern).Error("slug may contain only letters, digits, - and _"),
	}
}

package services

import (
	"html"
	"regexp"
	"strings"
	"time"

	"lostfound/internal/models"

	"github.com/microcosm-cc/bluemonday"
)

const (
	minNameLen     = 2
	minPasswordLen = 6
)

var registrationRe = regexp.MustCompile(`^\d{6,10}$`)

var plainText = bluemonday.StrictPolicy()

// cleanText strips markup from free text typed by users. Entities are
// unescaped again so that text is stored as typed.
func cleanText(v string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(v)))
}

// emailPattern returns the institutional address pattern for domain.
func emailPattern(domain string) *regexp.Regexp {
	return regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@` + regexp.QuoteMeta(domain) + `$`)
}

func validateRegistrationNumber(v string) error {
	if !registrationRe.MatchString(v) {
		return invalid("registrationNumber", "Número de matrícula inválido. Use de 6 a 10 dígitos.")
	}
	return nil
}

func validatePassword(field, v string) error {
	if len(v) < minPasswordLen {
		return invalid(field, "A senha deve ter pelo menos 6 caracteres.")
	}
	return nil
}

func validateName(field, v string) error {
	if len([]rune(strings.TrimSpace(v))) < minNameLen {
		return invalid(field, "O nome deve ter pelo menos 2 caracteres.")
	}
	return nil
}

func required(field, v, label string) error {
	if strings.TrimSpace(v) == "" {
		return invalid(field, "O campo "+label+" é obrigatório.")
	}
	return nil
}

// parseCategory accepts the four categories. Empty input is a validation
// error; anything else unknown is ErrInvalidCategory.
func parseCategory(v string) (models.Category, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "", invalid("category", "O campo categoria é obrigatório.")
	}
	c := models.Category(v)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func parseLocation(v string) (models.Location, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "", invalid("location", "O campo local é obrigatório.")
	}
	l := models.Location(v)
	if !l.Valid() {
		return "", invalid("location", "Local inválido.")
	}
	return l, nil
}

func parseDate(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, invalid(field, "O campo data é obrigatório.")
	}
	d, err := time.Parse(models.DateLayout, v)
	if err != nil {
		return time.Time{}, invalid(field, "Data inválida. Use o formato AAAA-MM-DD.")
	}
	return d, nil
}

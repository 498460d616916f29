package helpers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/eventin/server/internal/models"
)

// Event payload validation. Payloads arrive as string maps so unknown
// keys can be rejected and partial updates validated field by field.
// When several fields are invalid the first failure wins, checked in a
// fixed order: name, description, time, location, date.

var eventAllowedFields = []string{"event_name", "description", "date", "time", "location"}

var (
	eventNameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	timeRegex      = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	dateRegex      = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	nameRegex      = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const maxDescriptionLength = 250

// ValidateCreateEventBody requires all five event fields and validates
// each of them.
func ValidateCreateEventBody(body map[string]string) error {
	if err := checkAllowedEventFields(body); err != nil {
		return err
	}
	for _, field := range eventAllowedFields {
		if strings.TrimSpace(body[field]) == "" {
			return models.ErrInvalidPayload("Request body must contain 'event_name', 'description', 'date', 'time', and 'location'")
		}
	}
	return validateEventFields(body)
}

// ValidateUpdateEventBody accepts any non-empty subset of the event
// fields and validates only the ones supplied.
func ValidateUpdateEventBody(body map[string]string) error {
	if err := checkAllowedEventFields(body); err != nil {
		return err
	}
	if len(body) == 0 {
		return models.ErrInvalidPayload("Request body cannot be empty")
	}
	return validateEventFields(body)
}

func checkAllowedEventFields(body map[string]string) error {
	for key := range body {
		allowed := false
		for _, field := range eventAllowedFields {
			if key == field {
				allowed = true
				break
			}
		}
		if !allowed {
			return models.ErrInvalidPayload("Invalid request body")
		}
	}
	return nil
}

func validateEventFields(body map[string]string) error {
	if name, ok := body["event_name"]; ok && !eventNameRegex.MatchString(name) {
		return models.ErrInvalidPayload("Event name should contain only alphanumeric characters and spaces")
	}
	if description, ok := body["description"]; ok && len(description) > maxDescriptionLength {
		return models.ErrInvalidPayload(fmt.Sprintf("Description should be less than or equal to %d characters", maxDescriptionLength))
	}
	if eventTime, ok := body["time"]; ok && !timeRegex.MatchString(eventTime) {
		return models.ErrInvalidPayload("Time should be in HH:MM 24-hour format")
	}
	if location, ok := body["location"]; ok && strings.TrimSpace(location) == "" {
		return models.ErrInvalidPayload("Location should be a non-empty string")
	}
	if date, ok := body["date"]; ok {
		if err := validateEventDate(date); err != nil {
			return err
		}
	}
	return nil
}

// validateEventDate checks the DD-MM-YYYY format, that the date is a
// real calendar date, and that it lies strictly in the future.
func validateEventDate(date string) error {
	match := dateRegex.FindStringSubmatch(date)
	if match == nil {
		return models.ErrInvalidPayload("Date should be in DD-MM-YYYY format")
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 || year > 2100 {
		return models.ErrInvalidPayload("Please provide a valid date in DD-MM-YYYY format")
	}

	// time.Parse rejects impossible dates such as 31-02-2025.
	parsed, err := time.Parse("02-01-2006", date)
	if err != nil {
		return models.ErrInvalidPayload("Please provide a valid date in DD-MM-YYYY format")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !parsed.After(today) {
		return models.ErrInvalidPayload("Only future dates are accepted")
	}
	return nil
}

// IsValidPersonName allows letters and spaces only.
func IsValidPersonName(name string) bool {
	return nameRegex.MatchString(name)
}

// IsValidEmail does a structural email check.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

package validation

import (
	"net/url"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"
)

// ProfileInput carries caller-supplied profile fields. Nil pointers mean
// "field not supplied"; partial updates touch only the supplied fields.
type ProfileInput struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
}

var (
	fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s.\-']+$`)
	emailPattern    = regexp.MustCompile(
		`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	phoneKeepPattern   = regexp.MustCompile(`[^\d+\s\-()]`)
	phonePattern       = regexp.MustCompile(`^\+?[\d\s\-()]{10,15}$`)
	phoneDigitsPattern = regexp.MustCompile(`[^\d]`)

	// disposableDomains are temporary email providers rejected at
	// registration.
	disposableDomains = map[string]bool{
		"tempmail.org":      true,
		"10minutemail.com":  true,
		"guerrillamail.com": true,
	}
)

// ValidateProfile validates and sanitizes profile input. On success the
// returned ProfileInput carries the sanitized values for every supplied
// field; on failure the error wraps ErrInvalidInput and names each invalid
// field.
func ValidateProfile(input ProfileInput) (ProfileInput, error) {
	sanitized := ProfileInput{}
	errs := validation.Errors{}

	if input.FullName != nil {
		value, err := sanitizeFullName(*input.FullName)
		if err != nil {
			errs["fullName"] = err
		} else {
			sanitized.FullName = &value
		}
	}

	if input.Email != nil {
		value, err := sanitizeEmail(*input.Email)
		if err != nil {
			errs["email"] = err
		} else {
			sanitized.Email = &value
		}
	}

	if input.Phone != nil {
		value, err := sanitizePhone(*input.Phone)
		if err != nil {
			errs["phone"] = err
		} else {
			sanitized.Phone = &value
		}
	}

	if input.LinkedIn != nil {
		value, err := sanitizeLinkedInURL(*input.LinkedIn)
		if err != nil {
			errs["linkedin"] = err
		} else {
			sanitized.LinkedIn = &value
		}
	}

	if err := errs.Filter(); err != nil {
		return ProfileInput{}, WrapValidationError(err)
	}
	return sanitized, nil
}

func sanitizeFullName(name string) (string, error) {
	if containsHarmfulContent(name) {
		return "", newError("validation_full_name_harmful", "full name contains potentially harmful content")
	}

	sanitized := stripMarkup(name)
	if len(sanitized) < 2 {
		return "", newError("validation_full_name_length", "full name must be at least 2 characters long")
	}
	if len(sanitized) > 100 {
		return "", newError("validation_full_name_length", "full name cannot exceed 100 characters")
	}
	if !fullNamePattern.MatchString(sanitized) {
		return "", newError(
			"validation_full_name_characters",
			"full name may only contain letters, spaces, dots, hyphens, and apostrophes")
	}
	return sanitized, nil
}

func sanitizeEmail(email string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(email))
	if sanitized == "" {
		return "", newError("validation_email_required", "email cannot be empty")
	}
	if len(sanitized) > 254 {
		return "", newError("validation_email_length", "email cannot exceed 254 characters")
	}
	if !emailPattern.MatchString(sanitized) {
		return "", newError("validation_email_format", "invalid email format")
	}

	domain := sanitized[strings.LastIndex(sanitized, "@")+1:]
	if disposableDomains[domain] {
		return "", newError("validation_email_disposable", "temporary email addresses are not allowed")
	}
	return sanitized, nil
}

func sanitizePhone(phone string) (string, error) {
	sanitized := strings.TrimSpace(phoneKeepPattern.ReplaceAllString(phone, ""))
	if sanitized == "" {
		return "", newError("validation_phone_required", "phone number cannot be empty")
	}
	if len(sanitized) < 10 {
		return "", newError("validation_phone_length", "phone number is too short (minimum 10 digits)")
	}
	if len(sanitized) > 15 {
		return "", newError("validation_phone_length", "phone number is too long (maximum 15 digits)")
	}
	if !phonePattern.MatchString(sanitized) {
		return "", newError("validation_phone_format", "invalid phone number format")
	}

	digits := phoneDigitsPattern.ReplaceAllString(sanitized, "")
	if allSameDigit(digits) {
		return "", newError("validation_phone_fake", "phone number appears to be invalid")
	}
	return sanitized, nil
}

// allSameDigit reports whether s consists of a single repeated digit, the
// shape of obviously fake numbers like 0000000000.
func allSameDigit(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func sanitizeLinkedInURL(raw string) (string, error) {
	sanitized := strings.TrimSpace(raw)
	if sanitized == "" {
		return "", newError("validation_linkedin_required", "linkedin url cannot be empty")
	}
	if len(sanitized) > 200 {
		return "", newError("validation_linkedin_length", "linkedin url is too long")
	}
	if !strings.HasPrefix(sanitized, "http://") && !strings.HasPrefix(sanitized, "https://") {
		sanitized = "https://" + sanitized
	}

	parsed, err := url.Parse(sanitized)
	if err != nil || parsed.Host == "" {
		return "", newError("validation_linkedin_format", "invalid url format")
	}
	host := strings.ToLower(parsed.Hostname())
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return "", newError("validation_linkedin_domain", "url must be from the linkedin.com domain")
	}
	if !strings.Contains(parsed.Path, "/in/") && !strings.Contains(parsed.Path, "/pub/") {
		return "", newError(
			"validation_linkedin_path",
			"linkedin url must be a profile url (containing /in/ or /pub/)")
	}
	return sanitized, nil
}

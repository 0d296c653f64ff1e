package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Explicit experience statements are checked first; the first match wins.
var explicitExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\.?\d*)\s*(?:years?|yrs?)\s*(?:experience|exp)`),
	regexp.MustCompile(`experience\s*:\s*(\d+\.?\d*)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*in\s*.*(?:experience|exp)`),
	regexp.MustCompile(`(\d+\.?\d*)\s*(?:years?|yrs?)\s*professional`),
	regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*relevant`),
}

// Employment date ranges like "jan 2019 - mar 2022" or "aug 2020 – present".
// Text arrives lowercased from the extractor.
var dateRangePattern = regexp.MustCompile(
	`((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{4})\s*[-–—]\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{4}|present)`)

const daysPerYear = 365.25

// ExtractExperience extracts total years of experience from resume text.
// It first looks for explicit statements ("7 years experience"); failing
// that it sums the durations of employment date ranges. Returns nil when
// neither yields a value, distinguishing "not found" from zero years.
func ExtractExperience(text string) *float64 {
	for _, pattern := range explicitExperiencePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if years, err := strconv.ParseFloat(m[1], 64); err == nil {
				return &years
			}
		}
	}

	var total float64
	valid := 0
	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := parseMonthYear(m[1])
		if err != nil {
			continue
		}
		var end time.Time
		if m[2] == "present" {
			end = time.Now()
		} else {
			end, err = parseMonthYear(m[2])
			if err != nil {
				continue
			}
		}
		duration := end.Sub(start).Hours() / 24 / daysPerYear
		if duration > 0 {
			total += duration
			valid++
		}
	}
	if valid > 0 {
		return &total
	}
	return nil
}

// parseMonthYear parses strings like "jan 2019", "january 2019" or
// "sept2020" by taking the first three letters of the month and the
// trailing four-digit year.
func parseMonthYear(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < 7 {
		return time.Time{}, &parseDateError{s}
	}
	month := strings.ToUpper(s[:1]) + s[1:3]
	year := s[len(s)-4:]
	return time.Parse("Jan 2006", month+" "+year)
}

type parseDateError struct {
	input string
}

func (e *parseDateError) Error() string {
	return "unparseable date: " + e.input
}

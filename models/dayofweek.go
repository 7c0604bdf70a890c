package models

import (
	"fmt"
	"strconv"
	"strings"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var dayAliases = map[string]DayOfWeek{
	"MONDAY": Monday, "MON": Monday,
	"TUESDAY": Tuesday, "TUE": Tuesday,
	"WEDNESDAY": Wednesday, "WED": Wednesday,
	"THURSDAY": Thursday, "THU": Thursday,
	"FRIDAY": Friday, "FRI": Friday,
	"SATURDAY": Saturday, "SAT": Saturday,
	"SUNDAY": Sunday, "SUN": Sunday,
}

// ParseDayOfWeek accepts full day names and MON..SUN abbreviations, case
// insensitive.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	day, ok := dayAliases[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid day of week %q", s)
	}
	return day, nil
}

// ParseClock parses an "HH:MM" wall-clock time into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return h*60 + m, nil
}

package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwalitptl/clinica/internal/model"
)

// Day-name lookup, case-insensitive, English and Spanish. The registry only
// ever sees Monday-based weekday indexes; names are a console concern.
var dayNames = map[string]model.Weekday{
	"monday": model.Monday, "lunes": model.Monday,
	"tuesday": model.Tuesday, "martes": model.Tuesday,
	"wednesday": model.Wednesday, "miercoles": model.Wednesday, "miércoles": model.Wednesday,
	"thursday": model.Thursday, "jueves": model.Thursday,
	"friday": model.Friday, "viernes": model.Friday,
	"saturday": model.Saturday, "sabado": model.Saturday, "sábado": model.Saturday,
	"sunday": model.Sunday, "domingo": model.Sunday,
}

// ParseDays reads a comma-separated list of day names or 0-6 indexes.
func ParseDays(raw string) ([]model.Weekday, error) {
	parts := ParseList(raw)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no days given", model.ErrInvalidSpecialty)
	}

	days := make([]model.Weekday, 0, len(parts))
	for _, part := range parts {
		if day, ok := dayNames[strings.ToLower(part)]; ok {
			days = append(days, day)
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || !model.Weekday(n).Valid() {
			return nil, fmt.Errorf("%w: unknown day %q", model.ErrInvalidSpecialty, part)
		}
		days = append(days, model.Weekday(n))
	}
	return days, nil
}

// ParseList splits on commas, trims whitespace and drops empty entries.
func ParseList(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

package text

import "fmt"

type Formatter interface {
	Format(layout string) string
}

func IsNullOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// ToStringOrDefault formats *v with fmt.Sprint, or returns def when v is nil.
func ToStringOrDefault[T any](v *T, def string) string {
	if v == nil {
		return def
	}
	return fmt.Sprint(*v)
}

// FormatOrDefault formats *v with layout (time.Time and similar types), or
// returns def when v is nil.
func FormatOrDefault[T Formatter](v *T, layout, def string) string {
	if v == nil {
		return def
	}
	return (*v).Format(layout)
}

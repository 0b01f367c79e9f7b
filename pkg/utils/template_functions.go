package utils

import (
	"html/template"
	"strings"
	"time"
)

func GetTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,
		"truncate": func(s string, length int) string {
			if len(s) <= length {
				return s
			}
			return s[:length] + "..."
		},
		"currentYear": func() int {
			return time.Now().Year()
		},
	}
}

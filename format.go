package cputimer

import "github.com/dustin/go-humanize"

func formatSeconds(s float64) string {
	return humanize.SIWithDigits(s, 3, "s")
}

func formatRate(r float64) string {
	return humanize.SIWithDigits(r, 3, "Hz")
}

// describe prefixes body with a timer's name, if it has one.
func describe(name, body string) string {
	if name == "" {
		return body
	}
	return name + ": " + body
}

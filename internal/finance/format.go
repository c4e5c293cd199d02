// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package finance

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders v as US dollars with thousands separators and two
// decimals: "$1,234.50", "-$5.00".
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 && Round2(v) != 0 {
		sign = "-"
	}
	return sign + "$" + moneyPrinter.Sprint(number.Decimal(math.Abs(v), number.Scale(2)))
}

// FormatPercent renders v with two decimals and a percent sign: "24.99%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

const (
	minutesInHour  = 60.0
	minutesInDay   = 1440.0
	minutesInMonth = 43200.0
	minutesInYear  = 525600.0
)

// OpenDateAgeLabel describes how long ago openDate was, relative to now, as
// a single rounded unit ("3 years", "5 months", "1 day"). openDate may be a
// calendar date (YYYY-MM-DD, read in now's location) or an RFC 3339
// timestamp. It returns false for empty or unparseable input.
func OpenDateAgeLabel(openDate string, now time.Time) (string, bool) {
	openDate = strings.TrimSpace(openDate)
	if openDate == "" {
		return "", false
	}

	opened, err := time.ParseInLocation(time.DateOnly, openDate, now.Location())
	if err != nil {
		opened, err = time.Parse(time.RFC3339, openDate)
		if err != nil {
			return "", false
		}
	}

	return strictDistance(now.Sub(opened)), true
}

// strictDistance picks the largest unit whose threshold the distance
// reaches and rounds to it. Twelve rounded months read as one year.
func strictDistance(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	minutes := d.Minutes()

	switch {
	case minutes < 1:
		return plural(math.Round(d.Seconds()), "second")
	case minutes < minutesInHour:
		return plural(math.Round(minutes), "minute")
	case minutes < minutesInDay:
		return plural(math.Round(minutes/minutesInHour), "hour")
	case minutes < minutesInMonth:
		return plural(math.Round(minutes/minutesInDay), "day")
	case minutes < minutesInYear:
		months := math.Round(minutes / minutesInMonth)
		if months == 12 {
			return plural(1, "year")
		}
		return plural(months, "month")
	default:
		return plural(math.Round(minutes/minutesInYear), "year")
	}
}

func plural(n float64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%.0f %ss", n, unit)
}

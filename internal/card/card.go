// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package card classifies payment card numbers by network, validates their
// length and checksum, and formats them for display.
//
// Identification is advisory: an unknown or invalid number is reported with
// ok == false and callers show the raw text instead.
package card

import (
	"strconv"
	"strings"
)

// Brand is a payment card network.
type Brand string

const (
	Visa       Brand = "Visa"
	Amex       Brand = "American Express"
	Mastercard Brand = "Mastercard"
	Discover   Brand = "Discover"
	JCB        Brand = "JCB"
	Diners     Brand = "Diners Club"
	UnionPay   Brand = "UnionPay"
)

// Card is the result of a successful [Identify].
type Card struct {
	// Digits is the input with every non-digit removed.
	Digits string
	// Brand is the detected network.
	Brand Brand
	// Formatted is Digits grouped with spaces the way the network prints it.
	Formatted string
}

type brandRule struct {
	brand   Brand
	matches func(digits string) bool
	lengths func(n int) bool
	luhn    bool
	groups  []int
}

var fourGroups = []int{4}

// rules are evaluated in order; the first match wins.
var rules = []brandRule{
	{
		brand:   Visa,
		matches: func(d string) bool { return strings.HasPrefix(d, "4") },
		lengths: oneOf(13, 16, 19),
		luhn:    true,
		groups:  fourGroups,
	},
	{
		brand:   Amex,
		matches: func(d string) bool { return strings.HasPrefix(d, "34") || strings.HasPrefix(d, "37") },
		lengths: oneOf(15),
		luhn:    true,
		groups:  []int{4, 6, 5},
	},
	{
		brand: Mastercard,
		matches: func(d string) bool {
			return prefixIn(d, 2, 51, 55) || prefixIn(d, 4, 2221, 2720)
		},
		lengths: oneOf(16),
		luhn:    true,
		groups:  fourGroups,
	},
	{
		brand: Discover,
		matches: func(d string) bool {
			return strings.HasPrefix(d, "6011") ||
				strings.HasPrefix(d, "65") ||
				prefixIn(d, 3, 644, 649) ||
				prefixIn(d, 6, 622126, 622925)
		},
		lengths: oneOf(16, 19),
		luhn:    true,
		groups:  fourGroups,
	},
	{
		brand:   JCB,
		matches: func(d string) bool { return prefixIn(d, 4, 3528, 3589) },
		lengths: oneOf(16),
		luhn:    true,
		groups:  fourGroups,
	},
	{
		brand: Diners,
		matches: func(d string) bool {
			return prefixIn(d, 3, 300, 305) || strings.HasPrefix(d, "36") || prefixIn(d, 2, 38, 39)
		},
		lengths: oneOf(14),
		luhn:    true,
		groups:  []int{4, 6, 4},
	},
	{
		brand:   UnionPay,
		matches: func(d string) bool { return strings.HasPrefix(d, "62") },
		lengths: func(n int) bool { return n >= 16 && n <= 19 },
		// UnionPay numbers are not guaranteed to satisfy Luhn.
		luhn:   false,
		groups: fourGroups,
	},
}

// Identify strips non-digits from raw and classifies the result.
// It returns ok == false when the input has no digits, matches no network,
// has the wrong length for its network or fails the Luhn checksum.
func Identify(raw string) (Card, bool) {
	digits := Digits(raw)
	if digits == "" {
		return Card{}, false
	}

	rule, found := detect(digits)
	if !found {
		return Card{}, false
	}

	if !rule.lengths(len(digits)) {
		return Card{}, false
	}

	if rule.luhn && !LuhnValid(digits) {
		return Card{}, false
	}

	return Card{
		Digits:    digits,
		Brand:     rule.brand,
		Formatted: group(digits, rule.groups),
	}, true
}

// DetectBrand returns the network implied by the prefix of raw, without
// checking length or checksum. It is used for as-you-type hints.
func DetectBrand(raw string) (Brand, bool) {
	rule, found := detect(Digits(raw))
	if !found {
		return "", false
	}
	return rule.brand, true
}

// Digits returns raw with every character outside '0'..'9' removed.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// LuhnValid runs the mod-10 checksum over a string of ASCII digits.
func LuhnValid(digits string) bool {
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		n := int(digits[i] - '0')
		if n < 0 || n > 9 {
			return false
		}
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}

	return sum%10 == 0
}

func detect(digits string) (brandRule, bool) {
	if digits == "" {
		return brandRule{}, false
	}
	for _, r := range rules {
		if r.matches(digits) {
			return r, true
		}
	}
	return brandRule{}, false
}

// prefixIn reports whether the first n digits, read as a number, fall in
// [lo, hi]. Shorter inputs never match.
func prefixIn(digits string, n, lo, hi int) bool {
	if len(digits) < n {
		return false
	}
	v, err := strconv.Atoi(digits[:n])
	if err != nil {
		return false
	}
	return v >= lo && v <= hi
}

func oneOf(lengths ...int) func(int) bool {
	return func(n int) bool {
		for _, l := range lengths {
			if n == l {
				return true
			}
		}
		return false
	}
}

// group splits digits into consecutive chunks of the given sizes. The last
// size repeats until the input is exhausted.
func group(digits string, sizes []int) string {
	parts := make([]string, 0, len(digits)/4+1)
	for i, pos := 0, 0; pos < len(digits); i++ {
		size := sizes[len(sizes)-1]
		if i < len(sizes) {
			size = sizes[i]
		}
		end := min(pos+size, len(digits))
		parts = append(parts, digits[pos:end])
		pos = end
	}
	return strings.Join(parts, " ")
}

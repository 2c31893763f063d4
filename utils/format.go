package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GenerateCode returns a random numeric verification code of the given
// length, zero-padded.
func GenerateCode(length int) string {
	if length <= 0 {
		length = 6
	}
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(err)
	}
	return fmt.Sprintf("%0*d", length, n)
}

// FormatPhone normalizes a phone number to the +998XXXXXXXXX form. Bare
// nine-digit local numbers get the country code prepended.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if len(number) == 9 {
		number = "998" + number
	}
	return "+" + number
}

// ValidatePhone reports whether the number is a normalized Uzbek phone.
func ValidatePhone(phone string) bool {
	if len(phone) != 13 || !strings.HasPrefix(phone, "+998") {
		return false
	}
	for _, r := range phone[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatPrice renders an amount with thousands separators and the local
// currency suffix, e.g. 1500000 -> "1,500,000 so'm".
func FormatPrice(amount float64) string {
	whole := int64(amount)
	s := fmt.Sprintf("%d", whole)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out + " so'm"
}

// Package document implements validators and formatters for Brazilian
// registry documents (CPF and CNPJ) and common contact fields.
//
// All validators are pure, total functions: they normalize their input,
// return a boolean, and never fail.
package document

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonDigits  = regexp.MustCompile(`[^0-9]`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// CNPJ check digit weight vectors. The second vector already accounts for
// the first check digit being part of the input.
var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize strips every non-digit character from the input.
func Normalize(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidCPF reports whether the input is a valid CPF. Formatting characters
// are ignored; the normalized input must be exactly 11 digits.
func ValidCPF(cpf string) bool {
	cpf = Normalize(cpf)
	if len(cpf) != 11 {
		return false
	}
	if allSameDigit(cpf) {
		return false
	}

	sum1 := 0
	for i := 0; i < 9; i++ {
		sum1 += digitAt(cpf, i) * (10 - i)
	}
	d1 := checkDigit(sum1)

	// The second pass runs over the first ten digits, i.e. with d1 in
	// position nine.
	sum2 := 0
	for i := 0; i < 9; i++ {
		sum2 += digitAt(cpf, i) * (11 - i)
	}
	sum2 += d1 * 2
	d2 := checkDigit(sum2)

	return digitAt(cpf, 9) == d1 && digitAt(cpf, 10) == d2
}

// ValidCNPJ reports whether the input is a valid CNPJ. Formatting characters
// are ignored; the normalized input must be exactly 14 digits.
func ValidCNPJ(cnpj string) bool {
	cnpj = Normalize(cnpj)
	if len(cnpj) != 14 {
		return false
	}
	if allSameDigit(cnpj) {
		return false
	}

	sum1 := 0
	for i, w := range cnpjWeightsFirst {
		sum1 += digitAt(cnpj, i) * w
	}
	d1 := checkDigit(sum1)

	sum2 := 0
	for i, w := range cnpjWeightsSecond {
		sum2 += digitAt(cnpj, i) * w
	}
	d2 := checkDigit(sum2)

	return digitAt(cnpj, 12) == d1 && digitAt(cnpj, 13) == d2
}

// ValidDocument validates either a CPF or a CNPJ, dispatching on the number
// of digits after normalization. Any other length is invalid.
func ValidDocument(doc string) bool {
	switch len(Normalize(doc)) {
	case 11:
		return ValidCPF(doc)
	case 14:
		return ValidCNPJ(doc)
	default:
		return false
	}
}

// ValidEmail reports whether the input looks like a well-formed email address.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidPhone reports whether the input is a Brazilian phone number:
// 10 digits (landline) or 11 digits (mobile), including the area code.
func ValidPhone(phone string) bool {
	n := len(Normalize(phone))
	return n == 10 || n == 11
}

// FormatDocument formats a CPF as 000.000.000-00 or a CNPJ as
// 00.000.000/0000-00. Inputs of any other length are returned normalized.
func FormatDocument(doc string) string {
	doc = Normalize(doc)
	switch len(doc) {
	case 11:
		return fmt.Sprintf("%s.%s.%s-%s", doc[:3], doc[3:6], doc[6:9], doc[9:])
	case 14:
		return fmt.Sprintf("%s.%s.%s/%s-%s", doc[:2], doc[2:5], doc[5:8], doc[8:12], doc[12:])
	default:
		return doc
	}
}

// FormatPhone formats a phone number as (00) 0000-0000 or (00) 00000-0000.
// Inputs of any other length are returned normalized.
func FormatPhone(phone string) string {
	phone = Normalize(phone)
	switch len(phone) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", phone[:2], phone[2:6], phone[6:])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", phone[:2], phone[2:7], phone[7:])
	default:
		return phone
	}
}

// checkDigit applies the shared mod-11 rule: digits that would compute to
// 10 or 11 collapse to zero.
func checkDigit(sum int) int {
	d := 11 - (sum % 11)
	if d >= 10 {
		return 0
	}
	return d
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

func allSameDigit(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}

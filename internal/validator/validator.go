// Package validator は入力値の形式チェック。I/Oは持たない。
package validator

import "regexp"

var (
	// 16桁連続 or 4桁-4桁-4桁-4桁
	creditCardRe = regexp.MustCompile(`^(?:\d{4}-\d{4}-\d{4}-\d{4}|\d{16})$`)

	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// 数字・空白・ハイフン・括弧、先頭+可
	phoneRe = regexp.MustCompile(`^\+?[0-9()\-\s]{7,20}$`)
)

// クレジットカード番号の形式チェック。
// 形式が合っていても、同じ数字が4回以上連続する番号は弾く
// （1111111111111111 のような適当な番号対策）。
func ValidateCreditCard(num string) bool {
	if !creditCardRe.MatchString(num) {
		return false
	}
	return longestDigitRun(num) < 4
}

// ハイフンを無視して、同じ数字の最長連続数を数える
func longestDigitRun(num string) int {
	longest, run := 0, 0
	var prev rune
	for _, r := range num {
		if r == '-' {
			continue
		}
		if r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// 簡易メール形式をチェック
func ValidateEmail(s string) bool {
	return emailRe.MatchString(s)
}

// 電話番号の形式チェック
func ValidatePhone(s string) bool {
	return phoneRe.MatchString(s)
}

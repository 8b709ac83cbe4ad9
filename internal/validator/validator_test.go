package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreditCard(t *testing.T) {
	cases := []struct {
		name string
		num  string
		want bool
	}{
		{"ハイフン区切り", "4242-4242-4242-4242", true},
		{"16桁連続", "4242424242424242", true},
		{"同じ数字の繰り返し", "1111111111111111", false},
		{"ハイフン区切りでも繰り返しは弾く", "1111-1111-1111-1111", false},
		{"桁足らず", "123", false},
		{"空文字", "", false},
		{"数字以外", "4242-4242-4242-424a", false},
		{"区切りの位置が不正", "42424-242-4242-4242", false},
		{"途中に4連続", "4242111142424242", false},
		{"3連続までは許す", "4242111424242424", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateCreditCard(tc.num))
		})
	}
}

func TestLongestDigitRun(t *testing.T) {
	//ハイフンをまたいだ連続も数える
	assert.Equal(t, 4, longestDigitRun("4211-1142-4242-4242"))
	assert.Equal(t, 1, longestDigitRun("4242424242424242"))
	assert.Equal(t, 16, longestDigitRun("1111111111111111"))
	assert.Equal(t, 0, longestDigitRun(""))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("taro@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.example.co.jp"))
	assert.False(t, ValidateEmail("taro@example"))
	assert.False(t, ValidateEmail("taro example.com"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+1 (555) 123-4567"))
	assert.True(t, ValidatePhone("03-1234-5678"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("phone"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "+998901234567", "+998901234567"},
		{"digits only", "998901234567", "+998901234567"},
		{"local nine digits", "901234567", "+998901234567"},
		{"with separators", "+998 (90) 123-45-67", "+998901234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.input))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+998901234567"))
	assert.False(t, ValidatePhone("+7998901234567"))
	assert.False(t, ValidatePhone("+99890123456"))
	assert.False(t, ValidatePhone("998901234567"))
	assert.False(t, ValidatePhone("+99890123456a"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1,500,000 so'm", FormatPrice(1500000))
	assert.Equal(t, "800 so'm", FormatPrice(800))
	assert.Equal(t, "0 so'm", FormatPrice(0))
	assert.Equal(t, "2,100 so'm", FormatPrice(2100))
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateCode(6)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
	assert.Len(t, GenerateCode(0), 6, "non-positive length falls back to six digits")
}

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	t.Run("accepts valid CPF", func(t *testing.T) {
		assert.True(t, ValidCPF("11144477735"))
		assert.True(t, ValidCPF("52998224725"))
	})

	t.Run("accepts formatted CPF", func(t *testing.T) {
		assert.True(t, ValidCPF("111.444.777-35"))
	})

	t.Run("rejects repeated digits", func(t *testing.T) {
		assert.False(t, ValidCPF("11111111111"))
		assert.False(t, ValidCPF("00000000000"))
		assert.False(t, ValidCPF("99999999999"))
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		assert.False(t, ValidCPF("11144477734"))
		assert.False(t, ValidCPF("11144477745"))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		assert.False(t, ValidCPF(""))
		assert.False(t, ValidCPF("1114447773"))
		assert.False(t, ValidCPF("111444777350"))
	})
}

func TestValidCNPJ(t *testing.T) {
	t.Run("accepts valid CNPJ", func(t *testing.T) {
		assert.True(t, ValidCNPJ("11222333000181"))
	})

	t.Run("accepts formatted CNPJ", func(t *testing.T) {
		assert.True(t, ValidCNPJ("11.222.333/0001-81"))
	})

	t.Run("rejects repeated digits", func(t *testing.T) {
		assert.False(t, ValidCNPJ("11111111111111"))
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		assert.False(t, ValidCNPJ("11222333000182"))
		assert.False(t, ValidCNPJ("11222333000191"))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		assert.False(t, ValidCNPJ("1122233300018"))
		assert.False(t, ValidCNPJ("112223330001810"))
	})
}

func TestValidDocument(t *testing.T) {
	t.Run("dispatches CPF by length", func(t *testing.T) {
		assert.True(t, ValidDocument("111.444.777-35"))
	})

	t.Run("dispatches CNPJ by length", func(t *testing.T) {
		assert.True(t, ValidDocument("11.222.333/0001-81"))
	})

	t.Run("rejects other lengths", func(t *testing.T) {
		assert.False(t, ValidDocument("1122233300018")) // 13 digits
		assert.False(t, ValidDocument("123"))
		assert.False(t, ValidDocument(""))
	})
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("first.last+tag@sub.example.com.br"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("user@"))
	assert.False(t, ValidEmail("@example.com"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("1133334444"))      // landline
	assert.True(t, ValidPhone("11988887777"))     // mobile
	assert.True(t, ValidPhone("(11) 98888-7777")) // formatted
	assert.False(t, ValidPhone("123"))
	assert.False(t, ValidPhone("119888877770"))
}

func TestFormatDocument(t *testing.T) {
	assert.Equal(t, "111.444.777-35", FormatDocument("11144477735"))
	assert.Equal(t, "11.222.333/0001-81", FormatDocument("11222333000181"))
	assert.Equal(t, "123", FormatDocument("12-3"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 3333-4444", FormatPhone("1133334444"))
	assert.Equal(t, "(11) 98888-7777", FormatPhone("11988887777"))
	assert.Equal(t, "123", FormatPhone("123"))
}

package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates customer with CPF", func(t *testing.T) {
		customer, err := NewCustomer(companyID, "João Silva", "111.444.777-35")

		require.NoError(t, err)
		assert.Equal(t, "João Silva", customer.Name)
		assert.Equal(t, "11144477735", customer.Document)
		assert.Equal(t, companyID, customer.CompanyID)
		assert.True(t, customer.IsIndividual())
	})

	t.Run("creates customer with CNPJ", func(t *testing.T) {
		customer, err := NewCustomer(companyID, "Acme Ltda", "11.222.333/0001-81")

		require.NoError(t, err)
		assert.Equal(t, "11222333000181", customer.Document)
		assert.False(t, customer.IsIndividual())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		customer, err := NewCustomer(companyID, "", "11144477735")

		assert.Error(t, err)
		assert.Nil(t, customer)
	})

	t.Run("fails with invalid document", func(t *testing.T) {
		customer, err := NewCustomer(companyID, "João", "11111111111")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "CPF or CNPJ")
	})
}

func TestCustomerSetDocument(t *testing.T) {
	customer, err := NewCustomer(uuid.New(), "João", "11144477735")
	require.NoError(t, err)

	t.Run("replaces with valid document", func(t *testing.T) {
		err := customer.SetDocument("11.222.333/0001-81")

		require.NoError(t, err)
		assert.Equal(t, "11222333000181", customer.Document)
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		err := customer.SetDocument("123")
		assert.Error(t, err)
	})
}

func TestCustomerSetContact(t *testing.T) {
	customer, err := NewCustomer(uuid.New(), "João", "11144477735")
	require.NoError(t, err)

	t.Run("sets valid contact", func(t *testing.T) {
		err := customer.SetContact("(11) 98888-7777", "Joao@Example.com")

		require.NoError(t, err)
		assert.Equal(t, "11988887777", customer.Phone)
		assert.Equal(t, "joao@example.com", customer.Email)
	})

	t.Run("rejects invalid phone", func(t *testing.T) {
		assert.Error(t, customer.SetContact("12", ""))
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		assert.Error(t, customer.SetContact("", "nope"))
	})

	t.Run("allows clearing contact", func(t *testing.T) {
		require.NoError(t, customer.SetContact("", ""))
		assert.Empty(t, customer.Phone)
		assert.Empty(t, customer.Email)
	})
}

func TestCustomerFormattedDocument(t *testing.T) {
	customer, err := NewCustomer(uuid.New(), "João", "11144477735")
	require.NoError(t, err)

	assert.Equal(t, "111.444.777-35", customer.FormattedDocument())
}

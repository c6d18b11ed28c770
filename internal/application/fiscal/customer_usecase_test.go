package fiscal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

func TestSetCustomerTPIN(t *testing.T) {
	env := newTestEnv()
	env.customers.byID["cust1"] = &entity.Customer{ID: "cust1", Name: "Kalomo Traders", VAT: "old"}

	require.NoError(t, env.svc.SetCustomerTPIN(context.Background(), "cust1", "2001234567"))

	c := env.customers.byID["cust1"]
	assert.Equal(t, "2001234567", c.TPIN)
	assert.Equal(t, "2001234567", c.VAT, "legacy VAT field kept in sync")
}

func TestSetCustomerTPIN_RejectsMalformed(t *testing.T) {
	env := newTestEnv()
	env.customers.byID["cust1"] = &entity.Customer{ID: "cust1"}

	for _, tpin := range []string{"12345", "12345678901", "20012345AB"} {
		err := env.svc.SetCustomerTPIN(context.Background(), "cust1", tpin)
		require.ErrorIs(t, err, domain.ErrInvalidTPIN, tpin)
	}
	assert.Empty(t, env.customers.updated)
}

func TestSetCustomerTPIN_EmptyClears(t *testing.T) {
	env := newTestEnv()
	env.customers.byID["cust1"] = &entity.Customer{ID: "cust1", TPIN: "2001234567", VAT: "2001234567"}

	require.NoError(t, env.svc.SetCustomerTPIN(context.Background(), "cust1", ""))
	assert.Empty(t, env.customers.byID["cust1"].TPIN)
}

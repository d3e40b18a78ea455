package kernel_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountID(t *testing.T) {
	t.Run("parses a uuid", func(t *testing.T) {
		id, err := kernel.NewAccountID(orderIDText)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, orderIDText, id.String())
	})

	t.Run("reports InvalidAccountId with the raw value", func(t *testing.T) {
		_, err := kernel.NewAccountID("acct-1")

		var domainErr *errs.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, errs.InvalidAccountID, domainErr.Kind)
		assert.Equal(t, "acct-1", domainErr.Value)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var id kernel.AccountID
		assert.Equal(t, kernel.ErrAccountIDIsNotConstructed, id.Validate())
	})
}

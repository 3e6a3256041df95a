package stream

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ruralpay/txengine/internal/models"
)

func TestReader(t *testing.T) {
	t.Run("parses records in file order", func(t *testing.T) {
		input := "type,client,tx,amount\n" +
			"deposit,1,1,5.0\n" +
			"withdrawal,1,2,3.0\n" +
			"dispute,1,1,\n" +
			"resolve,1,1,\n" +
			"chargeback,1,1,\n"
		r := NewReader(strings.NewReader(input))

		tx, err := r.Next()
		assert.NoError(t, err)
		assert.Equal(t, models.KindDeposit, tx.Kind)
		assert.Equal(t, uint32(1), tx.ID)
		assert.Equal(t, uint16(1), tx.ClientID)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("5.0")))

		tx, err = r.Next()
		assert.NoError(t, err)
		assert.Equal(t, models.KindWithdrawal, tx.Kind)

		for _, want := range []models.Kind{models.KindDispute, models.KindResolve, models.KindChargeback} {
			tx, err = r.Next()
			assert.NoError(t, err)
			assert.Equal(t, want, tx.Kind)
			assert.True(t, tx.Amount.IsZero())
		}

		_, err = r.Next()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("trims whitespace in every field", func(t *testing.T) {
		input := "type, client, tx, amount\n" +
			"  deposit ,  1 ,  1 ,  5.0  \n"
		r := NewReader(strings.NewReader(input))

		tx, err := r.Next()
		assert.NoError(t, err)
		assert.Equal(t, models.KindDeposit, tx.Kind)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("5.0")))
	})

	t.Run("dispute family rows may omit the amount column", func(t *testing.T) {
		input := "type,client,tx,amount\n" +
			"deposit,1,1,5.0\n" +
			"dispute,1,1\n"
		r := NewReader(strings.NewReader(input))

		_, err := r.Next()
		assert.NoError(t, err)
		tx, err := r.Next()
		assert.NoError(t, err)
		assert.Equal(t, models.KindDispute, tx.Kind)
	})

	t.Run("unknown transaction type is fatal", func(t *testing.T) {
		input := "type,client,tx,amount\n" +
			"transfer,1,1,5.0\n"
		r := NewReader(strings.NewReader(input))

		_, err := r.Next()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("malformed client id is fatal", func(t *testing.T) {
		input := "type,client,tx,amount\n" +
			"deposit,abc,1,5.0\n"
		r := NewReader(strings.NewReader(input))

		_, err := r.Next()
		assert.Error(t, err)
	})

	t.Run("client id above uint16 is fatal", func(t *testing.T) {
		input := "type,client,tx,amount\n" +
			"deposit,70000,1,5.0\n"
		r := NewReader(strings.NewReader(input))

		_, err := r.Next()
		assert.Error(t, err)
	})

	t.Run("malformed amount is fatal", func(t *testing.T) {
		input := "type,client,tx,amount\n" +
			"deposit,1,1,five\n"
		r := NewReader(strings.NewReader(input))

		_, err := r.Next()
		assert.Error(t, err)
	})

	t.Run("missing amount on a deposit is fatal", func(t *testing.T) {
		input := "type,client,tx,amount\n" +
			"deposit,1,1,\n"
		r := NewReader(strings.NewReader(input))

		_, err := r.Next()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "requires an amount")
	})

	t.Run("short row is fatal", func(t *testing.T) {
		input := "type,client,tx,amount\n" +
			"deposit,1\n"
		r := NewReader(strings.NewReader(input))

		_, err := r.Next()
		assert.Error(t, err)
	})

	t.Run("empty input yields EOF", func(t *testing.T) {
		r := NewReader(strings.NewReader(""))

		_, err := r.Next()
		assert.ErrorIs(t, err, io.EOF)
	})
}

package validation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mergexml/internal/errors"
)

func writePayment(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payment.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateMatchingCode(t *testing.T) {
	path := writePayment(t, `<Payment><CurrCode>840</CurrCode></Payment>`)
	v := NewCurrencyValidator("CurrCode", nil)

	assert.NoError(t, v.Validate(context.Background(), path, "840"))
}

func TestValidateMismatchedCode(t *testing.T) {
	path := writePayment(t, `<Payment><CurrCode>978</CurrCode></Payment>`)
	v := NewCurrencyValidator("CurrCode", nil)

	err := v.Validate(context.Background(), path, "840")

	var invalid *apperrors.InvalidCurrencyCodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "840", invalid.Expected)
	assert.Contains(t, err.Error(), "840")
}

func TestValidateFirstOccurrenceWins(t *testing.T) {
	path := writePayment(t, `<Payment><CurrCode>840</CurrCode><CurrCode>978</CurrCode></Payment>`)
	v := NewCurrencyValidator("CurrCode", nil)

	assert.NoError(t, v.Validate(context.Background(), path, "840"))
}

func TestValidateMissingTag(t *testing.T) {
	path := writePayment(t, `<Payment><Amount>1.00</Amount></Payment>`)
	v := NewCurrencyValidator("CurrCode", nil)

	err := v.Validate(context.Background(), path, "840")

	var missing *apperrors.MissingCurrencyCodeTagError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "CurrCode", missing.Tag)
	assert.Equal(t, path, missing.Path)
}

func TestValidateConfiguredTag(t *testing.T) {
	path := writePayment(t, `<Payment><Currency>643</Currency></Payment>`)
	v := NewCurrencyValidator("Currency", nil)

	assert.NoError(t, v.Validate(context.Background(), path, "643"))
}

func TestValidateParseFailurePropagates(t *testing.T) {
	path := writePayment(t, `<Payment><CurrCode>840`)
	v := NewCurrencyValidator("CurrCode", nil)

	err := v.Validate(context.Background(), path, "840")
	require.Error(t, err)

	var invalid *apperrors.InvalidCurrencyCodeError
	assert.NotErrorAs(t, err, &invalid)
}

func TestValidateIsIdempotent(t *testing.T) {
	path := writePayment(t, `<Payment><CurrCode>840</CurrCode></Payment>`)
	v := NewCurrencyValidator("CurrCode", nil)

	assert.NoError(t, v.Validate(context.Background(), path, "840"))
	assert.NoError(t, v.Validate(context.Background(), path, "840"))

	err1 := v.Validate(context.Background(), path, "978")
	err2 := v.Validate(context.Background(), path, "978")
	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())
}

package beautify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btsscan/platform/models"
)

func testContext() *Context {
	accounts := []models.Account{
		{ID: "1.2.100", Name: "alice"},
		{ID: "1.2.200", Name: "bob"},
	}
	resolved := []models.Asset{
		{ID: "1.3.0", Symbol: "BTS", Precision: 5},
		{ID: "1.3.121", Symbol: "USD", Precision: 4},
		{ID: "1.3.999", Symbol: "MYSTERY", Precision: models.UnknownPrecision},
	}
	return NewContext(accounts, resolved)
}

func amountObj(units float64, assetID string) map[string]interface{} {
	return map[string]interface{}{"amount": units, "asset_id": assetID}
}

func rowsByKey(rows []models.Row) map[string]map[string]interface{} {
	out := make(map[string]map[string]interface{})
	for _, r := range rows {
		out[r.Key] = r.Params
	}
	return out
}

func TestBeautifyTransfer(t *testing.T) {
	rows, err := testContext().Beautify(models.Operation{
		Type: models.OpTransfer,
		Payload: map[string]interface{}{
			"from":   "1.2.100",
			"to":     "1.2.200",
			"amount": amountObj(100000, "1.3.0"),
			"fee":    amountObj(20, "1.3.0"),
		},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "from", rows[0].Key)
	assert.Equal(t, "alice", rows[0].Params["from"])
	assert.Equal(t, "to", rows[1].Key)
	assert.Equal(t, "bob", rows[1].Params["to"])
	assert.Equal(t, "amount", rows[2].Key)
	assert.Equal(t, "1.00000 BTS", rows[2].Params["amount"])
	assert.Equal(t, "fee", rows[3].Key)
	assert.Equal(t, "0.00020 BTS", rows[3].Params["fee"])
}

func TestBeautifyTransferLegacyAmountAlias(t *testing.T) {
	rows, err := testContext().Beautify(models.Operation{
		Type: models.OpTransfer,
		Payload: map[string]interface{}{
			"from":    "1.2.100",
			"to":      "1.2.200",
			"amount_": amountObj(250000, "1.3.0"),
		},
	})
	require.NoError(t, err)

	byKey := rowsByKey(rows)
	assert.Equal(t, "2.50000 BTS", byKey["amount"]["amount"])
}

func TestBeautifyMissingAccountReference(t *testing.T) {
	_, err := testContext().Beautify(models.Operation{
		Type: models.OpTransfer,
		Payload: map[string]interface{}{
			"from":   "1.2.100",
			"to":     "1.2.987654",
			"amount": amountObj(1, "1.3.0"),
		},
	})
	assert.ErrorIs(t, err, ErrMissingReference)
}

func TestBeautifyMissingAssetReference(t *testing.T) {
	_, err := testContext().Beautify(models.Operation{
		Type: models.OpTransfer,
		Payload: map[string]interface{}{
			"from":   "1.2.100",
			"to":     "1.2.200",
			"amount": amountObj(1, "1.3.55555"),
		},
	})
	assert.ErrorIs(t, err, ErrMissingReference)
}

func TestBeautifyUnknownPrecisionFallsBackToBaseUnits(t *testing.T) {
	rows, err := testContext().Beautify(models.Operation{
		Type: models.OpTransfer,
		Payload: map[string]interface{}{
			"from":   "1.2.100",
			"to":     "1.2.200",
			"amount": amountObj(777, "1.3.999"),
		},
	})
	require.NoError(t, err)

	byKey := rowsByKey(rows)
	assert.Equal(t, "777sat of MYSTERY", byKey["amount"]["amount"])
}

func TestBeautifyUnknownOperation(t *testing.T) {
	_, err := testContext().Beautify(models.Operation{
		Type:    models.OpCustom,
		Payload: map[string]interface{}{},
	})
	assert.ErrorIs(t, err, ErrUnknownOperation)

	_, err = testContext().Beautify(models.Operation{
		Type:    models.OpType(9999),
		Payload: map[string]interface{}{},
	})
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestBeautifyLimitOrderCreatePriceConvention(t *testing.T) {
	rows, err := testContext().Beautify(models.Operation{
		Type: models.OpLimitOrderCreate,
		Payload: map[string]interface{}{
			"seller":         "1.2.100",
			"amount_to_sell": amountObj(1000000, "1.3.0"),
			"min_to_receive": amountObj(5000, "1.3.121"),
			"fill_or_kill":   true,
		},
	})
	require.NoError(t, err)

	byKey := rowsByKey(rows)
	assert.Equal(t, "alice", byKey["seller"]["seller"])
	assert.Equal(t, "10.00000 BTS", byKey["sell"]["sell"])
	assert.Equal(t, "0.5000 USD", byKey["receive"]["receive"])
	// Price is sell over receive at the sell asset's precision.
	assert.Equal(t, "20.00000", byKey["price"]["price"])
	assert.Equal(t, "BTS", byKey["price"]["base"])
	assert.Equal(t, "USD", byKey["price"]["quote"])
	assert.Equal(t, true, byKey["fill_or_kill"]["fill_or_kill"])
}

func TestBeautifyAssetCreateFlags(t *testing.T) {
	rows, err := testContext().Beautify(models.Operation{
		Type: models.OpAssetCreate,
		Payload: map[string]interface{}{
			"issuer":    "1.2.100",
			"symbol":    "ALICECOIN",
			"precision": float64(4),
			"common_options": map[string]interface{}{
				"max_supply":         "1000000000",
				"market_fee_percent": float64(30),
				"flags":              float64(0x01 | 0x02),
			},
		},
	})
	require.NoError(t, err)

	byKey := rowsByKey(rows)
	assert.Equal(t, "ALICECOIN", byKey["symbol"]["symbol"])
	assert.Equal(t, int64(4), byKey["precision"]["precision"])
	assert.Equal(t, "100000.0000 ALICECOIN", byKey["max_supply"]["max_supply"])
	assert.Equal(t, 0.3, byKey["market_fee"]["percent"])

	// UIA without bitasset_opts decodes only the reduced flag set.
	flags := byKey["flags"]
	assert.Equal(t, true, flags["charge_market_fee"])
	assert.Equal(t, true, flags["white_list"])
	assert.Equal(t, false, flags["transfer_restricted"])
	_, present := flags["witness_fed_asset"]
	assert.False(t, present)

	permissions := byKey["permissions"]
	assert.Len(t, permissions, 5)
	assert.Equal(t, true, permissions["override_authority"])
}

func TestBeautifyPayloadIntegerCoercion(t *testing.T) {
	// Amount units may arrive as float64, string, or integer depending on the
	// decoder that produced the payload.
	for name, units := range map[string]interface{}{
		"float":  float64(100000),
		"string": "100000",
		"int":    int64(100000),
	} {
		t.Run(name, func(t *testing.T) {
			rows, err := testContext().Beautify(models.Operation{
				Type: models.OpTransfer,
				Payload: map[string]interface{}{
					"from": "1.2.100",
					"to":   "1.2.200",
					"amount": map[string]interface{}{
						"amount":   units,
						"asset_id": "1.3.0",
					},
				},
			})
			require.NoError(t, err)
			byKey := rowsByKey(rows)
			assert.Equal(t, "1.00000 BTS", byKey["amount"]["amount"])
		})
	}
}

func TestBeautifyIsDeterministic(t *testing.T) {
	payload := map[string]interface{}{
		"from":   "1.2.100",
		"to":     "1.2.200",
		"amount": amountObj(100000, "1.3.0"),
		"fee":    amountObj(20, "1.3.0"),
	}
	op := models.Operation{Type: models.OpTransfer, Payload: payload}

	first, err := testContext().Beautify(op)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := testContext().Beautify(op)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBeautifyMissingRequiredField(t *testing.T) {
	_, err := testContext().Beautify(models.Operation{
		Type: models.OpTransfer,
		Payload: map[string]interface{}{
			"from": "1.2.100",
			"to":   "1.2.200",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestBeautifyEveryRegisteredHandlerHasKnownType(t *testing.T) {
	for opType := range handlers {
		assert.True(t, opType.Known(), "handler registered for unknown op id %d", opType)
	}
	// The opaque payload types stay unregistered.
	_, hasCustom := handlers[models.OpCustom]
	_, hasAssert := handlers[models.OpAssert]
	assert.False(t, hasCustom)
	assert.False(t, hasAssert)
}

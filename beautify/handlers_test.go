package beautify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btsscan/platform/models"
)

func beautifyOp(t *testing.T, typeID models.OpType, payload map[string]interface{}) map[string]map[string]interface{} {
	t.Helper()
	rows, err := testContext().Beautify(models.Operation{Type: typeID, Payload: payload})
	require.NoError(t, err)
	return rowsByKey(rows)
}

func TestBeautifyAccountWhitelist(t *testing.T) {
	byKey := beautifyOp(t, models.OpAccountWhitelist, map[string]interface{}{
		"authorizing_account": "1.2.100",
		"account_to_list":     "1.2.200",
		"new_listing":         float64(1),
	})

	assert.Equal(t, "alice", byKey["account"]["account"])
	assert.Equal(t, "bob", byKey["listed"]["listed"])
	assert.Equal(t, "white_listed", byKey["listing"]["listing"])
}

func TestBeautifyCallOrderUpdate(t *testing.T) {
	byKey := beautifyOp(t, models.OpCallOrderUpdate, map[string]interface{}{
		"funding_account":  "1.2.100",
		"delta_collateral": amountObj(500000, "1.3.0"),
		"delta_debt":       amountObj(10000, "1.3.121"),
	})

	assert.Equal(t, "alice", byKey["account"]["account"])
	assert.Equal(t, "5.00000 BTS", byKey["collateral"]["collateral"])
	assert.Equal(t, "1.0000 USD", byKey["debt"]["debt"])
}

func TestBeautifyFillOrder(t *testing.T) {
	byKey := beautifyOp(t, models.OpFillOrder, map[string]interface{}{
		"account_id": "1.2.200",
		"pays":       amountObj(100000, "1.3.0"),
		"receives":   amountObj(5000, "1.3.121"),
		"is_maker":   true,
	})

	assert.Equal(t, "bob", byKey["account"]["account"])
	assert.Equal(t, "1.00000 BTS", byKey["pays"]["pays"])
	assert.Equal(t, "0.5000 USD", byKey["receives"]["receives"])
	assert.Equal(t, true, byKey["is_maker"]["is_maker"])
}

func TestBeautifyAssetIssue(t *testing.T) {
	byKey := beautifyOp(t, models.OpAssetIssue, map[string]interface{}{
		"issuer":           "1.2.100",
		"asset_to_issue":   amountObj(50000, "1.3.121"),
		"issue_to_account": "1.2.200",
	})

	assert.Equal(t, "alice", byKey["issuer"]["issuer"])
	assert.Equal(t, "bob", byKey["to"]["to"])
	assert.Equal(t, "5.0000 USD", byKey["amount"]["amount"])
}

func TestBeautifyAssetFundFeePoolUsesCoreAsset(t *testing.T) {
	byKey := beautifyOp(t, models.OpAssetFundFeePool, map[string]interface{}{
		"from_account": "1.2.100",
		"asset_id":     "1.3.121",
		"amount":       float64(200000),
	})

	assert.Equal(t, "alice", byKey["from"]["from"])
	assert.Equal(t, "USD", byKey["asset"]["asset"])
	// The bare integer amount is denominated in the core asset.
	assert.Equal(t, "2.00000 BTS", byKey["amount"]["amount"])
}

func TestBeautifyAssetPublishFeed(t *testing.T) {
	byKey := beautifyOp(t, models.OpAssetPublishFeed, map[string]interface{}{
		"publisher": "1.2.100",
		"asset_id":  "1.3.121",
		"feed": map[string]interface{}{
			"settlement_price": map[string]interface{}{
				"base":  amountObj(860, "1.3.121"),
				"quote": amountObj(100000, "1.3.0"),
			},
		},
	})

	assert.Equal(t, "alice", byKey["publisher"]["publisher"])
	assert.Equal(t, "USD", byKey["asset"]["asset"])
	assert.Equal(t, "0.0860", byKey["price"]["price"])
}

func TestBeautifyProposalCreate(t *testing.T) {
	byKey := beautifyOp(t, models.OpProposalCreate, map[string]interface{}{
		"fee_paying_account": "1.2.100",
		"expiration_time":    "2026-09-01T00:00:00",
		"proposed_ops": []interface{}{
			map[string]interface{}{"op": []interface{}{float64(0), map[string]interface{}{}}},
			map[string]interface{}{"op": []interface{}{float64(14), map[string]interface{}{}}},
			map[string]interface{}{"bad": "entry"},
		},
	})

	assert.Equal(t, "alice", byKey["account"]["account"])
	assert.Equal(t, "2026-09-01T00:00:00", byKey["expiration"]["expiration"])
	assert.Equal(t, 3, byKey["operations"]["count"])
	assert.Equal(t, "transfer, asset_issue, unknown", byKey["operations"]["types"])
}

func TestBeautifyProposalUpdateApprovalCounts(t *testing.T) {
	byKey := beautifyOp(t, models.OpProposalUpdate, map[string]interface{}{
		"fee_paying_account":         "1.2.100",
		"proposal":                   "1.10.42",
		"active_approvals_to_add":    []interface{}{"1.2.100", "1.2.200"},
		"key_approvals_to_add":       []interface{}{"BTS6ke"},
		"active_approvals_to_remove": []interface{}{"1.2.300"},
	})

	assert.Equal(t, "1.10.42", byKey["proposal"]["proposal"])
	assert.Equal(t, 3, byKey["approvals_added"]["count"])
	assert.Equal(t, 1, byKey["approvals_removed"]["count"])
}

func TestBeautifyVestingBalanceWithdraw(t *testing.T) {
	byKey := beautifyOp(t, models.OpVestingBalanceWithdraw, map[string]interface{}{
		"owner":           "1.2.100",
		"vesting_balance": "1.13.7",
		"amount_":         amountObj(300000, "1.3.0"),
	})

	assert.Equal(t, "alice", byKey["owner"]["owner"])
	assert.Equal(t, "1.13.7", byKey["balance"]["balance"])
	assert.Equal(t, "3.00000 BTS", byKey["amount"]["amount"])
}

func TestBeautifyWorkerCreate(t *testing.T) {
	byKey := beautifyOp(t, models.OpWorkerCreate, map[string]interface{}{
		"owner":     "1.2.100",
		"name":      "refund-worker",
		"daily_pay": float64(100000000),
		"url":       "https://example.org/worker",
	})

	assert.Equal(t, "alice", byKey["owner"]["owner"])
	assert.Equal(t, "refund-worker", byKey["name"]["name"])
	assert.Equal(t, "1000.00000 BTS", byKey["daily_pay"]["daily_pay"])
}

func TestBeautifyHtlcCreate(t *testing.T) {
	byKey := beautifyOp(t, models.OpHTLCCreate, map[string]interface{}{
		"from":   "1.2.100",
		"to":     "1.2.200",
		"amount": amountObj(100000, "1.3.0"),
		"preimage_hash": []interface{}{
			float64(2), "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50",
		},
		"preimage_size":        float64(32),
		"claim_period_seconds": float64(86400),
	})

	assert.Equal(t, "alice", byKey["from"]["from"])
	assert.Equal(t, "bob", byKey["to"]["to"])
	assert.Equal(t, int64(32), byKey["preimage"]["size"])
	assert.Equal(t, int64(86400), byKey["claim_period"]["seconds"])
}

func TestBeautifyLiquidityPoolCreate(t *testing.T) {
	ctx := NewContext(
		[]models.Account{{ID: "1.2.100", Name: "alice"}},
		[]models.Asset{
			{ID: "1.3.0", Symbol: "BTS", Precision: 5},
			{ID: "1.3.121", Symbol: "USD", Precision: 4},
			{ID: "1.3.6000", Symbol: "LP.BTSUSD", Precision: 5},
		},
	)
	rows, err := ctx.Beautify(models.Operation{
		Type: models.OpLiquidityPoolCreate,
		Payload: map[string]interface{}{
			"account":                "1.2.100",
			"asset_a":                "1.3.0",
			"asset_b":                "1.3.121",
			"share_asset":            "1.3.6000",
			"taker_fee_percent":      float64(20),
			"withdrawal_fee_percent": float64(0),
		},
	})
	require.NoError(t, err)

	byKey := rowsByKey(rows)
	assert.Equal(t, "BTS", byKey["asset_a"]["asset_a"])
	assert.Equal(t, "USD", byKey["asset_b"]["asset_b"])
	assert.Equal(t, "LP.BTSUSD", byKey["share_asset"]["share_asset"])
	assert.Equal(t, 0.2, byKey["taker_fee"]["percent"])
	assert.Equal(t, 0.0, byKey["withdrawal_fee"]["percent"])
}

func TestBeautifyCreditOfferAccept(t *testing.T) {
	byKey := beautifyOp(t, models.OpCreditOfferAccept, map[string]interface{}{
		"borrower":      "1.2.200",
		"offer_id":      "1.21.5",
		"borrow_amount": amountObj(10000, "1.3.121"),
		"collateral":    amountObj(400000, "1.3.0"),
	})

	assert.Equal(t, "bob", byKey["borrower"]["borrower"])
	assert.Equal(t, "1.21.5", byKey["offer"]["offer"])
	assert.Equal(t, "1.0000 USD", byKey["amount"]["amount"])
	assert.Equal(t, "4.00000 BTS", byKey["collateral"]["collateral"])
}

func TestBeautifySametFundFeeRate(t *testing.T) {
	byKey := beautifyOp(t, models.OpSametFundCreate, map[string]interface{}{
		"owner_account": "1.2.100",
		"asset_type":    "1.3.0",
		"balance":       float64(10000000),
		"fee_rate":      float64(10000),
	})

	assert.Equal(t, "alice", byKey["owner"]["owner"])
	assert.Equal(t, "100.00000 BTS", byKey["balance"]["balance"])
	// fee_rate is parts per million: 10000 is 1%.
	assert.Equal(t, 1.0, byKey["fee_rate"]["percent"])
}

func TestBeautifyWithdrawPermissionClaim(t *testing.T) {
	byKey := beautifyOp(t, models.OpWithdrawPermissionClaim, map[string]interface{}{
		"withdraw_permission":   "1.12.3",
		"withdraw_from_account": "1.2.100",
		"withdraw_to_account":   "1.2.200",
		"amount_to_withdraw":    amountObj(50000, "1.3.0"),
	})

	assert.Equal(t, "1.12.3", byKey["permission"]["permission"])
	assert.Equal(t, "alice", byKey["from"]["from"])
	assert.Equal(t, "bob", byKey["to"]["to"])
	assert.Equal(t, "0.50000 BTS", byKey["amount"]["amount"])
}

func TestBeautifyTicketCreateTargets(t *testing.T) {
	for target, label := range map[float64]string{
		0: "liquid",
		1: "lock_180_days",
		4: "lock_forever",
	} {
		byKey := beautifyOp(t, models.OpTicketCreate, map[string]interface{}{
			"account":     "1.2.100",
			"target_type": target,
			"amount":      amountObj(100000, "1.3.0"),
		})
		assert.Equal(t, label, byKey["target"]["target"])
	}
}

func TestBeautifyLimitOrderUpdateOptionalFields(t *testing.T) {
	byKey := beautifyOp(t, models.OpLimitOrderUpdate, map[string]interface{}{
		"seller": "1.2.100",
		"order":  "1.7.42",
		"new_price": map[string]interface{}{
			"base":  amountObj(1000000, "1.3.0"),
			"quote": amountObj(5000, "1.3.121"),
		},
		"delta_amount_to_sell": amountObj(100000, "1.3.0"),
		"new_expiration":       "2026-12-31T00:00:00",
	})

	assert.Equal(t, "alice", byKey["seller"]["seller"])
	assert.Equal(t, "1.7.42", byKey["order"]["order"])
	assert.Equal(t, "20.00000", byKey["price"]["price"])
	assert.Equal(t, "1.00000 BTS", byKey["delta"]["delta"])
	assert.Equal(t, "2026-12-31T00:00:00", byKey["expiration"]["expiration"])
}

func TestBeautifyBlindTransferCounts(t *testing.T) {
	byKey := beautifyOp(t, models.OpBlindTransfer, map[string]interface{}{
		"inputs":  []interface{}{map[string]interface{}{}, map[string]interface{}{}},
		"outputs": []interface{}{map[string]interface{}{}},
	})

	assert.Equal(t, 2, byKey["blind_transfer"]["inputs"])
	assert.Equal(t, 1, byKey["blind_transfer"]["outputs"])
}

// Package scanner walks operation payloads and collects every account and
// asset reference they embed, so the resolver can fetch all of them in one
// deduplicated pass.
package scanner

import (
	"sort"
	"strings"

	"github.com/btsscan/platform/models"
)

// accountPaths lists every payload field known to carry an account id across
// the operation schemas. Scalar fields only: authority maps (owner/active key
// sets) are not account references.
var accountPaths = []string{
	"account",
	"account_id",
	"account_to_list",
	"account_to_transfer",
	"account_to_upgrade",
	"authorized_account",
	"authorizing_account",
	"bidder",
	"borrower",
	"committee_member_account",
	"creator",
	"deposit_to_account",
	"fee_paying_account",
	"from",
	"from_account",
	"funding_account",
	"issue_to_account",
	"issuer",
	"lifetime_referrer",
	"new_issuer",
	"new_owner",
	"offer_owner",
	"owner",
	"owner_account",
	"payer",
	"publisher",
	"redeemer",
	"referrer",
	"registrar",
	"seller",
	"to",
	"to_account",
	"update_issuer",
	"withdraw_from_account",
	"withdraw_to_account",
	"witness_account",
}

// assetPaths lists every payload path known to carry an asset id. Dotted
// entries resolve through nested objects (asset-amount pairs, price structs).
var assetPaths = []string{
	"additional_collateral.asset_id",
	"amount.asset_id",
	"amount_.asset_id",
	"amount_a.asset_id",
	"amount_b.asset_id",
	"amount_for_new_target.asset_id",
	"amount_to_claim.asset_id",
	"amount_to_reserve.asset_id",
	"amount_to_sell.asset_id",
	"amount_to_withdraw.asset_id",
	"asset_a",
	"asset_b",
	"asset_id",
	"asset_to_issue.asset_id",
	"asset_to_settle",
	"asset_to_update",
	"asset_type",
	"borrow_amount.asset_id",
	"collateral.asset_id",
	"credit_fee.asset_id",
	"debt.asset_id",
	"debt_covered.asset_id",
	"delta_amount.asset_id",
	"delta_amount_to_sell.asset_id",
	"delta_collateral.asset_id",
	"delta_debt.asset_id",
	"fee.asset_id",
	"feed.settlement_price.base.asset_id",
	"feed.settlement_price.quote.asset_id",
	"fund_fee.asset_id",
	"min_to_receive.asset_id",
	"new_options.short_backing_asset",
	"new_price.base.asset_id",
	"new_price.quote.asset_id",
	"pays.asset_id",
	"receives.asset_id",
	"repay_amount.asset_id",
	"sell_price.base.asset_id",
	"sell_price.quote.asset_id",
	"settle_price.base.asset_id",
	"settle_price.quote.asset_id",
	"share_amount.asset_id",
	"share_asset",
	"total_claimed.asset_id",
	"unpaid_amount.asset_id",
	"withdrawal_limit.asset_id",
}

// References holds the distinct ids found across a transaction. Each id
// appears once regardless of how many operations mention it.
type References struct {
	AccountIDs []string
	AssetIDs   []string
}

// Scan collects account and asset references from every operation. Pure
// function: no I/O, inputs untouched.
func Scan(ops []models.Operation) References {
	accounts := make(map[string]struct{})
	assetIDs := make(map[string]struct{})

	for _, op := range ops {
		if op.Payload == nil {
			continue
		}
		for _, path := range accountPaths {
			if id, ok := lookupPath(op.Payload, path); ok {
				accounts[id] = struct{}{}
			}
		}
		for _, path := range assetPaths {
			if id, ok := lookupPath(op.Payload, path); ok {
				assetIDs[id] = struct{}{}
			}
		}
	}

	return References{
		AccountIDs: sortedKeys(accounts),
		AssetIDs:   sortedKeys(assetIDs),
	}
}

// lookupPath resolves a dotted path against a payload. Any missing or
// non-object intermediate short-circuits to not-found; only non-empty string
// leaves count as references.
func lookupPath(payload map[string]interface{}, path string) (string, bool) {
	current := payload
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		value, ok := current[seg]
		if !ok || value == nil {
			return "", false
		}
		if i == len(segments)-1 {
			s, ok := value.(string)
			if !ok || s == "" {
				return "", false
			}
			return s, true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

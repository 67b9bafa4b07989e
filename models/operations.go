package models

// OpType identifies an operation within a Bitshares transaction. The numeric
// values are the protocol's operation ids and must not be reordered.
type OpType int

const (
	OpTransfer                    OpType = 0
	OpLimitOrderCreate            OpType = 1
	OpLimitOrderCancel            OpType = 2
	OpCallOrderUpdate             OpType = 3
	OpFillOrder                   OpType = 4 // virtual
	OpAccountCreate               OpType = 5
	OpAccountUpdate               OpType = 6
	OpAccountWhitelist            OpType = 7
	OpAccountUpgrade              OpType = 8
	OpAccountTransfer             OpType = 9
	OpAssetCreate                 OpType = 10
	OpAssetUpdate                 OpType = 11
	OpAssetUpdateBitasset         OpType = 12
	OpAssetUpdateFeedProducers    OpType = 13
	OpAssetIssue                  OpType = 14
	OpAssetReserve                OpType = 15
	OpAssetFundFeePool            OpType = 16
	OpAssetSettle                 OpType = 17
	OpAssetGlobalSettle           OpType = 18
	OpAssetPublishFeed            OpType = 19
	OpWitnessCreate               OpType = 20
	OpWitnessUpdate               OpType = 21
	OpProposalCreate              OpType = 22
	OpProposalUpdate              OpType = 23
	OpProposalDelete              OpType = 24
	OpWithdrawPermissionCreate    OpType = 25
	OpWithdrawPermissionUpdate    OpType = 26
	OpWithdrawPermissionClaim     OpType = 27
	OpWithdrawPermissionDelete    OpType = 28
	OpCommitteeMemberCreate       OpType = 29
	OpCommitteeMemberUpdate       OpType = 30
	OpCommitteeMemberUpdateGlobal OpType = 31
	OpVestingBalanceCreate        OpType = 32
	OpVestingBalanceWithdraw      OpType = 33
	OpWorkerCreate                OpType = 34
	OpCustom                      OpType = 35
	OpAssert                      OpType = 36
	OpBalanceClaim                OpType = 37
	OpOverrideTransfer            OpType = 38
	OpTransferToBlind             OpType = 39
	OpBlindTransfer               OpType = 40
	OpTransferFromBlind           OpType = 41
	OpAssetSettleCancel           OpType = 42 // virtual
	OpAssetClaimFees              OpType = 43
	OpFBADistribute               OpType = 44 // virtual
	OpBidCollateral               OpType = 45
	OpExecuteBid                  OpType = 46 // virtual
	OpAssetClaimPool              OpType = 47
	OpAssetUpdateIssuer           OpType = 48
	OpHTLCCreate                  OpType = 49
	OpHTLCRedeem                  OpType = 50
	OpHTLCRedeemed                OpType = 51 // virtual
	OpHTLCExtend                  OpType = 52
	OpHTLCRefund                  OpType = 53 // virtual
	OpCustomAuthorityCreate       OpType = 54
	OpCustomAuthorityUpdate       OpType = 55
	OpCustomAuthorityDelete       OpType = 56
	OpTicketCreate                OpType = 57
	OpTicketUpdate                OpType = 58
	OpLiquidityPoolCreate         OpType = 59
	OpLiquidityPoolDelete         OpType = 60
	OpLiquidityPoolDeposit        OpType = 61
	OpLiquidityPoolWithdraw       OpType = 62
	OpLiquidityPoolExchange       OpType = 63
	OpSametFundCreate             OpType = 64
	OpSametFundDelete             OpType = 65
	OpSametFundUpdate             OpType = 66
	OpSametFundBorrow             OpType = 67
	OpSametFundRepay              OpType = 68
	OpCreditOfferCreate           OpType = 69
	OpCreditOfferDelete           OpType = 70
	OpCreditOfferUpdate           OpType = 71
	OpCreditOfferAccept           OpType = 72
	OpCreditDealRepay             OpType = 73
	OpCreditDealExpired           OpType = 74 // virtual
	OpLiquidityPoolUpdate         OpType = 75
	OpCreditDealUpdate            OpType = 76
	OpLimitOrderUpdate            OpType = 77
)

var opNames = map[OpType]string{
	OpTransfer:                    "transfer",
	OpLimitOrderCreate:            "limit_order_create",
	OpLimitOrderCancel:            "limit_order_cancel",
	OpCallOrderUpdate:             "call_order_update",
	OpFillOrder:                   "fill_order",
	OpAccountCreate:               "account_create",
	OpAccountUpdate:               "account_update",
	OpAccountWhitelist:            "account_whitelist",
	OpAccountUpgrade:              "account_upgrade",
	OpAccountTransfer:             "account_transfer",
	OpAssetCreate:                 "asset_create",
	OpAssetUpdate:                 "asset_update",
	OpAssetUpdateBitasset:         "asset_update_bitasset",
	OpAssetUpdateFeedProducers:    "asset_update_feed_producers",
	OpAssetIssue:                  "asset_issue",
	OpAssetReserve:                "asset_reserve",
	OpAssetFundFeePool:            "asset_fund_fee_pool",
	OpAssetSettle:                 "asset_settle",
	OpAssetGlobalSettle:           "asset_global_settle",
	OpAssetPublishFeed:            "asset_publish_feed",
	OpWitnessCreate:               "witness_create",
	OpWitnessUpdate:               "witness_update",
	OpProposalCreate:              "proposal_create",
	OpProposalUpdate:              "proposal_update",
	OpProposalDelete:              "proposal_delete",
	OpWithdrawPermissionCreate:    "withdraw_permission_create",
	OpWithdrawPermissionUpdate:    "withdraw_permission_update",
	OpWithdrawPermissionClaim:     "withdraw_permission_claim",
	OpWithdrawPermissionDelete:    "withdraw_permission_delete",
	OpCommitteeMemberCreate:       "committee_member_create",
	OpCommitteeMemberUpdate:       "committee_member_update",
	OpCommitteeMemberUpdateGlobal: "committee_member_update_global_parameters",
	OpVestingBalanceCreate:        "vesting_balance_create",
	OpVestingBalanceWithdraw:      "vesting_balance_withdraw",
	OpWorkerCreate:                "worker_create",
	OpCustom:                      "custom",
	OpAssert:                      "assert",
	OpBalanceClaim:                "balance_claim",
	OpOverrideTransfer:            "override_transfer",
	OpTransferToBlind:             "transfer_to_blind",
	OpBlindTransfer:               "blind_transfer",
	OpTransferFromBlind:           "transfer_from_blind",
	OpAssetSettleCancel:           "asset_settle_cancel",
	OpAssetClaimFees:              "asset_claim_fees",
	OpFBADistribute:               "fba_distribute",
	OpBidCollateral:               "bid_collateral",
	OpExecuteBid:                  "execute_bid",
	OpAssetClaimPool:              "asset_claim_pool",
	OpAssetUpdateIssuer:           "asset_update_issuer",
	OpHTLCCreate:                  "htlc_create",
	OpHTLCRedeem:                  "htlc_redeem",
	OpHTLCRedeemed:                "htlc_redeemed",
	OpHTLCExtend:                  "htlc_extend",
	OpHTLCRefund:                  "htlc_refund",
	OpCustomAuthorityCreate:       "custom_authority_create",
	OpCustomAuthorityUpdate:       "custom_authority_update",
	OpCustomAuthorityDelete:       "custom_authority_delete",
	OpTicketCreate:                "ticket_create",
	OpTicketUpdate:                "ticket_update",
	OpLiquidityPoolCreate:         "liquidity_pool_create",
	OpLiquidityPoolDelete:         "liquidity_pool_delete",
	OpLiquidityPoolDeposit:        "liquidity_pool_deposit",
	OpLiquidityPoolWithdraw:       "liquidity_pool_withdraw",
	OpLiquidityPoolExchange:       "liquidity_pool_exchange",
	OpSametFundCreate:             "samet_fund_create",
	OpSametFundDelete:             "samet_fund_delete",
	OpSametFundUpdate:             "samet_fund_update",
	OpSametFundBorrow:             "samet_fund_borrow",
	OpSametFundRepay:              "samet_fund_repay",
	OpCreditOfferCreate:           "credit_offer_create",
	OpCreditOfferDelete:           "credit_offer_delete",
	OpCreditOfferUpdate:           "credit_offer_update",
	OpCreditOfferAccept:           "credit_offer_accept",
	OpCreditDealRepay:             "credit_deal_repay",
	OpCreditDealExpired:           "credit_deal_expired",
	OpLiquidityPoolUpdate:         "liquidity_pool_update",
	OpCreditDealUpdate:            "credit_deal_update",
	OpLimitOrderUpdate:            "limit_order_update",
}

var opTypesByName = func() map[string]OpType {
	m := make(map[string]OpType, len(opNames))
	for t, name := range opNames {
		m[name] = t
	}
	return m
}()

// Name returns the protocol name of the operation type, or "" for ids the
// protocol does not define.
func (t OpType) Name() string {
	return opNames[t]
}

func (t OpType) Known() bool {
	_, ok := opNames[t]
	return ok
}

// OpTypeByName resolves a protocol operation name back to its id.
func OpTypeByName(name string) (OpType, bool) {
	t, ok := opTypesByName[name]
	return t, ok
}

// Operation is one typed action within a transaction. Payload keeps the
// schema-specific fields untyped since every operation id carries a different
// record shape.
type Operation struct {
	Type    OpType
	Payload map[string]interface{}
}

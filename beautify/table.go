package beautify

import (
	"github.com/btsscan/platform/models"
)

type handler func(*Context, fields) ([]models.Row, error)

// handlers maps operation ids to their renderers. Ids 35 (custom) and 36
// (assert) carry opaque payloads and have no renderer.
var handlers = map[models.OpType]handler{
	models.OpTransfer:                    beautifyTransfer,
	models.OpLimitOrderCreate:            beautifyLimitOrderCreate,
	models.OpLimitOrderCancel:            beautifyLimitOrderCancel,
	models.OpCallOrderUpdate:             beautifyCallOrderUpdate,
	models.OpFillOrder:                   beautifyFillOrder,
	models.OpAccountCreate:               beautifyAccountCreate,
	models.OpAccountUpdate:               beautifyAccountUpdate,
	models.OpAccountWhitelist:            beautifyAccountWhitelist,
	models.OpAccountUpgrade:              beautifyAccountUpgrade,
	models.OpAccountTransfer:             beautifyAccountTransfer,
	models.OpAssetCreate:                 beautifyAssetCreate,
	models.OpAssetUpdate:                 beautifyAssetUpdate,
	models.OpAssetUpdateBitasset:         beautifyAssetUpdateBitasset,
	models.OpAssetUpdateFeedProducers:    beautifyAssetUpdateFeedProducers,
	models.OpAssetIssue:                  beautifyAssetIssue,
	models.OpAssetReserve:                beautifyAssetReserve,
	models.OpAssetFundFeePool:            beautifyAssetFundFeePool,
	models.OpAssetSettle:                 beautifyAssetSettle,
	models.OpAssetGlobalSettle:           beautifyAssetGlobalSettle,
	models.OpAssetPublishFeed:            beautifyAssetPublishFeed,
	models.OpWitnessCreate:               beautifyWitnessCreate,
	models.OpWitnessUpdate:               beautifyWitnessUpdate,
	models.OpProposalCreate:              beautifyProposalCreate,
	models.OpProposalUpdate:              beautifyProposalUpdate,
	models.OpProposalDelete:              beautifyProposalDelete,
	models.OpWithdrawPermissionCreate:    beautifyWithdrawPermissionCreate,
	models.OpWithdrawPermissionUpdate:    beautifyWithdrawPermissionUpdate,
	models.OpWithdrawPermissionClaim:     beautifyWithdrawPermissionClaim,
	models.OpWithdrawPermissionDelete:    beautifyWithdrawPermissionDelete,
	models.OpCommitteeMemberCreate:       beautifyCommitteeMemberCreate,
	models.OpCommitteeMemberUpdate:       beautifyCommitteeMemberUpdate,
	models.OpCommitteeMemberUpdateGlobal: beautifyCommitteeMemberUpdateGlobalParameters,
	models.OpVestingBalanceCreate:        beautifyVestingBalanceCreate,
	models.OpVestingBalanceWithdraw:      beautifyVestingBalanceWithdraw,
	models.OpWorkerCreate:                beautifyWorkerCreate,
	models.OpBalanceClaim:                beautifyBalanceClaim,
	models.OpOverrideTransfer:            beautifyOverrideTransfer,
	models.OpTransferToBlind:             beautifyTransferToBlind,
	models.OpBlindTransfer:               beautifyBlindTransfer,
	models.OpTransferFromBlind:           beautifyTransferFromBlind,
	models.OpAssetSettleCancel:           beautifyAssetSettleCancel,
	models.OpAssetClaimFees:              beautifyAssetClaimFees,
	models.OpFBADistribute:               beautifyFbaDistribute,
	models.OpBidCollateral:               beautifyBidCollateral,
	models.OpExecuteBid:                  beautifyExecuteBid,
	models.OpAssetClaimPool:              beautifyAssetClaimPool,
	models.OpAssetUpdateIssuer:           beautifyAssetUpdateIssuer,
	models.OpHTLCCreate:                  beautifyHtlcCreate,
	models.OpHTLCRedeem:                  beautifyHtlcRedeem,
	models.OpHTLCRedeemed:                beautifyHtlcRedeemed,
	models.OpHTLCExtend:                  beautifyHtlcExtend,
	models.OpHTLCRefund:                  beautifyHtlcRefund,
	models.OpCustomAuthorityCreate:       beautifyCustomAuthorityCreate,
	models.OpCustomAuthorityUpdate:       beautifyCustomAuthorityUpdate,
	models.OpCustomAuthorityDelete:       beautifyCustomAuthorityDelete,
	models.OpTicketCreate:                beautifyTicketCreate,
	models.OpTicketUpdate:                beautifyTicketUpdate,
	models.OpLiquidityPoolCreate:         beautifyLiquidityPoolCreate,
	models.OpLiquidityPoolDelete:         beautifyLiquidityPoolDelete,
	models.OpLiquidityPoolDeposit:        beautifyLiquidityPoolDeposit,
	models.OpLiquidityPoolWithdraw:       beautifyLiquidityPoolWithdraw,
	models.OpLiquidityPoolExchange:       beautifyLiquidityPoolExchange,
	models.OpSametFundCreate:             beautifySametFundCreate,
	models.OpSametFundDelete:             beautifySametFundDelete,
	models.OpSametFundUpdate:             beautifySametFundUpdate,
	models.OpSametFundBorrow:             beautifySametFundBorrow,
	models.OpSametFundRepay:              beautifySametFundRepay,
	models.OpCreditOfferCreate:           beautifyCreditOfferCreate,
	models.OpCreditOfferDelete:           beautifyCreditOfferDelete,
	models.OpCreditOfferUpdate:           beautifyCreditOfferUpdate,
	models.OpCreditOfferAccept:           beautifyCreditOfferAccept,
	models.OpCreditDealRepay:             beautifyCreditDealRepay,
	models.OpCreditDealExpired:           beautifyCreditDealExpired,
	models.OpCreditDealUpdate:            beautifyCreditDealUpdate,
	models.OpLiquidityPoolUpdate:         beautifyLiquidityPoolUpdate,
	models.OpLimitOrderUpdate:            beautifyLimitOrderUpdate,
}

package beautify

import (
	"github.com/btsscan/platform/models"
)

func beautifyWithdrawPermissionCreate(c *Context, p fields) ([]models.Row, error) {
	from, err := c.nameField(p, "withdraw_permission_create", "withdraw_from_account")
	if err != nil {
		return nil, err
	}
	authorized, err := c.nameField(p, "withdraw_permission_create", "authorized_account")
	if err != nil {
		return nil, err
	}
	limit, err := c.amountField(p, "withdraw_permission_create", "withdrawal_limit")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("from", params{"from": from}),
		row("authorized", params{"authorized": authorized}),
		row("limit", params{"limit": limit}),
	}
	if period, ok := p.integer("withdrawal_period_sec"); ok {
		rows = append(rows, row("period", params{"seconds": period}))
	}
	if start, ok := p.str("period_start_time"); ok {
		rows = append(rows, row("start", params{"start": start}))
	}
	return rows, nil
}

func beautifyWithdrawPermissionUpdate(c *Context, p fields) ([]models.Row, error) {
	from, err := c.nameField(p, "withdraw_permission_update", "withdraw_from_account")
	if err != nil {
		return nil, err
	}
	authorized, err := c.nameField(p, "withdraw_permission_update", "authorized_account")
	if err != nil {
		return nil, err
	}
	permission, ok := p.str("permission_to_update")
	if !ok {
		return nil, missingField("withdraw_permission_update", "permission_to_update")
	}
	limit, err := c.amountField(p, "withdraw_permission_update", "withdrawal_limit")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("from", params{"from": from}),
		row("authorized", params{"authorized": authorized}),
		row("permission", params{"permission": permission}),
		row("limit", params{"limit": limit}),
	}
	if period, ok := p.integer("withdrawal_period_sec"); ok {
		rows = append(rows, row("period", params{"seconds": period}))
	}
	return rows, nil
}

func beautifyWithdrawPermissionClaim(c *Context, p fields) ([]models.Row, error) {
	permission, ok := p.str("withdraw_permission")
	if !ok {
		return nil, missingField("withdraw_permission_claim", "withdraw_permission")
	}
	from, err := c.nameField(p, "withdraw_permission_claim", "withdraw_from_account")
	if err != nil {
		return nil, err
	}
	to, err := c.nameField(p, "withdraw_permission_claim", "withdraw_to_account")
	if err != nil {
		return nil, err
	}
	amount, err := c.amountField(p, "withdraw_permission_claim", "amount_to_withdraw")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("permission", params{"permission": permission}),
		row("from", params{"from": from}),
		row("to", params{"to": to}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyWithdrawPermissionDelete(c *Context, p fields) ([]models.Row, error) {
	from, err := c.nameField(p, "withdraw_permission_delete", "withdraw_from_account")
	if err != nil {
		return nil, err
	}
	authorized, err := c.nameField(p, "withdraw_permission_delete", "authorized_account")
	if err != nil {
		return nil, err
	}
	permission, ok := p.str("withdrawal_permission")
	if !ok {
		return nil, missingField("withdraw_permission_delete", "withdrawal_permission")
	}
	return []models.Row{
		row("from", params{"from": from}),
		row("authorized", params{"authorized": authorized}),
		row("permission", params{"permission": permission}),
	}, nil
}

func beautifyVestingBalanceCreate(c *Context, p fields) ([]models.Row, error) {
	creator, err := c.nameField(p, "vesting_balance_create", "creator")
	if err != nil {
		return nil, err
	}
	owner, err := c.nameField(p, "vesting_balance_create", "owner")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("vesting_balance_create", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("creator", params{"creator": creator}),
		row("owner", params{"owner": owner}),
		row("amount", params{"amount": amount}),
	}
	if policy, ok := p.list("policy"); ok && len(policy) == 2 {
		if m, ok := policy[1].(map[string]interface{}); ok {
			if secs, ok := coerceInt64(m["vesting_seconds"]); ok {
				rows = append(rows, row("vesting", params{"seconds": secs}))
			}
		}
	}
	return rows, nil
}

func beautifyVestingBalanceWithdraw(c *Context, p fields) ([]models.Row, error) {
	owner, err := c.nameField(p, "vesting_balance_withdraw", "owner")
	if err != nil {
		return nil, err
	}
	balance, ok := p.str("vesting_balance")
	if !ok {
		return nil, missingField("vesting_balance_withdraw", "vesting_balance")
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("vesting_balance_withdraw", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("owner", params{"owner": owner}),
		row("balance", params{"balance": balance}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyBalanceClaim(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "balance_claim", "deposit_to_account")
	if err != nil {
		return nil, err
	}
	balance, ok := p.str("balance_to_claim")
	if !ok {
		return nil, missingField("balance_claim", "balance_to_claim")
	}
	amt, ok := p.legacyAmount()
	if !ok {
		amt, ok = p.amount("total_claimed")
		if !ok {
			return nil, missingField("balance_claim", "total_claimed")
		}
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("balance", params{"balance": balance}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyCustomAuthorityCreate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "custom_authority_create", "account")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{row("account", params{"account": account})}
	if enabled, ok := p.boolean("enabled"); ok {
		rows = append(rows, row("enabled", params{"enabled": enabled}))
	}
	if opType, ok := p.integer("operation_type"); ok {
		rows = append(rows, row("operation", params{"operation": models.OpType(opType).Name()}))
	}
	if from, ok := p.str("valid_from"); ok {
		if to, ok := p.str("valid_to"); ok {
			rows = append(rows, row("valid", params{"from": from, "to": to}))
		}
	}
	return rows, nil
}

func beautifyCustomAuthorityUpdate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "custom_authority_update", "account")
	if err != nil {
		return nil, err
	}
	authority, ok := p.str("authority_to_update")
	if !ok {
		return nil, missingField("custom_authority_update", "authority_to_update")
	}
	rows := []models.Row{
		row("account", params{"account": account}),
		row("authority", params{"authority": authority}),
	}
	if enabled, ok := p.boolean("new_enabled"); ok {
		rows = append(rows, row("enabled", params{"enabled": enabled}))
	}
	return rows, nil
}

func beautifyCustomAuthorityDelete(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "custom_authority_delete", "account")
	if err != nil {
		return nil, err
	}
	authority, ok := p.str("authority_to_delete")
	if !ok {
		return nil, missingField("custom_authority_delete", "authority_to_delete")
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("authority", params{"authority": authority}),
	}, nil
}

var ticketTargets = map[int64]string{
	0: "liquid",
	1: "lock_180_days",
	2: "lock_360_days",
	3: "lock_720_days",
	4: "lock_forever",
}

func ticketTargetLabel(target int64) string {
	if label, ok := ticketTargets[target]; ok {
		return label
	}
	return "unknown"
}

func beautifyTicketCreate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "ticket_create", "account")
	if err != nil {
		return nil, err
	}
	target, ok := p.integer("target_type")
	if !ok {
		return nil, missingField("ticket_create", "target_type")
	}
	amount, err := c.amountField(p, "ticket_create", "amount")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("target", params{"target": ticketTargetLabel(target)}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyTicketUpdate(c *Context, p fields) ([]models.Row, error) {
	ticket, ok := p.str("ticket")
	if !ok {
		return nil, missingField("ticket_update", "ticket")
	}
	account, err := c.nameField(p, "ticket_update", "account")
	if err != nil {
		return nil, err
	}
	target, ok := p.integer("target_type")
	if !ok {
		return nil, missingField("ticket_update", "target_type")
	}
	rows := []models.Row{
		row("ticket", params{"ticket": ticket}),
		row("account", params{"account": account}),
		row("target", params{"target": ticketTargetLabel(target)}),
	}
	if amt, ok := p.amount("amount_for_new_target"); ok {
		formatted, err := c.formatAmount(amt)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row("amount", params{"amount": formatted}))
	}
	return rows, nil
}

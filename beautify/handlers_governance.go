package beautify

import (
	"strings"

	"github.com/btsscan/platform/models"
)

func beautifyWitnessCreate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "witness_create", "witness_account")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{row("account", params{"account": account})}
	if url, ok := p.str("url"); ok {
		rows = append(rows, row("url", params{"url": url}))
	}
	if key, ok := p.str("block_signing_key"); ok {
		rows = append(rows, row("signing_key", params{"signing_key": key}))
	}
	return rows, nil
}

func beautifyWitnessUpdate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "witness_update", "witness_account")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{row("account", params{"account": account})}
	if url, ok := p.str("new_url"); ok {
		rows = append(rows, row("url", params{"url": url}))
	}
	if key, ok := p.str("new_signing_key"); ok {
		rows = append(rows, row("signing_key", params{"signing_key": key}))
	}
	return rows, nil
}

// proposedOpNames lists the operation names wrapped by a proposal. Entries it
// cannot read are reported as unknown rather than failing the proposal row.
func proposedOpNames(entries []interface{}) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]interface{})
		if !ok {
			names = append(names, "unknown")
			continue
		}
		pair, ok := m["op"].([]interface{})
		if !ok || len(pair) != 2 {
			names = append(names, "unknown")
			continue
		}
		id, ok := coerceInt64(pair[0])
		if !ok {
			names = append(names, "unknown")
			continue
		}
		names = append(names, models.OpType(id).Name())
	}
	return names
}

func beautifyProposalCreate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "proposal_create", "fee_paying_account")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{row("account", params{"account": account})}
	if expiration, ok := p.str("expiration_time"); ok {
		rows = append(rows, row("expiration", params{"expiration": expiration}))
	}
	if proposed, ok := p.list("proposed_ops"); ok {
		names := proposedOpNames(proposed)
		rows = append(rows, row("operations", params{
			"count": len(names),
			"types": strings.Join(names, ", "),
		}))
	}
	if review, ok := p.integer("review_period_seconds"); ok {
		rows = append(rows, row("review_period", params{"seconds": review}))
	}
	return rows, nil
}

func beautifyProposalUpdate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "proposal_update", "fee_paying_account")
	if err != nil {
		return nil, err
	}
	proposal, ok := p.str("proposal")
	if !ok {
		return nil, missingField("proposal_update", "proposal")
	}
	added := 0
	removed := 0
	for _, key := range []string{"active_approvals_to_add", "owner_approvals_to_add", "key_approvals_to_add"} {
		if l, ok := p.list(key); ok {
			added += len(l)
		}
	}
	for _, key := range []string{"active_approvals_to_remove", "owner_approvals_to_remove", "key_approvals_to_remove"} {
		if l, ok := p.list(key); ok {
			removed += len(l)
		}
	}
	rows := []models.Row{
		row("account", params{"account": account}),
		row("proposal", params{"proposal": proposal}),
	}
	if added > 0 {
		rows = append(rows, row("approvals_added", params{"count": added}))
	}
	if removed > 0 {
		rows = append(rows, row("approvals_removed", params{"count": removed}))
	}
	return rows, nil
}

func beautifyProposalDelete(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "proposal_delete", "fee_paying_account")
	if err != nil {
		return nil, err
	}
	proposal, ok := p.str("proposal")
	if !ok {
		return nil, missingField("proposal_delete", "proposal")
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("proposal", params{"proposal": proposal}),
	}, nil
}

func beautifyCommitteeMemberCreate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "committee_member_create", "committee_member_account")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{row("account", params{"account": account})}
	if url, ok := p.str("url"); ok {
		rows = append(rows, row("url", params{"url": url}))
	}
	return rows, nil
}

func beautifyCommitteeMemberUpdate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "committee_member_update", "committee_member_account")
	if err != nil {
		return nil, err
	}
	member, ok := p.str("committee_member")
	if !ok {
		return nil, missingField("committee_member_update", "committee_member")
	}
	rows := []models.Row{
		row("account", params{"account": account}),
		row("committee_member", params{"committee_member": member}),
	}
	if url, ok := p.str("new_url"); ok {
		rows = append(rows, row("url", params{"url": url}))
	}
	return rows, nil
}

func beautifyCommitteeMemberUpdateGlobalParameters(_ *Context, p fields) ([]models.Row, error) {
	rows := []models.Row{row("global_parameters", params{"updated": true})}
	if newParams, ok := p.obj("new_parameters"); ok {
		if fees, ok := newParams.obj("current_fees"); ok {
			if schedule, ok := fees.list("parameters"); ok {
				rows = append(rows, row("fee_schedule", params{"count": len(schedule)}))
			}
		}
	}
	return rows, nil
}

func beautifyWorkerCreate(c *Context, p fields) ([]models.Row, error) {
	owner, err := c.nameField(p, "worker_create", "owner")
	if err != nil {
		return nil, err
	}
	name, ok := p.str("name")
	if !ok {
		return nil, missingField("worker_create", "name")
	}
	dailyPay, ok := p.integer("daily_pay")
	if !ok {
		return nil, missingField("worker_create", "daily_pay")
	}
	rows := []models.Row{
		row("owner", params{"owner": owner}),
		row("name", params{"name": name}),
		row("daily_pay", params{"daily_pay": c.formatCoreAmount(dailyPay)}),
	}
	if begin, ok := p.str("work_begin_date"); ok {
		rows = append(rows, row("begin", params{"begin": begin}))
	}
	if end, ok := p.str("work_end_date"); ok {
		rows = append(rows, row("end", params{"end": end}))
	}
	if url, ok := p.str("url"); ok {
		rows = append(rows, row("url", params{"url": url}))
	}
	return rows, nil
}

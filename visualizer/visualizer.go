// Package visualizer ties adaptation, reference scanning, resolution and
// rendering into one call that turns a raw transaction into display rows.
package visualizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/btsscan/platform/adapter"
	"github.com/btsscan/platform/beautify"
	"github.com/btsscan/platform/models"
	"github.com/btsscan/platform/resolver"
	"github.com/btsscan/platform/scanner"
)

// ErrMalformedOperation wraps any per-operation rendering failure. One bad
// operation fails the whole transaction; partial output is never returned.
var ErrMalformedOperation = errors.New("malformed operation")

type Visualizer struct {
	resolver *resolver.Resolver
}

func New(node resolver.NodeClient, opts ...resolver.Option) *Visualizer {
	return &Visualizer{resolver: resolver.New(node, opts...)}
}

// Visualize renders every operation of the input transaction. The input may
// be any of the supported transaction shapes; the output holds one row list
// per operation, in operation order.
func (v *Visualizer) Visualize(ctx context.Context, input interface{}) ([][]models.Row, error) {
	ops, err := adapter.Adapt(input)
	if err != nil {
		return nil, err
	}

	refs := scanner.Scan(ops)
	accounts := v.resolver.ResolveAccounts(ctx, refs.AccountIDs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	assets := v.resolver.ResolveAssets(ctx, refs.AssetIDs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc := beautify.NewContext(accounts, assets)
	result := make([][]models.Row, 0, len(ops))
	for i, op := range ops {
		rows, err := rc.Beautify(op)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d type %s: %v", ErrMalformedOperation, i, op.Type.Name(), err)
		}
		result = append(result, rows)
	}
	return result, nil
}

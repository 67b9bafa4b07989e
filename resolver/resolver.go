// Package resolver turns the id sets discovered by the scanner into resolved
// account and asset records, batching the node round trips and tolerating
// partial failure.
package resolver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/btsscan/platform/logger"
	"github.com/btsscan/platform/models"
)

// NodeClient is the node RPC capability the resolver depends on: two batched
// lookups and a readiness gate.
type NodeClient interface {
	EnsureConnection(ctx context.Context) error
	GetObjects(ctx context.Context, ids []string) ([]json.RawMessage, error)
	LookupAssetSymbols(ctx context.Context, ids []string) ([]json.RawMessage, error)
}

const (
	accountChunkSize = 100
	// Testnet nodes reject lookup_asset_symbols payloads above ~10 entries,
	// mainnet nodes above ~50. The asymmetry is a payload-size constraint of
	// the target network, not a tunable.
	assetChunkSizeMainnet = 49
	assetChunkSizeTestnet = 9

	defaultAssetTimeout = 3 * time.Second
)

type Resolver struct {
	node           NodeClient
	assetChunkSize int
	assetTimeout   time.Duration
}

type Option func(*Resolver)

// Testnet shrinks asset chunks to the constrained-network size.
func Testnet() Option {
	return func(r *Resolver) { r.assetChunkSize = assetChunkSizeTestnet }
}

// WithAssetTimeout overrides the per-chunk asset resolution deadline.
func WithAssetTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.assetTimeout = d }
}

func New(node NodeClient, opts ...Option) *Resolver {
	r := &Resolver{
		node:           node,
		assetChunkSize: assetChunkSizeMainnet,
		assetTimeout:   defaultAssetTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveAccounts fetches account objects for the given ids in chunks of at
// most 100. Not-found entries are dropped and failed chunks are logged and
// skipped; callers must tolerate missing accounts.
func (r *Resolver) ResolveAccounts(ctx context.Context, ids []string) []models.Account {
	if len(ids) == 0 {
		return nil
	}

	var accounts []models.Account
	for _, chunk := range chunks(ids, accountChunkSize) {
		if ctx.Err() != nil {
			break
		}
		if err := r.node.EnsureConnection(ctx); err != nil {
			logger.Log.Warn().Err(err).Int("chunk_size", len(chunk)).Msg("Node connection not ready, skipping account chunk")
			continue
		}
		raws, err := r.node.GetObjects(ctx, chunk)
		if err != nil {
			logger.Log.Warn().Err(err).Int("chunk_size", len(chunk)).Msg("get_objects failed, skipping account chunk")
			continue
		}
		for _, raw := range raws {
			if len(raw) == 0 || string(raw) == "null" {
				continue
			}
			var account models.Account
			if err := json.Unmarshal(raw, &account); err != nil {
				logger.Log.Debug().Err(err).Msg("Skipping unparseable account object")
				continue
			}
			if account.ID == "" || account.Name == "" {
				continue
			}
			accounts = append(accounts, account)
		}
	}
	return accounts
}

// ResolveAssets fetches asset objects in network-sized chunks. Every chunk is
// raced against the asset timeout: a chunk that does not settle in time
// contributes nothing and the loop moves on, so one stuck node call can never
// hang the whole visualization.
func (r *Resolver) ResolveAssets(ctx context.Context, ids []string) []models.Asset {
	if len(ids) == 0 {
		return nil
	}

	var resolved []models.Asset
	for _, chunk := range chunks(ids, r.assetChunkSize) {
		if ctx.Err() != nil {
			break
		}
		if err := r.node.EnsureConnection(ctx); err != nil {
			logger.Log.Warn().Err(err).Int("chunk_size", len(chunk)).Msg("Node connection not ready, skipping asset chunk")
			continue
		}
		resolved = append(resolved, r.resolveAssetChunk(ctx, chunk)...)
	}
	return resolved
}

type assetChunkResult struct {
	raws []json.RawMessage
	err  error
}

func (r *Resolver) resolveAssetChunk(ctx context.Context, chunk []string) []models.Asset {
	resultChan := make(chan assetChunkResult, 1)
	go func() {
		raws, err := r.node.LookupAssetSymbols(ctx, chunk)
		resultChan <- assetChunkResult{raws: raws, err: err}
	}()

	var res assetChunkResult
	select {
	case res = <-resultChan:
	case <-time.After(r.assetTimeout):
		logger.Log.Warn().
			Int("chunk_size", len(chunk)).
			Dur("timeout", r.assetTimeout).
			Msg("lookup_asset_symbols timed out, skipping asset chunk")
		return nil
	case <-ctx.Done():
		return nil
	}

	if res.err != nil {
		logger.Log.Warn().Err(res.err).Int("chunk_size", len(chunk)).Msg("lookup_asset_symbols failed, skipping asset chunk")
		return nil
	}

	var out []models.Asset
	for _, raw := range res.raws {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var asset models.Asset
		if err := json.Unmarshal(raw, &asset); err != nil {
			logger.Log.Debug().Err(err).Msg("Skipping unparseable asset object")
			continue
		}
		if asset.ID == "" {
			continue
		}
		out = append(out, asset)
	}
	return out
}

func chunks(ids []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}

package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	accountChunks [][]string
	assetChunks   [][]string

	connectErr error
	objectsErr error
	assetsErr  error

	assetDelay time.Duration
}

func (f *fakeNode) EnsureConnection(ctx context.Context) error {
	return f.connectErr
}

func (f *fakeNode) GetObjects(ctx context.Context, ids []string) ([]json.RawMessage, error) {
	f.accountChunks = append(f.accountChunks, ids)
	if f.objectsErr != nil {
		return nil, f.objectsErr
	}
	out := make([]json.RawMessage, 0, len(ids))
	for i, id := range ids {
		out = append(out, json.RawMessage(fmt.Sprintf(`{"id":%q,"name":"acct-%d"}`, id, i)))
	}
	return out, nil
}

func (f *fakeNode) LookupAssetSymbols(ctx context.Context, ids []string) ([]json.RawMessage, error) {
	if f.assetDelay > 0 {
		select {
		case <-time.After(f.assetDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.assetChunks = append(f.assetChunks, ids)
	if f.assetsErr != nil {
		return nil, f.assetsErr
	}
	out := make([]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		out = append(out, json.RawMessage(fmt.Sprintf(`{"id":%q,"symbol":"SYM","precision":5}`, id)))
	}
	return out, nil
}

func accountIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("1.2.%d", i))
	}
	return ids
}

func assetIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("1.3.%d", i))
	}
	return ids
}

func TestResolveAccountsChunking(t *testing.T) {
	node := &fakeNode{}
	r := New(node)

	accounts := r.ResolveAccounts(context.Background(), accountIDs(101))

	require.Len(t, node.accountChunks, 2)
	assert.Len(t, node.accountChunks[0], 100)
	assert.Len(t, node.accountChunks[1], 1)
	assert.Len(t, accounts, 101)
}

func TestResolveAccountsExactChunkBoundary(t *testing.T) {
	node := &fakeNode{}
	r := New(node)

	r.ResolveAccounts(context.Background(), accountIDs(100))

	require.Len(t, node.accountChunks, 1)
	assert.Len(t, node.accountChunks[0], 100)
}

func TestResolveAccountsEmptyInputMakesNoCalls(t *testing.T) {
	node := &fakeNode{}
	r := New(node)

	assert.Nil(t, r.ResolveAccounts(context.Background(), nil))
	assert.Nil(t, r.ResolveAssets(context.Background(), nil))
	assert.Empty(t, node.accountChunks)
	assert.Empty(t, node.assetChunks)
}

func TestResolveAccountsSkipsNullsAndGarbage(t *testing.T) {
	node := &nullishNode{}
	r := New(node)

	accounts := r.ResolveAccounts(context.Background(), []string{"1.2.1", "1.2.2", "1.2.3", "1.2.4"})

	require.Len(t, accounts, 1)
	assert.Equal(t, "alice", accounts[0].Name)
}

type nullishNode struct{}

func (nullishNode) EnsureConnection(ctx context.Context) error { return nil }

func (nullishNode) GetObjects(ctx context.Context, ids []string) ([]json.RawMessage, error) {
	return []json.RawMessage{
		json.RawMessage(`null`),
		json.RawMessage(`{"id":"1.2.2","name":"alice"}`),
		json.RawMessage(`{"id":"1.2.3"}`),
		json.RawMessage(`[1,2,3]`),
	}, nil
}

func (nullishNode) LookupAssetSymbols(ctx context.Context, ids []string) ([]json.RawMessage, error) {
	return nil, nil
}

func TestResolveAccountsToleratesFailedChunks(t *testing.T) {
	node := &fakeNode{objectsErr: fmt.Errorf("node down")}
	r := New(node)

	accounts := r.ResolveAccounts(context.Background(), accountIDs(5))
	assert.Empty(t, accounts)
}

func TestResolveAssetsMainnetChunking(t *testing.T) {
	node := &fakeNode{}
	r := New(node)

	resolved := r.ResolveAssets(context.Background(), assetIDs(50))

	require.Len(t, node.assetChunks, 2)
	assert.Len(t, node.assetChunks[0], 49)
	assert.Len(t, node.assetChunks[1], 1)
	assert.Len(t, resolved, 50)
}

func TestResolveAssetsTestnetChunking(t *testing.T) {
	node := &fakeNode{}
	r := New(node, Testnet())

	r.ResolveAssets(context.Background(), assetIDs(10))

	require.Len(t, node.assetChunks, 2)
	assert.Len(t, node.assetChunks[0], 9)
	assert.Len(t, node.assetChunks[1], 1)
}

func TestResolveAssetsChunkTimeout(t *testing.T) {
	node := &fakeNode{assetDelay: 200 * time.Millisecond}
	r := New(node, WithAssetTimeout(20*time.Millisecond))

	start := time.Now()
	resolved := r.ResolveAssets(context.Background(), assetIDs(3))

	assert.Empty(t, resolved)
	assert.Less(t, time.Since(start), 150*time.Millisecond, "a stuck chunk must not block past its timeout")
}

func TestResolveAssetsToleratesFailedChunks(t *testing.T) {
	node := &fakeNode{assetsErr: fmt.Errorf("lookup rejected")}
	r := New(node)

	resolved := r.ResolveAssets(context.Background(), assetIDs(3))
	assert.Empty(t, resolved)
}

func TestResolveStopsOnCancelledContext(t *testing.T) {
	node := &fakeNode{}
	r := New(node)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, r.ResolveAccounts(ctx, accountIDs(5)))
	assert.Empty(t, node.accountChunks)
}

func TestResolveSkipsChunksWithoutConnection(t *testing.T) {
	node := &fakeNode{connectErr: fmt.Errorf("dial failed")}
	r := New(node)

	assert.Empty(t, r.ResolveAccounts(context.Background(), accountIDs(5)))
	assert.Empty(t, r.ResolveAssets(context.Background(), assetIDs(5)))
	assert.Empty(t, node.accountChunks)
	assert.Empty(t, node.assetChunks)
}

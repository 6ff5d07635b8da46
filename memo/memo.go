// Package memo caches solved blocks. A full sweep at block size N costs
// up to 256^N digest evaluations, so paying it once per distinct record is
// worth a cache layer. Stores are best effort: errors degrade to misses
// and only fully reduced winning candidates are ever saved, so a hit is
// always the block the engine would have produced.
package memo

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zhengshuai-xiao/SCCodec/codec"
	"github.com/zhengshuai-xiao/SCCodec/internal"
)

var logger = internal.GetLogger("memo")

type key struct {
	blockSize int
	crc       uint16
	sum       uint16
}

// LRU is an in-process store over a fixed-capacity LRU cache.
type LRU struct {
	cache *lru.Cache[key, []byte]
}

func NewLRU(size int) (*LRU, error) {
	cache, err := lru.New[key, []byte](size)
	if err != nil {
		return nil, err
	}
	return &LRU{cache: cache}, nil
}

func (l *LRU) Lookup(_ context.Context, blockSize int, rec codec.DigestRecord) ([]byte, bool) {
	return l.cache.Get(key{blockSize: blockSize, crc: rec.CRC, sum: rec.Sum})
}

func (l *LRU) Save(_ context.Context, blockSize int, rec codec.DigestRecord, block []byte) {
	l.cache.Add(key{blockSize: blockSize, crc: rec.CRC, sum: rec.Sum}, block)
}

// chain consults stores in order and writes through to all of them.
type chain struct {
	stores []codec.MemoStore
}

// Chain layers stores, typically a small LRU in front of Redis. Lookup
// returns the first hit; Save writes through to every layer.
func Chain(stores ...codec.MemoStore) codec.MemoStore {
	return &chain{stores: stores}
}

func (c *chain) Lookup(ctx context.Context, blockSize int, rec codec.DigestRecord) ([]byte, bool) {
	for i, store := range c.stores {
		if block, ok := store.Lookup(ctx, blockSize, rec); ok {
			// promote into the layers in front
			for _, front := range c.stores[:i] {
				front.Save(ctx, blockSize, rec, block)
			}
			return block, true
		}
	}
	return nil, false
}

func (c *chain) Save(ctx context.Context, blockSize int, rec codec.DigestRecord, block []byte) {
	for _, store := range c.stores {
		store.Save(ctx, blockSize, rec, block)
	}
}

package memo

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/zhengshuai-xiao/SCCodec/codec"
)

// Redis is a shared store so expensive solves are paid once across runs
// and hosts. Keys carry the block size and both checksums; values are the
// raw winning block bytes.
type Redis struct {
	rdb redis.UniversalClient
}

// NewRedis connects to addr ("host:port/db", single node, cluster, or
// sentinel). The password comes from the URL or the REDIS_PASSWORD
// environment variable.
func NewRedis(addr string) (*Redis, error) {
	u, err := url.Parse("redis://" + addr)
	if err != nil {
		return nil, fmt.Errorf("invalid redis address format: %w", err)
	}
	opt, err := redis.ParseURL(u.String())
	if err != nil {
		return nil, fmt.Errorf("could not parse redis URL: %w", err)
	}
	if opt.Password == "" {
		opt.Password = os.Getenv("REDIS_PASSWORD")
	}

	rdb := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    strings.Split(u.Host, ","),
		DB:       opt.DB,
		Password: opt.Password,
		PoolSize: 100,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return &Redis{rdb: rdb}, nil
}

func redisKey(blockSize int, rec codec.DigestRecord) string {
	return fmt.Sprintf("scc:memo:%d:%04x:%04x", blockSize, rec.CRC, rec.Sum)
}

func (r *Redis) Lookup(ctx context.Context, blockSize int, rec codec.DigestRecord) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, redisKey(blockSize, rec)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Debugf("redis lookup failed, treating as miss: %v", err)
		return nil, false
	}
	if len(val) != blockSize {
		logger.Warnf("redis entry %s has length %d, want %d; ignoring", redisKey(blockSize, rec), len(val), blockSize)
		return nil, false
	}
	return val, true
}

func (r *Redis) Save(ctx context.Context, blockSize int, rec codec.DigestRecord, block []byte) {
	if err := r.rdb.Set(ctx, redisKey(blockSize, rec), block, 0).Err(); err != nil {
		logger.Debugf("redis save failed: %v", err)
	}
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

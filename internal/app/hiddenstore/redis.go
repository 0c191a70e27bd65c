package hiddenstore

import (
	"context"
	"net"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"github.com/go-redis/redis"
	"go.uber.org/zap"
)

const hiddenJobsKey = "restoration:hidden_jobs"

// Redis stores the hidden-jobs set as a redis set, so the suppression
// survives process restarts and is shared between instances.
type Redis struct {
	client *redis.Client
}

// CreateRedisStore connects to redis at addr (host or host:port; the
// default port is assumed when missing) and verifies the connection.
func CreateRedisStore(addr string) (*Redis, error) {
	const funcName = "hiddenstore.CreateRedisStore"

	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "6379")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping().Err(); err != nil {
		return nil, err
	}

	logger.Info("connected to redis",
		zap.String("function", funcName),
		zap.String("addr", addr),
	)

	return &Redis{client: client}, nil
}

func (r *Redis) Load(context.Context) ([]string, error) {
	return r.client.SMembers(hiddenJobsKey).Result()
}

func (r *Redis) Add(_ context.Context, jobID string) error {
	return r.client.SAdd(hiddenJobsKey, jobID).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

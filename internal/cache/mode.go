package cache

import (
	"fmt"
	"os"
	"strings"

	"github.com/larekshop/larek-backend/internal/logger"
)

type Mode string

const (
	ModeMemory Mode = "memory"
	ModeRedis  Mode = "redis"
)

// ResolveMode reads CACHE_MODE; unset means memory.
func ResolveMode() (Mode, error) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv("CACHE_MODE")))
	switch raw {
	case "", string(ModeMemory):
		return ModeMemory, nil
	case string(ModeRedis):
		return ModeRedis, nil
	default:
		return "", fmt.Errorf("invalid CACHE_MODE %q (want memory or redis)", raw)
	}
}

func NewStoreFromEnv(log *logger.Logger) (Store, error) {
	mode, err := ResolveMode()
	if err != nil {
		return nil, err
	}
	switch mode {
	case ModeRedis:
		return NewRedisStore(log)
	default:
		return NewMemoryStore(), nil
	}
}

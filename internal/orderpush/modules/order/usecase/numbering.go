package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/golangid/orderpush/config/env"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/repository/interfaces"
)

const maxGenerateAttempt = 20

// Numbering generate candidate order number for a shop/day. Uniqueness is enforced by repository create
type Numbering interface {
	Generate(ctx context.Context, shopID, day string) (string, error)
}

// NumberingConfig numbering mode per shop
type NumberingConfig struct {
	Default string
	PerShop map[string]string
	Digits  int
}

type numberingImpl struct {
	cfg  NumberingConfig
	repo interfaces.OrderRepository

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewNumbering constructor
func NewNumbering(cfg NumberingConfig, repo interfaces.OrderRepository) Numbering {
	if cfg.Digits <= 0 {
		cfg.Digits = 3
	}
	if cfg.Default == "" {
		cfg.Default = env.NumberingSequential
	}
	return &numberingImpl{
		cfg:  cfg,
		repo: repo,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (n *numberingImpl) mode(shopID string) string {
	if mode, ok := n.cfg.PerShop[shopID]; ok {
		return mode
	}
	return n.cfg.Default
}

func (n *numberingImpl) Generate(ctx context.Context, shopID, day string) (string, error) {
	if n.mode(shopID) == env.NumberingRandom {
		return n.pad(n.random()), nil
	}

	seq, err := n.repo.NextSequence(ctx, shopID, day)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}
	return n.pad(seq), nil
}

func (n *numberingImpl) random() int64 {
	limit := int64(1)
	for i := 0; i < n.cfg.Digits; i++ {
		limit *= 10
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return 1 + n.rnd.Int63n(limit-1)
}

// pad zero padded, number wider than digits is kept as is
func (n *numberingImpl) pad(num int64) string {
	s := strconv.FormatInt(num, 10)
	for len(s) < n.cfg.Digits {
		s = "0" + s
	}
	return s
}

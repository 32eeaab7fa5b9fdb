package cart

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces unique ids for cart lines and orders. Injected so
// tests can generate deterministic ids.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator hands out "1", "2", "3", ... for deterministic tests.
type SequenceGenerator struct {
	n atomic.Int64
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%d", g.n.Add(1))
}

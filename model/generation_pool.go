package model

import "sync"

// GenerationToPool returns a generation to the pool for reuse
func GenerationToPool(g Generation, pool *GenerationPool) {
	if pool == nil {
		return
	}

	pool.Put(g)
}

// GenerationPool recycles the per-step sets so a long run does not allocate a
// fresh map every advance
type GenerationPool struct {
	pool sync.Pool
}

func NewGenerationPool() *GenerationPool {
	return &GenerationPool{
		pool: sync.Pool{
			New: func() interface{} {
				return Generation{}
			},
		},
	}
}

// Get retrieves an empty generation from the pool
func (p *GenerationPool) Get() Generation {
	return p.pool.Get().(Generation)
}

// Put returns a generation to the pool, clearing its state
func (p *GenerationPool) Put(g Generation) {
	// Clear the cells before returning to pool
	g.Clear()
	p.pool.Put(g)
}

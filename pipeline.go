//////////////////////////////////////////////////////////////////////////////
//
// Stage glue for embedding decoders in a lazy pipeline
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package tensormedia

import (
	"crypto/sha256"
	"sync"

	"github.com/golang/groupcache/lru"
)

// Stage is a single pipeline transformation. The surrounding pipeline owns
// sequencing, laziness and retry policy; stages only transform one value.
type Stage func(Data) (Data, error)

// DecodeStage adapts a Decoder into a Stage.
func DecodeStage(dec Decoder) Stage {
	return dec.Decode
}

// CachingStage memoizes the results of a decode stage, keyed by a digest of
// the input block bytes. Lazy pipelines may visit the same encoded block
// more than once; re-decoding is far more expensive than hashing.
//
// Cached tensors are shared by reference counting: the cache keeps one hold
// of its own, and every result handed out carries a hold for the caller. A
// caller closing its result therefore never invalidates the cached copy,
// and each caller still owns what it receives, so the usual rule applies:
// close every returned tensor exactly once.
//
// Only memory-block inputs are cached. Anything else passes straight
// through to the wrapped stage, which will reject it with its own error.
type CachingStage struct {
	next Stage

	mu    sync.Mutex
	cache *lru.Cache
}

// NewCachingStage wraps next with an LRU of at most capacity entries.
// Evicted entries give up the cache's hold on their tensor.
func NewCachingStage(next Stage, capacity int) *CachingStage {
	cache := lru.New(capacity)
	cache.OnEvicted = func(key lru.Key, value interface{}) {
		if t := value.(Data).Tensor(); t != nil {
			t.Close()
		}
	}
	return &CachingStage{
		next:  next,
		cache: cache,
	}
}

// Process runs the wrapped stage, returning a memoized result when the same
// block content has been decoded before.
func (s *CachingStage) Process(d Data) (Data, error) {
	if !d.IsMemoryBlock() {
		return s.next(d)
	}

	key := sha256.Sum256(d.MemoryBlock().Bytes())

	s.mu.Lock()
	if cached, ok := s.cache.Get(key); ok {
		out := cached.(Data)
		if t := out.Tensor(); t != nil {
			t.Hold()
		}
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	out, err := s.next(d)
	if err != nil {
		return Data{}, err
	}

	if t := out.Tensor(); t != nil {
		t.Hold()
	}
	s.mu.Lock()
	s.cache.Add(key, out)
	s.mu.Unlock()

	return out, nil
}

// MapParallel applies stage to every item using the given number of worker
// goroutines, preserving input order in the result. The first error wins;
// remaining items still run, and any tensors they produced are closed
// before the error is returned. Decoders are safe for this because each
// call creates its own codec context.
func MapParallel(stage Stage, items []Data, workers int) ([]Data, error) {
	if workers < 1 {
		workers = 1
	}

	out := make([]Data, len(items))
	errs := make([]error, len(items))
	next := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range next {
				out[idx], errs[idx] = stage(items[idx])
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			// Release whatever the other workers produced; pinned pages
			// and device buffers must not outlive a failed batch.
			for i := range out {
				if errs[i] == nil && out[i].IsTensor() {
					out[i].Tensor().Close()
				}
			}
			return nil, err
		}
	}
	return out, nil
}

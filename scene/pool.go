package scene

import "math/rand"

// ImagePool is the immutable list of candidate shape image sources
type ImagePool struct {
	sources []string
}

// NewImagePool merges category pools and the fallback pool, dropping duplicates
// The first occurrence of a source keeps its position
func NewImagePool(fallback []string, categories ...[]string) ImagePool {
	seen := make(map[string]struct{})
	var sources []string
	add := func(list []string) {
		for _, src := range list {
			if src == "" {
				continue
			}
			if _, ok := seen[src]; ok {
				continue
			}
			seen[src] = struct{}{}
			sources = append(sources, src)
		}
	}
	for _, c := range categories {
		add(c)
	}
	add(fallback)
	return ImagePool{sources: sources}
}

// Len returns the number of sources
func (p ImagePool) Len() int {
	return len(p.sources)
}

// Sources returns a copy of the sources
func (p ImagePool) Sources() []string {
	return append([]string(nil), p.sources...)
}

// Pick draws a source uniformly, empty string for an empty pool
func (p ImagePool) Pick(rng *rand.Rand) string {
	if len(p.sources) == 0 {
		return ""
	}
	return p.sources[rng.Intn(len(p.sources))]
}

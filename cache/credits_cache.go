package mycache

import (
	"time"

	"lpcgen/api/model"

	"github.com/dgraph-io/ristretto/v2"
)

const creditsCacheTTL = 10 * time.Minute

var CreditsCache *ristretto.Cache[string, []model.Credit]

func init() {
	cache, err := ristretto.NewCache[string, []model.Credit](&ristretto.Config[string, []model.Credit]{
		NumCounters: 10000,
		MaxCost:     10 * 1024 * 1024,
		BufferItems: 64,
	})
	if err != nil {
		panic(err)
	}
	CreditsCache = cache
}

// GetCredits returns the parsed entries for one credits file, ok means hit.
func GetCredits(path string) ([]model.Credit, bool) {
	CreditsCache.Wait()
	return CreditsCache.Get(path)
}

// SetCredits stores parsed entries keyed by file path, cost is the raw size.
func SetCredits(path string, credits []model.Credit, cost int64) {
	if cost <= 0 {
		cost = 1
	}
	CreditsCache.SetWithTTL(path, credits, cost, creditsCacheTTL)
	CreditsCache.Wait()
}

// Package recent keeps a ranked history of the colors passed to tint commands.
package recent

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tintkit/tint/color"
	"github.com/tintkit/tint/filesystem"
	"github.com/tintkit/tint/key"
	"github.com/tintkit/tint/where"
)

// Record is one remembered color.
type Record struct {
	Hex      string    `json:"hex"`
	Uses     int       `json:"uses"`
	LastUsed time.Time `json:"last_used"`
}

// Color parses the stored hex value.
func (r *Record) Color() (color.Color, error) {
	return color.FromHex(r.Hex)
}

var now = time.Now

var (
	mu    sync.Mutex
	store *gache.Cache[map[string]*Record]
)

// cacher opens the history file on first use so the filesystem backend can be swapped beforehand.
func cacher() *gache.Cache[map[string]*Record] {
	if store == nil {
		store = gache.New[map[string]*Record](&gache.Options{
			Path:       where.Recent(),
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return store
}

func load() map[string]*Record {
	records, expired, err := cacher().Get()
	if err != nil || expired || records == nil {
		return make(map[string]*Record)
	}
	return records
}

// Remember bumps the use count and last-use time of c.
// It does nothing when recent.remember is disabled.
func Remember(c color.Color) error {
	if !viper.GetBool(key.RecentRemember) {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	hex := c.Hex()
	if r, ok := records[hex]; ok {
		r.Uses++
		r.LastUsed = now()
	} else {
		records[hex] = &Record{Hex: hex, Uses: 1, LastUsed: now()}
	}

	return cacher().Set(records)
}

// List returns the most recently used colors first, at most recent.limit of them.
func List() []*Record {
	mu.Lock()
	records := lo.Values(load())
	mu.Unlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].LastUsed.Equal(records[j].LastUsed) {
			return records[i].Hex < records[j].Hex
		}
		return records[i].LastUsed.After(records[j].LastUsed)
	})

	if limit := viper.GetInt(key.RecentLimit); limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// Suggest returns remembered hex values fuzzily matching q, most used first.
func Suggest(q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))

	mu.Lock()
	matches := lo.Filter(lo.Values(load()), func(r *Record, _ int) bool {
		return fuzzy.Match(q, r.Hex)
	})
	mu.Unlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Uses == matches[j].Uses {
			return matches[i].Hex < matches[j].Hex
		}
		return matches[i].Uses > matches[j].Uses
	})

	return lo.Map(matches, func(r *Record, _ int) string {
		return r.Hex
	})
}

// Clear forgets every remembered color.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	return cacher().Set(make(map[string]*Record))
}

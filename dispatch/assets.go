package dispatch

import (
	"html"
	"iter"
	"strings"
	"sync"
)

// Asset is a style or script declaration emitted by a rendered component.
type Asset struct {
	// Tag is the markup inserted into the document, e.g. a <link> or <script> element.
	Tag string
	// URL is the resolvable location used for early hints. Optional.
	URL string
}

// Stylesheet builds the asset for a stylesheet served from href.
func Stylesheet(href string) Asset {
	return Asset{
		Tag: `<link rel="stylesheet" href="` + html.EscapeString(href) + `">`,
		URL: href,
	}
}

// ModuleScript builds the asset for an ES module served from src.
func ModuleScript(src string) Asset {
	return Asset{
		Tag: `<script type="module" src="` + html.EscapeString(src) + `"></script>`,
		URL: src,
	}
}

// AssetSet is an insertion-ordered key to Asset collection. Re-adding a key
// replaces its asset but keeps its original position. It is safe for
// concurrent use so renderers may populate it from several goroutines.
type AssetSet struct {
	mu     sync.Mutex
	keys   []string
	items  map[string]Asset
	sealed bool
}

// NewAssetSet returns an empty set.
func NewAssetSet() *AssetSet {
	return &AssetSet{items: make(map[string]Asset)}
}

// Add stores asset under key. It returns false, and stores nothing, once the
// set has been sealed.
func (s *AssetSet) Add(key string, asset Asset) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return false
	}
	if _, ok := s.items[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.items[key] = asset
	return true
}

// Get returns the asset stored under key.
func (s *AssetSet) Get(key string) (Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[key]
	return a, ok
}

// Len returns the number of keys.
func (s *AssetSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

// All iterates over a snapshot of the set in insertion order.
func (s *AssetSet) All() iter.Seq2[string, Asset] {
	s.mu.Lock()
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	assets := make([]Asset, len(keys))
	for i, k := range keys {
		assets[i] = s.items[k]
	}
	s.mu.Unlock()

	return func(yield func(string, Asset) bool) {
		for i, k := range keys {
			if !yield(k, assets[i]) {
				return
			}
		}
	}
}

// Tags returns the distinct tags in first-insertion order. A tag declared by
// several components appears once.
func (s *AssetSet) Tags() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, a := range s.All() {
		if _, ok := seen[a.Tag]; ok {
			continue
		}
		seen[a.Tag] = struct{}{}
		tags = append(tags, a.Tag)
	}
	return tags
}

// String concatenates Tags.
func (s *AssetSet) String() string {
	return strings.Join(s.Tags(), "")
}

func (s *AssetSet) seal() {
	s.mu.Lock()
	s.sealed = true
	s.mu.Unlock()
}

// Assets groups the style and script declarations collected while rendering one page.
type Assets struct {
	Styles  *AssetSet
	Scripts *AssetSet
}

// NewAssets returns empty collections.
func NewAssets() *Assets {
	return &Assets{Styles: NewAssetSet(), Scripts: NewAssetSet()}
}

// Stringify renders both collections, deduplicated by tag.
func (a *Assets) Stringify() (styles, scripts string) {
	return a.Styles.String(), a.Scripts.String()
}

// Seal rejects further additions. The dispatcher seals the collections once
// the response has ended.
func (a *Assets) Seal() {
	a.Styles.seal()
	a.Scripts.seal()
}

// Package provider registers the extraction services and owns the one-time engine setup.
package provider

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/extractor/youtube"
	"github.com/KRTirtho/NewPipeCLI/key"
	"github.com/KRTirtho/NewPipeCLI/log"
	"github.com/KRTirtho/NewPipeCLI/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Provider describes a service the engine can create.
type Provider struct {
	ID   string
	Name string
	New  func(id int, downloader extractor.Downloader) extractor.Service
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the built-in providers. The primary platform comes first.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   "youtube",
			Name: youtube.Name,
			New: func(id int, downloader extractor.Downloader) extractor.Service {
				return youtube.New(id, downloader, youtube.OptionsFromConfig())
			},
		},
	}
}

// Get finds a built-in provider by id or name, falling back to the closest fuzzy match.
func Get(name string) (*Provider, bool) {
	builtins := Builtins()
	index, ok := lookup(name, lo.Map(builtins, func(p *Provider, _ int) []string {
		return []string{p.ID, p.Name}
	}))
	if !ok {
		return nil, false
	}
	return builtins[index], true
}

// lookup returns the index of the entry one of whose aliases equals name (ignoring case),
// or else the closest fuzzy match.
func lookup(name string, aliases [][]string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}

	for i, names := range aliases {
		if lo.ContainsBy(names, func(n string) bool { return strings.EqualFold(n, name) }) {
			return i, true
		}
	}

	type candidate struct {
		index    int
		distance int
	}

	var candidates []candidate
	for i, names := range aliases {
		for _, rank := range fuzzy.RankFindNormalizedFold(name, names) {
			candidates = append(candidates, candidate{index: i, distance: rank.Distance})
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		return a.distance - b.distance
	})
	return candidates[0].index, true
}

// Engine holds the initialized services.
type Engine struct {
	services []extractor.Service
	aliases  [][]string
}

var (
	initOnce sync.Once
	engine   *Engine
)

// Init creates the engine with the built-in providers on first use.
// Later calls ignore their argument and return the same engine.
func Init(downloader extractor.Downloader) *Engine {
	initOnce.Do(func() {
		engine = NewEngine(downloader, Builtins())
		log.Infof("engine initialized with %s", util.Quantify(len(engine.services), "service", "services"))
	})
	return engine
}

// NewEngine creates one service per provider; a service's id is its index.
func NewEngine(downloader extractor.Downloader, providers []*Provider) *Engine {
	e := &Engine{}
	for i, p := range providers {
		e.services = append(e.services, p.New(i, downloader))
		e.aliases = append(e.aliases, []string{p.ID, p.Name})
	}
	return e
}

// Services lists every service by id.
func (e *Engine) Services() []extractor.Service {
	return e.services
}

// Service returns the service with the given index.
func (e *Engine) Service(index int) (extractor.Service, error) {
	if index < 0 || index >= len(e.services) {
		return nil, fmt.Errorf("no service with index %d, %d available", index, len(e.services))
	}
	return e.services[index], nil
}

// ServiceByName resolves an index, an id or a name, exact matches first.
func (e *Engine) ServiceByName(name string) (extractor.Service, error) {
	if index, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		return e.Service(index)
	}

	index, ok := lookup(name, e.aliases)
	if !ok {
		return nil, fmt.Errorf("unknown service %q", name)
	}
	return e.services[index], nil
}

// Default returns the configured default service, or the primary one.
func (e *Engine) Default() (extractor.Service, error) {
	if name := viper.GetString(key.ExtractorDefaultService); name != "" {
		return e.ServiceByName(name)
	}
	return e.Service(0)
}

package memory

import (
	"sync"

	"github.com/prysmaticlabs/synclight/beacon-chain/db/iface"
)

// Provider hands out one in-memory store per network name.
type Provider struct {
	lock   sync.Mutex
	stores map[string]*Store
}

// NewProvider returns a provider without stores.
func NewProvider() *Provider {
	return &Provider{stores: make(map[string]*Store)}
}

// LightClientStore returns the store of network, creating it on first use.
func (p *Provider) LightClientStore(network string) iface.LightClientStore {
	p.lock.Lock()
	defer p.lock.Unlock()
	s, ok := p.stores[network]
	if !ok {
		s = New()
		p.stores[network] = s
	}
	return s
}

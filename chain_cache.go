package validation

import "sync"

// chainCache provides thread-safe caching of compiled rule chains
// keyed by the raw rule string. Rule strings repeat heavily across
// validations, so each distinct string compiles once per process.
// Compilation errors are cached too; a bad rule string stays bad.
type chainCache struct {
	chains sync.Map // map[string]*chainCacheEntry
}

type chainCacheEntry struct {
	once  sync.Once
	chain *ruleChain
	err   error
}

// compiledChains is the process-wide cache Validate compiles through.
var compiledChains chainCache

// getOrCompile returns the cached chain for a rule string, compiling it on
// first use. The compile runs only once per rule string, even under
// concurrent access.
func (cc *chainCache) getOrCompile(ruleString string) (*ruleChain, error) {
	v, _ := cc.chains.LoadOrStore(ruleString, &chainCacheEntry{})
	entry := v.(*chainCacheEntry)

	entry.once.Do(func() {
		entry.chain, entry.err = compileChain(ruleString)
	})
	return entry.chain, entry.err
}

// clear drops every cached chain.
func (cc *chainCache) clear() {
	cc.chains = sync.Map{}
}

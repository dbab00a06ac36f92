package mocks

import (
	"sync/atomic"
)

// IdentityProvider returns a fixed machine identifier and counts lookups
type IdentityProvider struct {
	ID    string
	Err   error
	calls atomic.Int32
}

// NewIdentityProvider creates a provider reporting id
func NewIdentityProvider(id string) *IdentityProvider {
	return &IdentityProvider{ID: id}
}

// Identifier implements identity.Provider
func (p *IdentityProvider) Identifier() (string, error) {
	p.calls.Add(1)

	if p.Err != nil {
		return "", p.Err
	}

	return p.ID, nil
}

// Calls returns how many times Identifier was called
func (p *IdentityProvider) Calls() int {
	return int(p.calls.Load())
}

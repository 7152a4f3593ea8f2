package event

import "sync"

// Impacts are the highest-frequency event in play; pooling their
// payloads keeps the hot collision path allocation-free
var impactPool = sync.Pool{
	New: func() any {
		return &ImpactPayload{}
	},
}

// AcquireImpact returns a zeroed pooled payload
func AcquireImpact() *ImpactPayload {
	p := impactPool.Get().(*ImpactPayload)
	*p = ImpactPayload{}
	return p
}

// ReleaseImpact returns a payload to the pool
// Callers must not retain the pointer after release
func ReleaseImpact(p *ImpactPayload) {
	if p == nil {
		return
	}
	impactPool.Put(p)
}

package supermarket

import (
	"math/rand"
	"time"
)

// Pacing supplies the simulated work delays. A zero-value field falls back
// to the default range: cashiers scan for 200-1000 ms, packers pack for
// 400-1600 ms. Tests substitute near-zero delays to run sub-second.
type Pacing struct {
	CashierDelay func() time.Duration
	PackerDelay  func() time.Duration
}

func (p Pacing) cashierDelay() time.Duration {
	if p.CashierDelay != nil {
		return p.CashierDelay()
	}
	return time.Duration(rand.Intn(800)+200) * time.Millisecond
}

func (p Pacing) packerDelay() time.Duration {
	if p.PackerDelay != nil {
		return p.PackerDelay()
	}
	return time.Duration(rand.Intn(1200)+400) * time.Millisecond
}

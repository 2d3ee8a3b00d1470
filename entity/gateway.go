package entity

// expectedExecutionSeconds is the mean execution time assumed when
// relating the gateway throttle to a function concurrency reservation.
const expectedExecutionSeconds = 2

// Gateway maps the [gateway] section. The stage carries access logging,
// tracing and throttling for every proxied route.
type Gateway struct {
	Stage            string `toml:"stage"`
	RateLimit        int    `toml:"rate_limit"`
	BurstLimit       int    `toml:"burst_limit"`
	Tracing          bool   `toml:"tracing"`
	LogRetentionDays int    `toml:"log_retention_days"`
}

// SustainedCapacity returns the concurrency the stage can drive against
// the backing function at the sustained throttle rate.
func (g Gateway) SustainedCapacity() int {
	return g.RateLimit * expectedExecutionSeconds
}

// FitsReservation reports whether a concurrency reservation stays below
// what the throttled stage can actually consume.
func (g Gateway) FitsReservation(fn Function) bool {
	if !fn.HasReservedConcurrency() {
		return true
	}
	return fn.ReservedConcurrency < g.SustainedCapacity()
}

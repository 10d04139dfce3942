package transform

// AdvisoryPolicy selects how translation helpers report the trusted-region
// advisory.
type AdvisoryPolicy int

const (
	// AdvisoryWarn returns the valid translated Set together with
	// ErrBeyondTrustedRegion. Default.
	AdvisoryWarn AdvisoryPolicy = iota

	// AdvisoryIgnore suppresses the advisory entirely.
	AdvisoryIgnore

	// AdvisoryFail promotes the advisory to a fatal error: no result.
	AdvisoryFail
)

type options struct {
	advisory AdvisoryPolicy
}

// Option tunes a translation helper call.
type Option func(*options)

// WithAdvisoryPolicy overrides the default Warn handling of
// ErrBeyondTrustedRegion.
func WithAdvisoryPolicy(p AdvisoryPolicy) Option {
	return func(o *options) { o.advisory = p }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

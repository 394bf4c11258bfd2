package lsq

type config struct {
	metrics *Metrics
}

// An Option configures a List at construction.
type Option func(c *config)

// WithMetrics makes the list record its work into m. The same Metrics may be
// given to several lists.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

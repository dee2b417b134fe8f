package policy

import (
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/omnicalc/backend/internal/logging"
	"github.com/omnicalc/backend/internal/monitoring"
)

// Config holds policy gate configuration.
type Config struct {
	// Available reports whether the platform supports the graphing mode
	// at all. When false the policy service is never consulted.
	Available bool

	// Endpoint is the base URL of the policy service; Path is the
	// decision resource for the graphing feature.
	Endpoint string
	Path     string
	Timeout  time.Duration
}

// decision is the policy service response body.
type decision struct {
	Allowed bool `json:"allowed"`
}

// Gate answers the two questions the navigation manifest asks: is the
// graphing mode available on this platform, and is it enabled by policy
// for this user.
//
// The policy lookup may be slow, so its result is computed at most once
// per process and cached; concurrent first callers share one underlying
// query. Any failure degrades to "disabled".
type Gate struct {
	available bool
	client    *resty.Client
	path      string
	logger    *logging.Logger
	metrics   *monitoring.Metrics

	once    sync.Once
	enabled bool
}

// New creates a policy gate. metrics may be nil.
func New(cfg Config, logger *logging.Logger, metrics *monitoring.Metrics) *Gate {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Gate{
		available: cfg.Available,
		client:    client,
		path:      cfg.Path,
		logger:    logger.WithComponent("policy"),
		metrics:   metrics,
	}
}

// FeatureAvailable reports platform capability. Cheap and safe to call
// repeatedly.
func (g *Gate) FeatureAvailable() bool {
	return g.available
}

// FeatureEnabled reports the policy decision for the graphing mode. The
// first call performs the remote lookup; every later call returns the
// cached result.
func (g *Gate) FeatureEnabled() bool {
	if !g.available {
		return false
	}
	g.once.Do(func() {
		g.enabled = g.query()
	})
	return g.enabled
}

func (g *Gate) query() bool {
	var result decision
	resp, err := g.client.R().SetResult(&result).Get(g.path)
	if err != nil {
		g.logger.Warn("policy lookup failed, graphing mode disabled", zap.Error(err))
		g.recordLookup("error")
		return false
	}
	if resp.IsError() {
		g.logger.Warn("policy lookup rejected, graphing mode disabled",
			zap.Int("status", resp.StatusCode()))
		g.recordLookup("error")
		return false
	}

	if result.Allowed {
		g.recordLookup("allowed")
	} else {
		g.recordLookup("denied")
	}
	g.logger.Info("policy lookup complete", zap.Bool("allowed", result.Allowed))
	return result.Allowed
}

func (g *Gate) recordLookup(outcome string) {
	if g.metrics != nil {
		g.metrics.RecordPolicyLookup(outcome)
	}
}

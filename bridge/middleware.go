package bridge

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// LoggingMiddleware returns middleware that logs each invocation and its
// settlement. Settlements of promises still pending when the host call
// returns are logged from a watcher goroutine; if the host never fires a
// callback that goroutine waits forever, which is itself the condition the
// log exists to expose.
func LoggingMiddleware(logger zerolog.Logger) Middleware {
	return func(inv *Invocation, next InvokeFunc) (*Promise, error) {
		logger.Debug().
			Str("invocation_id", inv.ID).
			Str("op", inv.Op).
			Msg("invoking host operation")

		p, err := next(inv)
		if err != nil {
			logger.Error().
				Str("invocation_id", inv.ID).
				Str("op", inv.Op).
				Err(err).
				Msg("invocation failed before dispatch")
			return nil, err
		}

		logSettlement := func() {
			evt := logger.Debug().
				Str("invocation_id", inv.ID).
				Str("op", inv.Op).
				Str("convention", string(inv.Convention)).
				Dur("elapsed", time.Since(inv.StartedAt))
			if _, rejected := p.Rejection(); rejected {
				evt.Str("outcome", "rejected")
			} else {
				evt.Str("outcome", "resolved")
			}
			evt.Msg("invocation settled")
		}

		if p.Settled() {
			logSettlement()
		} else {
			go func() {
				<-p.Done()
				logSettlement()
			}()
		}
		return p, nil
	}
}

// MetricsMiddleware returns middleware that counts invocations, settlements
// by outcome, and pre-dispatch failures. All collectors are registered on
// reg; a nil reg uses the default registerer.
func MetricsMiddleware(reg prometheus.Registerer) Middleware {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	invocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hostbridge_invocations_total",
		Help: "Host operation invocations issued through the bridge.",
	}, []string{"operation"})
	settlements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hostbridge_settlements_total",
		Help: "Promise settlements by outcome.",
	}, []string{"operation", "outcome"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hostbridge_dispatch_failures_total",
		Help: "Invocations that failed before reaching the host operation.",
	}, []string{"operation"})
	reg.MustRegister(invocations, settlements, failures)

	return func(inv *Invocation, next InvokeFunc) (*Promise, error) {
		invocations.WithLabelValues(inv.Op).Inc()

		p, err := next(inv)
		if err != nil {
			failures.WithLabelValues(inv.Op).Inc()
			return nil, err
		}

		count := func() {
			if _, rejected := p.Rejection(); rejected {
				settlements.WithLabelValues(inv.Op, "rejected").Inc()
			} else {
				settlements.WithLabelValues(inv.Op, "resolved").Inc()
			}
		}

		if p.Settled() {
			count()
		} else {
			go func() {
				<-p.Done()
				count()
			}()
		}
		return p, nil
	}
}

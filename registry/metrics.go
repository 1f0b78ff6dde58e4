// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AlphyonAlephium/memeprotocol/actions"
)

type metrics struct {
	createToken  prometheus.Counter
	updateConfig prometheus.Counter
	finalized    prometheus.Counter
}

func newMetrics(gatherer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		createToken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "create_token",
			Help:      "number of create token actions",
		}),
		updateConfig: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "update_config",
			Help:      "number of update config actions",
		}),
		finalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "registry",
			Name:      "finalized",
			Help:      "number of finalized token deployments",
		}),
	}
	if gatherer == nil {
		return m, nil
	}
	errs := wrappers.Errs{}
	errs.Add(
		gatherer.Register(m.createToken),
		gatherer.Register(m.updateConfig),
		gatherer.Register(m.finalized),
	)
	return m, errs.Err
}

func (m *metrics) executed(action actions.Action) {
	switch action.(type) {
	case *actions.CreateToken:
		m.createToken.Inc()
	case *actions.UpdateConfig:
		m.updateConfig.Inc()
	}
}

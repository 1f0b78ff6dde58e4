// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	compactions prometheus.Counter
	flushes     prometheus.Counter
	writeStalls prometheus.Counter
}

func newMetrics() (*prometheus.Registry, *metrics, *pebble.EventListener) {
	m := &metrics{
		compactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "compactions",
			Help:      "number of completed compactions",
		}),
		flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "flushes",
			Help:      "number of completed memtable flushes",
		}),
		writeStalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "write_stalls",
			Help:      "number of write stalls",
		}),
	}
	r := prometheus.NewRegistry()
	r.MustRegister(m.compactions, m.flushes, m.writeStalls)

	listener := &pebble.EventListener{
		CompactionEnd: func(pebble.CompactionInfo) {
			m.compactions.Inc()
		},
		FlushEnd: func(pebble.FlushInfo) {
			m.flushes.Inc()
		},
		WriteStallBegin: func(pebble.WriteStallBeginInfo) {
			m.writeStalls.Inc()
		},
	}
	return r, m, listener
}

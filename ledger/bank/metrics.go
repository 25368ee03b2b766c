// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package bank

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/algorand/go-deposit-ledger/ledger/apply"
)

const metricsNamespace = "deposit_ledger"

type bankMetrics struct {
	txnsTotal      *prometheus.CounterVec
	programErrors  *prometheus.CounterVec
	feesTotal      prometheus.Counter
	slot           prometheus.Gauge
	lamportsMinted prometheus.Counter
}

func makeBankMetrics(reg prometheus.Registerer) (*bankMetrics, error) {
	m := &bankMetrics{
		txnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transactions_total",
			Help:      "Transactions seen by the bank, by outcome",
		}, []string{"result"}),
		programErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "program_errors_total",
			Help:      "Failed transactions by deposit program error code",
		}, []string{"code"}),
		feesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fees_lamports_total",
			Help:      "Lamports collected as transaction fees",
		}),
		slot: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "slot",
			Help:      "Latest slot",
		}),
		lamportsMinted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "airdrop_lamports_total",
			Help:      "Lamports created by airdrops",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.txnsTotal, m.programErrors, m.feesTotal, m.slot, m.lamportsMinted} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *bankMetrics) unregister(reg prometheus.Registerer) {
	if reg == nil {
		return
	}
	for _, c := range []prometheus.Collector{m.txnsTotal, m.programErrors, m.feesTotal, m.slot, m.lamportsMinted} {
		reg.Unregister(c)
	}
}

func (m *bankMetrics) rejected() {
	m.txnsTotal.WithLabelValues("rejected").Inc()
}

func (m *bankMetrics) executed(res *TxnResult) {
	m.feesTotal.Add(float64(res.Fee))
	m.slot.Set(float64(res.Slot))
	if res.Err == nil {
		m.txnsTotal.WithLabelValues("ok").Inc()
		return
	}
	m.txnsTotal.WithLabelValues("failed").Inc()
	if code, ok := apply.CodeOf(res.Err); ok {
		m.programErrors.WithLabelValues(code.String()).Inc()
	}
}

/*
 * Copyright 2024 caiflower Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package server

import (
	"github.com/caiflower/httpfs/global/env"
	"github.com/prometheus/client_golang/prometheus"
)

type httpMetric struct {
	requestTotal  *prometheus.CounterVec
	costHistogram prometheus.Histogram
}

func newHttpMetric() *httpMetric {
	constLabels := prometheus.Labels{"ip": env.GetLocalHostIP()}

	buckets := []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000}
	metric := &httpMetric{
		requestTotal:  prometheus.NewCounterVec(prometheus.CounterOpts{Name: "httpfs_request_total", Help: "httpfs_request_total counter", ConstLabels: constLabels}, []string{"code", "method"}),
		costHistogram: prometheus.NewHistogram(prometheus.HistogramOpts{Name: "httpfs_request_histogram", Help: "httpfs_request_histogram", Buckets: buckets, ConstLabels: constLabels}),
	}

	prometheus.Register(metric.requestTotal)
	prometheus.Register(metric.costHistogram)

	return metric
}

func (m *httpMetric) saveMetric(code string, method string, cost int64) {
	m.requestTotal.WithLabelValues(code, method).Inc()
	m.costHistogram.Observe(float64(cost))
}

// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// dumpNamespace 是当前项目所有 Prometheus 指标使用的命名空间。
	dumpNamespace = "dumpjson"

	// sinkLabelName 标记输出目标（console/debug）。
	sinkLabelName = "sink"
)

var (
	// SinkWrites 按输出目标统计写出的行数。
	SinkWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: dumpNamespace,
			Name:      "sink_writes",
			Help:      "number of lines written per sink",
		}, []string{sinkLabelName})

	// DumpsSuppressed 统计因所有输出目标均被禁用而直接跳过的 dump 次数。
	DumpsSuppressed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: dumpNamespace,
			Name:      "dumps_suppressed",
			Help:      "number of dump calls skipped because no sink was enabled",
		})

	// SerializationErrors 统计序列化失败次数。
	SerializationErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: dumpNamespace,
			Name:      "serialization_errors",
			Help:      "number of dump calls that failed to serialize",
		})

	// SerializedBytes 统计序列化产生的总字节数。
	SerializedBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: dumpNamespace,
			Name:      "serialized_bytes",
			Help:      "total bytes produced by dump serialization",
		})
)

var registerOnce sync.Once

// Register 将本包全部指标注册到给定 Registerer。
// 多次调用只注册一次；传入 nil 时使用默认 Registerer。
func Register(r prometheus.Registerer) {
	registerOnce.Do(func() {
		if r == nil {
			r = prometheus.DefaultRegisterer
		}
		r.MustRegister(SinkWrites)
		r.MustRegister(DumpsSuppressed)
		r.MustRegister(SerializationErrors)
		r.MustRegister(SerializedBytes)
	})
}

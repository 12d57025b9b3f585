/*-
 * Copyright 2025 Carver Automation Corporation.
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

package metrics

import (
	"testing"
	"time"
)

// The poll loop writes one point per monitor per tick while API and
// websocket readers snapshot concurrently; these benchmarks mirror
// that write-mostly, read-while-writing load.

func BenchmarkRingBufferAdd(b *testing.B) {
	buffer := NewLockFreeBuffer(1000)
	now := time.Now()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buffer.Add(pingPoint(1, float64(i), now))
	}
}

func BenchmarkRingBufferGetPoints(b *testing.B) {
	buffer := NewLockFreeBuffer(1000)
	now := time.Now()

	for i := 0; i < 1000; i++ {
		buffer.Add(pingPoint(1, float64(i), now))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = buffer.GetPoints()
	}
}

func BenchmarkRingBufferReadDuringWrites(b *testing.B) {
	buffer := NewLockFreeBuffer(1000)
	now := time.Now()
	stop := make(chan struct{})

	go func() {
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				buffer.Add(pingPoint(1, float64(i), now))
			}
		}
	}()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = buffer.GetPoints()
	}

	b.StopTimer()
	close(stop)
}

func BenchmarkManagerAdd(b *testing.B) {
	const monitors = 50

	mgr := NewManager(60)
	now := time.Now()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mgr.Add(int64(i%monitors), pingPoint(int64(i%monitors), float64(i), now))
	}
}

func BenchmarkManagerGetPoints(b *testing.B) {
	mgr := NewManager(60)
	now := time.Now()

	for i := 0; i < 60; i++ {
		mgr.Add(7, pingPoint(7, float64(i), now))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = mgr.GetPoints(7)
	}
}

/*
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

// Package ping pkg/ping/pinger.go provides one-shot ICMP echo probes
// over a shared raw socket.
package ping

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/time/rate"
)

const (
	protocolICMP     = 1 // iana.ProtocolICMP
	readBufferSize   = 1500
	readDeadlineStep = 100 * time.Millisecond
)

// Pinger sends echo requests and matches replies to callers by the
// echo identifier/sequence pair. One listener goroutine serves all
// in-flight probes; requires CAP_NET_RAW or root.
type Pinger struct {
	conn    *icmp.PacketConn
	id      uint16
	limiter *rate.Limiter

	mu      sync.Mutex
	seq     uint16
	waiters map[uint16]chan time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// Config holds the pinger socket settings.
type Config struct {
	ListenAddr string // e.g., "0.0.0.0"
	RateLimit  int    // echo requests per second across all monitors
}

// NewPinger opens the shared ICMP socket and starts the reply listener.
func NewPinger(cfg Config) (*Pinger, error) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "0.0.0.0"
	}

	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 50
	}

	conn, err := icmp.ListenPacket("ip4:icmp", cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to open ICMP socket: %w", err)
	}

	p := &Pinger{
		conn:    conn,
		id:      uint16(os.Getpid() & 0xffff),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit),
		waiters: make(map[uint16]chan time.Time),
		done:    make(chan struct{}),
	}

	go p.listenForReplies()

	return p, nil
}

// Ping sends one echo request and waits up to timeout for the reply.
// A timed-out probe returns (0, false, nil); an error return means the
// probe could not be sent at all.
func (p *Pinger) Ping(ctx context.Context, host string, timeout time.Duration) (time.Duration, bool, error) {
	select {
	case <-p.done:
		return 0, false, ErrPingerStopped
	default:
	}

	addr, err := net.ResolveIPAddr("ip4", host)
	if err != nil {
		return 0, false, fmt.Errorf("failed to resolve %s: %w", host, err)
	}

	if addr.IP.To4() == nil {
		return 0, false, fmt.Errorf("%w: %s", ErrNotIPv4, host)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return 0, false, err
	}

	seq, reply := p.addWaiter()
	defer p.removeWaiter(seq)

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:  int(p.id),
			Seq: int(seq),
		},
	}

	b, err := msg.Marshal(nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to marshal echo request: %w", err)
	}

	sent := time.Now()

	if _, err := p.conn.WriteTo(b, addr); err != nil {
		return 0, false, fmt.Errorf("failed to send echo request to %s: %w", host, err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case received := <-reply:
		return received.Sub(sent), true, nil
	case <-timer.C:
		return 0, false, nil
	case <-ctx.Done():
		return 0, false, ctx.Err()
	case <-p.done:
		return 0, false, ErrPingerStopped
	}
}

// Stop closes the socket and wakes every in-flight probe.
func (p *Pinger) Stop() error {
	var err error

	p.stopOnce.Do(func() {
		close(p.done)
		err = p.conn.Close()
	})

	return err
}

func (p *Pinger) addWaiter() (uint16, chan time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	seq := p.seq
	reply := make(chan time.Time, 1)
	p.waiters[seq] = reply

	return seq, reply
}

func (p *Pinger) removeWaiter(seq uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.waiters, seq)
}

// deliver hands a reply timestamp to the waiter for seq, dropping
// duplicates and replies nobody is waiting on.
func (p *Pinger) deliver(seq uint16, received time.Time) {
	p.mu.Lock()
	reply, ok := p.waiters[seq]
	p.mu.Unlock()

	if !ok {
		return
	}

	select {
	case reply <- received:
	default:
	}
}

func (p *Pinger) listenForReplies() {
	packet := make([]byte, readBufferSize)

	for {
		select {
		case <-p.done:
			return
		default:
			if err := p.conn.SetReadDeadline(time.Now().Add(readDeadlineStep)); err != nil {
				continue
			}

			n, _, err := p.conn.ReadFrom(packet)
			if err != nil {
				var netErr net.Error
				if errors.As(err, &netErr) && netErr.Timeout() {
					continue
				}

				select {
				case <-p.done:
					return
				default:
					log.Printf("Error reading ICMP packet: %v", err)
					continue
				}
			}

			received := time.Now()

			msg, err := icmp.ParseMessage(protocolICMP, packet[:n])
			if err != nil {
				continue
			}

			if msg.Type != ipv4.ICMPTypeEchoReply {
				continue
			}

			echo, ok := msg.Body.(*icmp.Echo)
			if !ok {
				continue
			}

			if uint16(echo.ID) != p.id {
				continue
			}

			p.deliver(uint16(echo.Seq), received)
		}
	}
}

// Package server runs the resolver's network front end: a single UDP
// socket serviced by one dispatcher goroutine and a fixed pool of worker
// goroutines draining a shared channel.
package server

import (
	"context"
	"log/slog"
	"net"
	"runtime"

	"github.com/tugunchinov/cacheresolver/internal/dns"
	"github.com/tugunchinov/cacheresolver/internal/pool"
	"github.com/tugunchinov/cacheresolver/internal/resolver"
)

// bufferPool reuses fixed-size receive/encode buffers to cut GC pressure
// under sustained query load.
var bufferPool = pool.NewBuffers(dns.DefaultBufferSize)

// workItem is one decoded query awaiting resolution, enqueued by the
// dispatcher and drained by a worker.
type workItem struct {
	request *dns.DnsPacket
	peer    net.Addr
}

// Server is the single-socket UDP front end.
type Server struct {
	Resolver *resolver.Resolver
	Logger   *slog.Logger
	Workers  int // defaults to runtime.GOMAXPROCS(0) if <= 0

	conn *net.UDPConn
}

// Run binds addr, then blocks servicing queries until ctx is cancelled.
// It returns an error only when addr cannot be resolved or bound; receive
// errors on the bound socket are logged and do not end it.
func (s *Server) Run(ctx context.Context, addr string) error {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return err
	}
	s.Serve(ctx, conn)
	return nil
}

// Serve runs the dispatcher and worker pool over an already-bound socket,
// blocking until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, conn *net.UDPConn) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	s.conn = conn

	queue := make(chan workItem)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for i := 0; i < workers; i++ {
		go s.worker(queue)
	}

	s.dispatch(ctx, queue)
}

// dispatch is the single receive loop: read one datagram, decode it,
// enqueue it for a worker. Decode failures are logged and the datagram is
// dropped without a reply, so malformed input never triggers a reply.
func (s *Server) dispatch(ctx context.Context, queue chan<- workItem) {
	for {
		bufPtr := bufferPool.Get()
		buf := *bufPtr
		n, peer, err := s.conn.ReadFrom(buf)
		if err != nil {
			bufferPool.Put(bufPtr)
			if ctx.Err() != nil {
				return
			}
			s.Logger.Debug("udp receive failed", "error", err)
			continue
		}

		request, err := dns.ParsePacket(buf[:n])
		bufferPool.Put(bufPtr)
		if err != nil {
			s.Logger.Debug("dropping malformed datagram", "peer", peer, "error", err)
			continue
		}

		select {
		case queue <- workItem{request: request, peer: peer}:
		case <-ctx.Done():
			return
		}
	}
}

// worker drains the queue: resolve, encode, reply. Send failures are
// logged and ignored, never retried.
func (s *Server) worker(queue <-chan workItem) {
	for item := range queue {
		resp := s.Resolver.Resolve(context.Background(), item.request)

		bufPtr := bufferPool.Get()
		wbuf := dns.NewBuffer(*bufPtr)
		if err := resp.Encode(wbuf); err != nil {
			bufferPool.Put(bufPtr)
			s.Logger.Debug("failed to encode response", "peer", item.peer, "error", err)
			continue
		}

		if _, err := s.conn.WriteTo(wbuf.Bytes(), item.peer); err != nil {
			s.Logger.Debug("failed to send response", "peer", item.peer, "error", err)
		}
		bufferPool.Put(bufPtr)
	}
}

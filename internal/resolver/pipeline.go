// Package resolver implements the query resolution pipeline: cache lookup,
// then local zone lookup, then a single-hop upstream forward, in that
// order, with the second and third steps caching their result for the
// next lookup on the same name. No CNAME chasing, no negative caching,
// one upstream, one UDP hop with no retries.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"github.com/tugunchinov/cacheresolver/internal/cache"
	"github.com/tugunchinov/cacheresolver/internal/dns"
	"github.com/tugunchinov/cacheresolver/internal/zone"
)

// UpstreamTimeout bounds how long the pipeline waits for an upstream
// response before surfacing ServerFailure instead of blocking forever.
const UpstreamTimeout = 2 * time.Second

// bundle is the cached record-triple keyed by query name.
type bundle struct {
	answers     []dns.RawRecord
	authorities []dns.RawRecord
	additionals []dns.RawRecord
}

// Source identifies which pipeline step produced a response, for metrics.
type Source string

const (
	SourceCache    Source = "cache"
	SourceZone     Source = "zone"
	SourceUpstream Source = "upstream"
	SourceError    Source = "error"
)

// counters are atomically-updated resolution statistics surfaced by the
// admin API.
type counters struct {
	queries   atomic.Uint64
	cacheHits atomic.Uint64
	zoneHits  atomic.Uint64
	upstream  atomic.Uint64
	errors    atomic.Uint64
}

// Counters is a point-in-time snapshot of resolution statistics.
type Counters struct {
	Queries   uint64
	CacheHits uint64
	ZoneHits  uint64
	Upstream  uint64
	Errors    uint64
}

// Resolver runs the cache → zone → upstream pipeline for one server.
type Resolver struct {
	cache    *cache.Cache[string, bundle]
	zonePath string
	upstream string
	log      *slog.Logger

	dialUDP func(ctx context.Context, addr string) (net.Conn, error)

	counters counters
}

// New constructs a Resolver forwarding cache misses to upstream and
// consulting the zone file at zonePath.
func New(zonePath, upstream string, log *slog.Logger) *Resolver {
	r := &Resolver{
		cache:    cache.New[string, bundle](),
		zonePath: zonePath,
		upstream: upstream,
		log:      log,
	}
	r.dialUDP = func(ctx context.Context, addr string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "udp", addr)
	}
	return r
}

// Counters returns a snapshot of the resolution counters.
func (r *Resolver) Counters() Counters {
	return Counters{
		Queries:   r.counters.queries.Load(),
		CacheHits: r.counters.cacheHits.Load(),
		ZoneHits:  r.counters.zoneHits.Load(),
		Upstream:  r.counters.upstream.Load(),
		Errors:    r.counters.errors.Load(),
	}
}

// CacheSize reports the current number of cached names.
func (r *Resolver) CacheSize() int {
	return r.cache.Len()
}

// Resolve runs the full pipeline for request and returns the response
// packet to send back, never an error: every failure is translated into a
// ServerFailure (or FormatError) response packet instead.
func (r *Resolver) Resolve(ctx context.Context, request *dns.DnsPacket) *dns.DnsPacket {
	r.counters.queries.Add(1)

	if len(request.Questions) == 0 {
		return dns.NewResponseBuilder(request).WithResultCode(dns.ResultCodeFormatError).Build()
	}
	q := request.Questions[0]

	resp, err := r.tryLookup(ctx, request, q)
	if err != nil {
		r.counters.errors.Add(1)
		r.log.Debug("resolution failed", "name", q.Name, "error", err)
		return dns.NewResponseBuilder(request).WithResultCode(dns.ResultCodeServerFailure).Build()
	}
	return resp
}

func (r *Resolver) tryLookup(ctx context.Context, request *dns.DnsPacket, q dns.Question) (*dns.DnsPacket, error) {
	if b, ok := r.lookupCache(q.Name); ok {
		r.counters.cacheHits.Add(1)
		return responseFromBundle(request, b), nil
	}

	b, found, err := r.lookupZone(q)
	if err != nil {
		return nil, fmt.Errorf("zone lookup: %w", err)
	}
	if found {
		r.counters.zoneHits.Add(1)
		r.cache.Add(q.Name, b, cache.NoExpiration{})
		return responseFromBundle(request, b), nil
	}

	resp, err := r.lookupUpstream(ctx, request, q)
	if err != nil {
		return nil, fmt.Errorf("upstream lookup: %w", err)
	}
	r.counters.upstream.Add(1)

	if resp.Header.ResultCode == dns.ResultCodeNoError {
		ttl, ok := resp.MinTTL()
		if !ok {
			ttl = 0
		}
		r.cache.Add(q.Name, bundle{
			answers:     resp.Answers,
			authorities: resp.Authorities,
			additionals: resp.Additionals,
		}, cache.AbsoluteExpiration(time.Duration(ttl)*time.Second))
	}
	return resp, nil
}

func (r *Resolver) lookupCache(name string) (bundle, bool) {
	return r.cache.Get(name)
}

func (r *Resolver) lookupZone(q dns.Question) (bundle, bool, error) {
	recs, err := zone.Lookup(r.zonePath, q.Name)
	if err != nil {
		return bundle{}, false, err
	}
	if len(recs) == 0 {
		return bundle{}, false, nil
	}

	answers := make([]dns.RawRecord, 0, len(recs))
	for _, rec := range recs {
		answers = append(answers, dns.RawRecord{
			Name:   rec.Name,
			Type:   dns.TypeA,
			Class:  dns.ClassIN,
			TTL:    zone.RecordTTL,
			RDData: []byte(rec.IP),
		})
	}
	return bundle{answers: answers}, true, nil
}

// lookupUpstream forwards q to the configured upstream over a single
// ephemeral UDP socket: one send, one receive, no retries.
func (r *Resolver) lookupUpstream(ctx context.Context, request *dns.DnsPacket, q dns.Question) (*dns.DnsPacket, error) {
	ctx, cancel := context.WithTimeout(ctx, UpstreamTimeout)
	defer cancel()

	conn, err := r.dialUDP(ctx, r.upstream)
	if err != nil {
		return nil, fmt.Errorf("dial upstream %s: %w", r.upstream, err)
	}
	defer conn.Close()

	query := &dns.DnsPacket{
		Header: dns.Header{
			ID:               request.Header.ID,
			Type:             dns.MessageTypeQuery,
			OpCode:           dns.OpCodeQuery,
			RecursionDesired: true,
		},
		Questions: []dns.Question{q},
	}

	wbuf := dns.NewWriteBuffer(dns.DefaultBufferSize)
	if err := query.Encode(wbuf); err != nil {
		return nil, fmt.Errorf("encode upstream query: %w", err)
	}
	if _, err := conn.Write(wbuf.Bytes()); err != nil {
		return nil, fmt.Errorf("send upstream query: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}
	recvBuf := make([]byte, dns.DefaultBufferSize)
	n, err := conn.Read(recvBuf)
	if err != nil {
		return nil, fmt.Errorf("receive upstream response: %w", err)
	}

	resp, err := dns.ParsePacket(recvBuf[:n])
	if err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	return resp, nil
}

func responseFromBundle(request *dns.DnsPacket, b bundle) *dns.DnsPacket {
	return dns.NewResponseBuilder(request).
		WithAnswers(b.answers).
		WithAuthorities(b.authorities).
		WithAdditionals(b.additionals).
		Build()
}

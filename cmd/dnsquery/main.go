// Command dnsquery sends a single DNS query to a server over UDP and
// prints the decoded response, for exercising the resolver from the
// command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tugunchinov/cacheresolver/internal/dns"
)

func main() {
	var (
		server   = flag.String("server", "8.8.8.8:53", "DNS server HOST:PORT")
		name     = flag.String("name", "example.com", "Query name")
		qtype    = flag.Uint("qtype", 1, "Query type (numeric, A=1)")
		timeout  = flag.Duration("timeout", 2*time.Second, "Timeout")
		recvSize = flag.Int("recv-size", dns.DefaultBufferSize, "UDP receive buffer size")
		quiet    = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	resp, err := queryUDP(*server, *name, dns.QueryType(*qtype), *timeout, *recvSize)
	if err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "dnsquery error: %v\n", err)
		}
		os.Exit(1)
	}
	if *quiet {
		return
	}

	p, err := dns.ParsePacket(resp)
	if err != nil {
		fmt.Printf("received %d bytes (unparseable): %v\n", len(resp), err)
		return
	}

	fmt.Printf("id=%d rcode=%s answers=%d authorities=%d additionals=%d\n",
		p.Header.ID,
		p.Header.ResultCode,
		len(p.Answers),
		len(p.Authorities),
		len(p.Additionals),
	)

	rows := make([]string, 0, len(p.Answers))
	for _, rr := range p.Answers {
		rows = append(rows, formatRR(rr))
	}
	sort.Strings(rows)
	for _, s := range rows {
		fmt.Println(s)
	}
}

func queryUDP(server, name string, qtype dns.QueryType, timeout time.Duration, recvSize int) ([]byte, error) {
	addr, err := net.ResolveUDPAddr("udp", server)
	if err != nil {
		return nil, err
	}
	c, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	reqBytes, err := buildQuery(name, qtype)
	if err != nil {
		return nil, err
	}
	_ = c.SetDeadline(time.Now().Add(timeout))
	if _, err := c.Write(reqBytes); err != nil {
		return nil, err
	}
	buf := make([]byte, recvSize)
	n, err := c.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func buildQuery(name string, qtype dns.QueryType) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name required")
	}

	p := &dns.DnsPacket{
		Header: dns.Header{
			ID:               uint16(rand.Intn(1 << 16)),
			Type:             dns.MessageTypeQuery,
			OpCode:           dns.OpCodeQuery,
			RecursionDesired: true,
		},
		Questions: []dns.Question{{Name: strings.ToLower(strings.TrimSuffix(name, ".")), Type: qtype, Class: dns.ClassIN}},
	}

	buf := dns.NewWriteBuffer(dns.DefaultBufferSize)
	if err := p.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatRR(rr dns.RawRecord) string {
	name := rr.Name
	if name == "" {
		name = "."
	}
	switch rr.Type {
	case dns.TypeA:
		if len(rr.RDData) == 4 {
			ip := net.IP(rr.RDData)
			return fmt.Sprintf("%s %d IN A %s", name, rr.TTL, ip.String())
		}
	case dns.TypeAAAA:
		if len(rr.RDData) == 16 {
			ip := net.IP(rr.RDData)
			return fmt.Sprintf("%s %d IN AAAA %s", name, rr.TTL, ip.String())
		}
	}
	return fmt.Sprintf("%s %d IN %s (%d bytes)", name, rr.TTL, rr.Type, len(rr.RDData))
}

// Package zone implements the resolver's local authoritative zone file: a
// flat, line-based text format mapping names to A/IN records, streamed
// fresh on every lookup rather than loaded once into an index. Each
// non-blank, non-comment line holds exactly four whitespace-separated
// tokens: NAME CLASS TYPE RDATA.
package zone

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
)

// ErrBrokenBindFile is returned when a non-comment, non-blank zone line
// does not have exactly four whitespace-separated tokens, or its fields
// cannot be parsed.
var ErrBrokenBindFile = errors.New("broken bind file")

// RecordTTL is the fixed TTL attached to every record synthesized from the
// zone file. The format carries no per-record TTL field.
const RecordTTL = 300

// Record is a single local A/IN answer.
type Record struct {
	Name string
	IP   net.IP
}

// Lookup streams the zone file at path line by line and returns one Record
// for every line whose NAME matches name (case-insensitive). It returns no
// error and a nil slice when the file has no matching line; it returns
// ErrBrokenBindFile as soon as a malformed line is encountered, even when
// a match was already found earlier in the file.
func Lookup(path string, name string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zone file: %w", err)
	}
	defer f.Close()

	return lookup(f, name)
}

func lookup(r io.Reader, name string) ([]Record, error) {
	want := normalizeName(name)

	var out []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		if strings.HasPrefix(tokens[0], "#") {
			continue
		}
		if len(tokens) != 4 {
			return nil, fmt.Errorf("%w: want 4 fields, got %d: %q", ErrBrokenBindFile, len(tokens), line)
		}

		recName, class, typ, rdata := tokens[0], tokens[1], tokens[2], tokens[3]
		if !strings.EqualFold(class, "IN") {
			return nil, fmt.Errorf("%w: unsupported class %q", ErrBrokenBindFile, class)
		}
		if !strings.EqualFold(typ, "A") {
			return nil, fmt.Errorf("%w: unsupported type %q", ErrBrokenBindFile, typ)
		}

		ip := net.ParseIP(rdata).To4()
		if ip == nil {
			return nil, fmt.Errorf("%w: invalid IPv4 literal %q", ErrBrokenBindFile, rdata)
		}

		if normalizeName(recName) == want {
			out = append(out, Record{Name: normalizeName(recName), IP: ip})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBrokenBindFile, err)
	}
	return out, nil
}

// normalizeName lower-cases name and strips a single trailing dot, the
// form zone names are stored and compared in.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}

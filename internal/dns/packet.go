package dns

import (
	"fmt"

	"github.com/tugunchinov/cacheresolver/internal/helpers"
)

// DnsPacket is a fully decoded DNS message.
type DnsPacket struct {
	Header      Header
	Questions   []Question
	Answers     []RawRecord
	Authorities []RawRecord
	Additionals []RawRecord
}

// ParsePacket decodes a complete message from raw wire bytes.
func ParsePacket(raw []byte) (*DnsPacket, error) {
	b := NewBuffer(raw)
	p := &DnsPacket{}

	if err := p.Header.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDNSError, err)
	}

	p.Questions = make([]Question, p.Header.QuestionCount)
	for i := range p.Questions {
		if err := p.Questions[i].Decode(b); err != nil {
			return nil, fmt.Errorf("%w: question %d: %w", ErrDNSError, i, err)
		}
	}

	p.Answers = make([]RawRecord, p.Header.AnswerCount)
	for i := range p.Answers {
		if err := p.Answers[i].Decode(b); err != nil {
			return nil, fmt.Errorf("%w: answer %d: %w", ErrDNSError, i, err)
		}
	}

	p.Authorities = make([]RawRecord, p.Header.AuthorityCount)
	for i := range p.Authorities {
		if err := p.Authorities[i].Decode(b); err != nil {
			return nil, fmt.Errorf("%w: authority %d: %w", ErrDNSError, i, err)
		}
	}

	p.Additionals = make([]RawRecord, p.Header.AdditionalCount)
	for i := range p.Additionals {
		if err := p.Additionals[i].Decode(b); err != nil {
			return nil, fmt.Errorf("%w: additional %d: %w", ErrDNSError, i, err)
		}
	}

	return p, nil
}

// Encode serializes the packet into buf, syncing the header's section
// counts with the actual slice lengths first.
func (p *DnsPacket) Encode(buf *Buffer) error {
	p.Header.QuestionCount = helpers.ClampIntToUint16(len(p.Questions))
	p.Header.AnswerCount = helpers.ClampIntToUint16(len(p.Answers))
	p.Header.AuthorityCount = helpers.ClampIntToUint16(len(p.Authorities))
	p.Header.AdditionalCount = helpers.ClampIntToUint16(len(p.Additionals))

	if err := p.Header.Encode(buf); err != nil {
		return fmt.Errorf("%w: header: %w", ErrDNSError, err)
	}
	for i := range p.Questions {
		if err := p.Questions[i].Encode(buf); err != nil {
			return fmt.Errorf("%w: question %d: %w", ErrDNSError, i, err)
		}
	}
	for i := range p.Answers {
		if err := p.Answers[i].Encode(buf); err != nil {
			return fmt.Errorf("%w: answer %d: %w", ErrDNSError, i, err)
		}
	}
	for i := range p.Authorities {
		if err := p.Authorities[i].Encode(buf); err != nil {
			return fmt.Errorf("%w: authority %d: %w", ErrDNSError, i, err)
		}
	}
	for i := range p.Additionals {
		if err := p.Additionals[i].Encode(buf); err != nil {
			return fmt.Errorf("%w: additional %d: %w", ErrDNSError, i, err)
		}
	}
	return nil
}

// MinTTL returns the smallest TTL across every record in every section, or
// false if the packet carries no records at all. A response with records
// in only some sections is still covered: the minimum is taken across
// whichever sections are non-empty.
func (p *DnsPacket) MinTTL() (uint32, bool) {
	var (
		min   uint32
		found bool
	)
	consider := func(records []RawRecord) {
		for _, r := range records {
			if !found || r.TTL < min {
				min = r.TTL
				found = true
			}
		}
	}
	consider(p.Answers)
	consider(p.Authorities)
	consider(p.Additionals)
	return min, found
}

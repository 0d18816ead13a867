package dns

import (
	"fmt"

	"github.com/tugunchinov/cacheresolver/internal/helpers"
)

// RawRecord is a type-agnostic resource record: the wire codec never
// interprets rdata, so records of an unknown or unhandled type round-trip
// byte-for-byte instead of being dropped or rejected.
type RawRecord struct {
	Name   string
	Type   QueryType
	Class  QueryClass
	TTL    uint32
	RDData []byte
}

// Decode reads a resource record at the buffer's current position.
func (r *RawRecord) Decode(b *Buffer) error {
	name, err := b.ReadName()
	if err != nil {
		return fmt.Errorf("record name: %w", err)
	}
	rtype, err := b.ReadU16()
	if err != nil {
		return fmt.Errorf("record type: %w", err)
	}
	rclass, err := b.ReadU16()
	if err != nil {
		return fmt.Errorf("record class: %w", err)
	}
	ttl, err := b.ReadU32()
	if err != nil {
		return fmt.Errorf("record ttl: %w", err)
	}
	rdlen, err := b.ReadU16()
	if err != nil {
		return fmt.Errorf("record rdlength: %w", err)
	}
	rdata, err := b.ReadBytes(int(rdlen))
	if err != nil {
		return fmt.Errorf("record rdata: %w", err)
	}

	r.Name = name
	r.Type = QueryType(rtype)
	r.Class = QueryClass(rclass)
	r.TTL = ttl
	r.RDData = rdata
	return nil
}

// Encode writes a resource record at the buffer's current position.
func (r *RawRecord) Encode(b *Buffer) error {
	if err := b.WriteName(r.Name); err != nil {
		return fmt.Errorf("record name: %w", err)
	}
	if err := b.WriteU16(uint16(r.Type)); err != nil {
		return err
	}
	if err := b.WriteU16(uint16(r.Class)); err != nil {
		return err
	}
	if err := b.WriteU32(r.TTL); err != nil {
		return err
	}
	if err := b.WriteU16(helpers.ClampIntToUint16(len(r.RDData))); err != nil {
		return err
	}
	return b.WriteBytes(r.RDData)
}

package dns

import "fmt"

// Question is a single entry in the message's question section.
type Question struct {
	Name  string
	Type  QueryType
	Class QueryClass
}

// Decode reads a question entry at the buffer's current position.
func (q *Question) Decode(b *Buffer) error {
	name, err := b.ReadName()
	if err != nil {
		return fmt.Errorf("question name: %w", err)
	}
	qtype, err := b.ReadU16()
	if err != nil {
		return fmt.Errorf("question type: %w", err)
	}
	qclass, err := b.ReadU16()
	if err != nil {
		return fmt.Errorf("question class: %w", err)
	}
	q.Name = name
	q.Type = QueryType(qtype)
	q.Class = QueryClass(qclass)
	return nil
}

// Encode writes a question entry at the buffer's current position.
func (q *Question) Encode(b *Buffer) error {
	if err := b.WriteName(q.Name); err != nil {
		return fmt.Errorf("question name: %w", err)
	}
	if err := b.WriteU16(uint16(q.Type)); err != nil {
		return err
	}
	return b.WriteU16(uint16(q.Class))
}

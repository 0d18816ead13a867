package dns

// PacketBuilder assembles a response packet around an original request. It
// always emits Opcode = Query, AuthoritativeAnswer = false, and
// Truncated = false, regardless of the request: this resolver never
// answers authoritatively and never truncates, so those fields are not
// exposed as settable here.
type PacketBuilder struct {
	id                 uint16
	recursionDesired   bool
	recursionAvailable bool
	resultCode         ResultCode
	questions          []Question
	answers            []RawRecord
	authorities        []RawRecord
	additionals        []RawRecord
}

// NewResponseBuilder seeds a builder with the id and recursion-desired bit
// mirrored from the incoming request, as every response to it must.
func NewResponseBuilder(request *DnsPacket) *PacketBuilder {
	return &PacketBuilder{
		id:               request.Header.ID,
		recursionDesired: request.Header.RecursionDesired,
		questions:        append([]Question(nil), request.Questions...),
	}
}

// WithRecursionAvailable sets whether this server offers recursion.
func (pb *PacketBuilder) WithRecursionAvailable(v bool) *PacketBuilder {
	pb.recursionAvailable = v
	return pb
}

// WithResultCode sets the response's RCODE.
func (pb *PacketBuilder) WithResultCode(rc ResultCode) *PacketBuilder {
	pb.resultCode = rc
	return pb
}

// WithAnswers replaces the answer section.
func (pb *PacketBuilder) WithAnswers(records []RawRecord) *PacketBuilder {
	pb.answers = records
	return pb
}

// WithAuthorities replaces the authority section.
func (pb *PacketBuilder) WithAuthorities(records []RawRecord) *PacketBuilder {
	pb.authorities = records
	return pb
}

// WithAdditionals replaces the additional section.
func (pb *PacketBuilder) WithAdditionals(records []RawRecord) *PacketBuilder {
	pb.additionals = records
	return pb
}

// Build produces the final packet.
func (pb *PacketBuilder) Build() *DnsPacket {
	return &DnsPacket{
		Header: Header{
			ID:                  pb.id,
			Type:                MessageTypeResponse,
			OpCode:              OpCodeQuery,
			AuthoritativeAnswer: false,
			Truncated:           false,
			RecursionDesired:    pb.recursionDesired,
			RecursionAvailable:  pb.recursionAvailable,
			ResultCode:          pb.resultCode,
		},
		Questions:   pb.questions,
		Answers:     pb.answers,
		Authorities: pb.authorities,
		Additionals: pb.additionals,
	}
}

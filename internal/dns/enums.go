package dns

import "fmt"

// MessageType distinguishes a query from a response (RFC 1035 §4.1.1, QR bit).
type MessageType uint8

const (
	MessageTypeQuery    MessageType = 0
	MessageTypeResponse MessageType = 1
)

// OpCode is the four-bit OPCODE field. Values 3-15 are reserved by RFC 1035
// but round-trip losslessly as their raw OpCode value (IsKnown reports
// false) rather than failing decode.
type OpCode uint8

const (
	OpCodeQuery  OpCode = 0
	OpCodeIQuery OpCode = 1
	OpCodeStatus OpCode = 2
)

// IsKnown reports whether the opcode is one of the three values this
// resolver recognizes by name.
func (o OpCode) IsKnown() bool {
	return o <= OpCodeStatus
}

func (o OpCode) String() string {
	switch o {
	case OpCodeQuery:
		return "QUERY"
	case OpCodeIQuery:
		return "IQUERY"
	case OpCodeStatus:
		return "STATUS"
	default:
		return fmt.Sprintf("RESERVED(%d)", uint8(o))
	}
}

// ResultCode is the four-bit RCODE field. Only 0-5 are defined; any other
// value fails to decode with ErrUnknownResultCode.
type ResultCode uint8

const (
	ResultCodeNoError        ResultCode = 0
	ResultCodeFormatError    ResultCode = 1
	ResultCodeServerFailure  ResultCode = 2
	ResultCodeNameError      ResultCode = 3
	ResultCodeNotImplemented ResultCode = 4
	ResultCodeRefused        ResultCode = 5
)

// ParseResultCode validates v against the known RCODE range.
func ParseResultCode(v uint8) (ResultCode, error) {
	if v > uint8(ResultCodeRefused) {
		return 0, fmt.Errorf("%w: rcode %d: %w", ErrDNSError, v, ErrUnknownResultCode)
	}
	return ResultCode(v), nil
}

func (r ResultCode) String() string {
	switch r {
	case ResultCodeNoError:
		return "NOERROR"
	case ResultCodeFormatError:
		return "FORMERR"
	case ResultCodeServerFailure:
		return "SERVFAIL"
	case ResultCodeNameError:
		return "NXDOMAIN"
	case ResultCodeNotImplemented:
		return "NOTIMP"
	case ResultCodeRefused:
		return "REFUSED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(r))
	}
}

// QueryType is the 16-bit TYPE/QTYPE field. The codec treats every value as
// opaque data; these constants exist only for the zone loader and CLI tools
// to recognize the record kinds this resolver actually synthesizes.
type QueryType uint16

const (
	TypeA     QueryType = 1
	TypeNS    QueryType = 2
	TypeCNAME QueryType = 5
	TypeSOA   QueryType = 6
	TypePTR   QueryType = 12
	TypeMX    QueryType = 15
	TypeTXT   QueryType = 16
	TypeAAAA  QueryType = 28
)

func (t QueryType) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeNS:
		return "NS"
	case TypeCNAME:
		return "CNAME"
	case TypeSOA:
		return "SOA"
	case TypePTR:
		return "PTR"
	case TypeMX:
		return "MX"
	case TypeTXT:
		return "TXT"
	case TypeAAAA:
		return "AAAA"
	default:
		return fmt.Sprintf("TYPE%d", uint16(t))
	}
}

// QueryClass is the 16-bit CLASS/QCLASS field.
type QueryClass uint16

const (
	ClassIN QueryClass = 1
)

func (c QueryClass) String() string {
	if c == ClassIN {
		return "IN"
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

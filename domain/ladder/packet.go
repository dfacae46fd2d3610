package ladder

import "github.com/pterm/pterm"

// Kind is the outcome carried by a packet.
type Kind uint8

const (
	Gold Kind = iota + 1
	Stop
	Dead
)

// PacketsPerRung is the number of packets laid out on every rung.
const PacketsPerRung = 3

// KindFromCode maps the codes 1, 2 and 3 to Gold, Stop and Dead.
// Any other code falls back to Stop.
func KindFromCode(code int) Kind {
	switch code {
	case 1:
		return Gold
	case 2:
		return Stop
	case 3:
		return Dead
	default:
		return Stop
	}
}

func (k Kind) String() string {
	switch k {
	case Gold:
		return "Gold"
	case Stop:
		return "Stop"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Colored returns the kind name styled for terminal output.
func (k Kind) Colored() string {
	switch k {
	case Gold:
		return pterm.LightYellow(k.String())
	case Stop:
		return pterm.LightCyan(k.String())
	case Dead:
		return pterm.LightRed(k.String())
	default:
		return k.String()
	}
}

// Packet is a single openable slot on a rung. The zero Packet has no kind and
// is never produced by a ladder.
type Packet struct {
	kind Kind
}

// NewPacket creates a packet of the given kind.
func NewPacket(kind Kind) Packet {
	return Packet{kind: kind}
}

// Kind returns the outcome carried by the packet.
func (p Packet) Kind() Kind {
	return p.kind
}

func (p Packet) String() string {
	return p.kind.String()
}

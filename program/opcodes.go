package program

// Node-kind prefix codes (MSB-first). Core combinators use 5 bits,
// hidden and witness 4 bits, word and jet 2 bits: the latter two head
// effectively unbounded payload spaces and get the short prefixes.
const (
	prefixComp       = 0b00000
	prefixCase       = 0b00001
	prefixPair       = 0b00010
	prefixDisconnect = 0b00011
	prefixInjl       = 0b00100
	prefixInjr       = 0b00101
	prefixTake       = 0b00110
	prefixDrop       = 0b00111
	prefixIden       = 0b01000
	prefixUnit       = 0b01001
	prefixFail       = 0b01010
	prefixStop       = 0b01011
	prefixHidden     = 0b0110
	prefixWitness    = 0b0111
	prefixWord       = 0b10
	prefixJet        = 0b11
)

// Payload identifies the operand recipe that follows an opcode prefix.
type Payload int

const (
	PayloadNone        Payload = iota // no operands
	PayloadOneChild                   // one relative child offset
	PayloadTwoChildren                // two relative child offsets
	PayloadBytes                      // raw byte string (hidden digest, fail entropy)
	PayloadBits                       // raw bit pattern (jet)
	PayloadWord                       // natural depth, then a coded value
)

// Opcode describes one node kind: its prefix code and operand recipe.
type Opcode struct {
	Name    string
	Bits    uint64
	Width   int
	Payload Payload
}

// Opcodes lists every node kind of the program format. The set of
// (Bits, Width) pairs is prefix-free; the external decoder relies on
// greedy unambiguous matching. Never mutated.
var Opcodes = []Opcode{
	{Name: "comp", Bits: prefixComp, Width: 5, Payload: PayloadTwoChildren},
	{Name: "case", Bits: prefixCase, Width: 5, Payload: PayloadTwoChildren},
	{Name: "pair", Bits: prefixPair, Width: 5, Payload: PayloadTwoChildren},
	{Name: "disconnect", Bits: prefixDisconnect, Width: 5, Payload: PayloadTwoChildren},
	{Name: "injl", Bits: prefixInjl, Width: 5, Payload: PayloadOneChild},
	{Name: "injr", Bits: prefixInjr, Width: 5, Payload: PayloadOneChild},
	{Name: "take", Bits: prefixTake, Width: 5, Payload: PayloadOneChild},
	{Name: "drop", Bits: prefixDrop, Width: 5, Payload: PayloadOneChild},
	{Name: "iden", Bits: prefixIden, Width: 5, Payload: PayloadNone},
	{Name: "unit", Bits: prefixUnit, Width: 5, Payload: PayloadNone},
	{Name: "fail", Bits: prefixFail, Width: 5, Payload: PayloadBytes},
	{Name: "stop", Bits: prefixStop, Width: 5, Payload: PayloadNone},
	{Name: "hidden", Bits: prefixHidden, Width: 4, Payload: PayloadBytes},
	{Name: "witness", Bits: prefixWitness, Width: 4, Payload: PayloadNone},
	{Name: "word", Bits: prefixWord, Width: 2, Payload: PayloadWord},
	{Name: "jet", Bits: prefixJet, Width: 2, Payload: PayloadBits},
}

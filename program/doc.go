// Package program encodes Simplicity programs node by node.
//
// A serialized program is:
//
//	natural(node count) · node* · witness preamble · witness bits*
//
// where each node is a fixed prefix code followed by its operands:
// relative child offsets as naturals, raw payload bytes for hidden and
// fail nodes, a raw bit pattern for jets, or a depth plus a canonically
// coded value for words.
//
// Construction is staged. Preamble starts a Program, which accepts any
// node emissions in any order; WitnessPreamble moves to the Witness
// stage, which accepts raw witness bits; Finish asserts byte alignment.
// Each stage is a distinct type exposing only the operations legal at
// that point, so a misordered call does not compile. The one violation
// the format forbids but tests need, trailing bits after the witness
// block, is reachable only through the explicitly named IllegalPadding
// transition. A stage value is dead after a transition; only the value
// returned by the transition may be used.
//
// Nothing here validates what it emits. Child offsets may dangle, a
// hidden payload may have the wrong length, a declared witness may
// never materialize: constructing such streams is the purpose of this
// package.
package program

package vectors

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/uncomputable/asset-gen/bitstream"
	"github.com/uncomputable/asset-gen/program"
)

// Vector is one decoder test asset: a byte string and the script error
// the decoder is expected to report for it.
type Vector struct {
	Name     string
	Bytes    []byte
	Expected ScriptError
}

// dagLenMax is the consensus bound on the number of program nodes.
const dagLenMax = 8_000_000

// All builds the full corpus. The result is byte-identical across
// calls; vectors double as golden test data.
func All() []Vector {
	log := Logger()
	var vs []Vector
	for _, g := range []struct {
		name  string
		build func() []Vector
	}{
		{"bitstream_eof", bitstreamEOF},
		{"data_out_of_range", dataOutOfRange},
		{"data_out_of_order", dataOutOfOrder},
		{"forbidden_nodes", forbiddenNodes},
		{"hidden", hiddenNodes},
		{"malleability", malleability},
		{"type_inference", typeInference},
		{"witness", witnessBlocks},
		{"unshared_subexpression", unsharedSubexpression},
		{"exec_memory", execMemory},
	} {
		built := g.build()
		log.Debug("built vector group",
			zap.String("group", g.name),
			zap.Int("count", len(built)))
		vs = append(vs, built...)
	}
	log.Info("built corpus", zap.Int("vectors", len(vs)))
	return vs
}

// flush finalizes a witness-stage builder, keeping the bytes whether or
// not the stream ended byte-aligned.
func flush(w *program.Witness) []byte {
	return bitstream.AllowPadding(w.Flush())
}

func bitstreamEOF() []Vector {
	// Program that hits EOF inside the word payload unless the value
	// matches the declared depth (depth 7 means 64 bits).
	wordProgram := func(v *program.Value) []byte {
		return flush(program.Preamble(3).
			Word(7, v).
			Unit().
			Comp(2, 1).
			WitnessPreamble(0))
	}

	return []Vector{
		{
			Name:     "bitstream_eof/empty_program",
			Bytes:    []byte{},
			Expected: BitstreamEOF,
		},
		{
			Name: "bitstream_eof/unfinished_program_length",
			Bytes: bitstream.AllowPadding(program.Preamble(16).
				AssertBitsWritten(8 + 3).
				DeleteBits(3).
				Flush()),
			Expected: BitstreamEOF,
		},
		{
			Name: "bitstream_eof/unfinished_combinator_body",
			Bytes: bitstream.AllowPadding(program.Preamble(3).
				Unit().
				Iden().
				Comp(2, 1).
				AssertBitsWritten(2*8 + 6).
				DeleteBits(6).
				Flush()),
			Expected: BitstreamEOF,
		},
		{
			// Longer preamble than needed so the cut lands inside the
			// child index rather than the opcode.
			Name: "bitstream_eof/unfinished_combinator_child_index",
			Bytes: bitstream.AllowPadding(program.Preamble(4).
				Unit().
				Iden().
				Comp(2, 1).
				AssertBitsWritten(3*8 + 1).
				DeleteBits(1).
				Flush()),
			Expected: BitstreamEOF,
		},
		{
			Name: "bitstream_eof/finished_combinator",
			Bytes: flush(program.Preamble(3).
				Unit().
				Iden().
				Comp(2, 1).
				WitnessPreamble(0)),
			Expected: OK,
		},
		{
			Name: "bitstream_eof/unfinished_witness_length",
			Bytes: bitstream.AllowPadding(program.Preamble(1).
				Unit().
				WitnessPreamble(16).
				AssertBitsWritten(2*8 + 2).
				DeleteBits(2).
				Flush()),
			Expected: BitstreamEOF,
		},
		{
			// Declares one witness bit and provides none.
			Name: "bitstream_eof/unfinished_witness_block",
			Bytes: flush(program.Preamble(1).
				Unit().
				WitnessPreamble(1)),
			Expected: BitstreamEOF,
		},
		{
			// Same shape at the largest in-range witness length.
			Name: "bitstream_eof/unfinished_witness_block2",
			Bytes: flush(program.Preamble(1).
				Unit().
				WitnessPreamble(1<<31 - 1)),
			Expected: BitstreamEOF,
		},
		{
			// Jet encodings can drift between consensus releases; the
			// exact pattern only matters for the bit accounting here.
			Name: "bitstream_eof/unfinished_jet_body",
			Bytes: bitstream.AllowPadding(program.Preamble(3).
				Jet(462384, 19).
				AssertBitsWritten(3 * 8).
				DeleteBits(8).
				Flush()),
			Expected: BitstreamEOF,
		},
		{
			Name: "bitstream_eof/finished_jet_body",
			Bytes: flush(program.Preamble(3).
				Jet(462384, 19).
				Unit().
				Comp(2, 1).
				WitnessPreamble(0)),
			Expected: OK,
		},
		{
			Name:     "bitstream_eof/unfinished_word",
			Bytes:    wordProgram(program.U1(0)),
			Expected: BitstreamEOF,
		},
		{
			Name:     "bitstream_eof/finished_word",
			Bytes:    wordProgram(program.U64(^uint64(0))),
			Expected: OK,
		},
	}
}

func dataOutOfRange() []Vector {
	// Witness lengths of 2^31 and above are out of range; below that
	// the parser runs past the declared length and hits EOF instead.
	// Writing out 2 GiB of witness bits is not required either way.
	witnessLengthProgram := func(bitLen int) []byte {
		return flush(program.Preamble(3).
			Witness().
			Unit().
			Comp(2, 1).
			WitnessPreamble(bitLen))
	}

	// Out of range iff the left offset points past the program start.
	childIndexProgram := func(left uint64) []byte {
		return flush(program.Preamble(2).
			Unit().
			Comp(left, 1).
			WitnessPreamble(0))
	}

	// Word depths above 32 (values wider than 2^31 bits) are out of
	// range; at the bound the parser runs out of bits instead.
	wordDepthProgram := func(depth uint64) []byte {
		return bitstream.AllowPadding(program.Preamble(1).
			Word(depth, program.U1(0)).
			Flush())
	}

	return []Vector{
		{
			Name: "data_out_of_range/program_length_exceeds_max",
			Bytes: bitstream.AllowPadding(program.Preamble(dagLenMax + 1).
				Flush()),
			Expected: DataOutOfRange,
		},
		{
			// In-range length; the parser then runs out of bits. A
			// program of eight million real nodes is not the point.
			Name: "data_out_of_range/program_length_ok",
			Bytes: bitstream.AllowPadding(program.Preamble(dagLenMax).
				RawBits(0b111111, 6).
				AssertBitsWritten(5 * 8).
				Flush()),
			Expected: BitstreamEOF,
		},
		{
			Name:     "data_out_of_range/witness_length_exceeds_max",
			Bytes:    witnessLengthProgram(1 << 31),
			Expected: DataOutOfRange,
		},
		{
			Name:     "data_out_of_range/witness_length_ok",
			Bytes:    witnessLengthProgram(1<<31 - 1),
			Expected: BitstreamEOF,
		},
		{
			Name:     "data_out_of_range/relative_child_index_too_large",
			Bytes:    childIndexProgram(2),
			Expected: DataOutOfRange,
		},
		{
			Name:     "data_out_of_range/relative_child_index_ok",
			Bytes:    childIndexProgram(1),
			Expected: OK,
		},
		{
			// All-ones is unlikely to become a defined jet any time
			// soon.
			Name: "data_out_of_range/undefined_jet",
			Bytes: flush(program.Preamble(1).
				Jet(^uint64(0), 64).
				WitnessPreamble(0)),
			Expected: DataOutOfRange,
		},
		{
			Name:     "data_out_of_range/word_depth_exceeds_max",
			Bytes:    wordDepthProgram(33),
			Expected: DataOutOfRange,
		},
		{
			Name:     "data_out_of_range/word_depth_ok",
			Bytes:    wordDepthProgram(32),
			Expected: BitstreamEOF,
		},
	}
}

func dataOutOfOrder() []Vector {
	// comp's children are unit (offset 2) and iden (offset 1) in
	// canonical order; swapping the offsets serializes the same DAG
	// out of order.
	orderProgram := func(left, right uint64) []byte {
		return flush(program.Preamble(3).
			Unit().
			Iden().
			Comp(left, right).
			WitnessPreamble(0))
	}

	return []Vector{
		{
			Name:     "data_out_of_order/not_in_canonical_order",
			Bytes:    orderProgram(1, 2),
			Expected: DataOutOfOrder,
		},
		{
			Name:     "data_out_of_order/in_canonical_order",
			Bytes:    orderProgram(2, 1),
			Expected: OK,
		},
	}
}

func forbiddenNodes() []Vector {
	return []Vector{
		{
			Name: "fail_code/fail_node",
			Bytes: flush(program.Preamble(1).
				Fail(make([]byte, 64)).
				WitnessPreamble(0)),
			Expected: FailCode,
		},
		{
			Name: "stop_code/stop_code",
			Bytes: bitstream.AllowPadding(program.Preamble(1).
				Stop().
				Flush()),
			Expected: StopCode,
		},
	}
}

func hiddenNodes() []Vector {
	digest := make([]byte, 32)

	return []Vector{
		{
			Name: "hidden/comp_hidden_child",
			Bytes: flush(program.Preamble(3).
				Hidden(digest).
				Unit().
				Comp(2, 1).
				WitnessPreamble(0)),
			Expected: Hidden,
		},
		{
			Name: "hidden/two_hidden_children",
			Bytes: flush(program.Preamble(3).
				Hidden(digest).
				Hidden(digest).
				Case(2, 1).
				WitnessPreamble(0)),
			Expected: Hidden,
		},
		{
			Name: "hidden_root/hidden_root",
			Bytes: bitstream.AllowPadding(program.Preamble(1).
				Hidden(digest).
				Flush()),
			Expected: HiddenRoot,
		},
	}
}

func malleability() []Vector {
	// The canonical encoding of the unit program: 0 01001 0 0 plus one
	// legal padding bit.
	unitProgram := func() []byte {
		return flush(program.Preamble(1).
			Unit().
			WitnessPreamble(0))
	}

	// Same stream with the padding bit written explicitly, set or
	// cleared. Only the explicit route through IllegalPadding can
	// produce the set variant.
	paddedUnitProgram := func(padWith uint64) []byte {
		b, err := program.Preamble(1).
			Unit().
			WitnessPreamble(0).
			IllegalPadding().
			RawBits(padWith, 1).
			AssertBitsWritten(8).
			Flush()
		if err != nil {
			panic(err)
		}
		return b
	}

	return []Vector{
		{
			Name:     "bitstream_trailing_bytes/trailing_bytes",
			Bytes:    append(unitProgram(), 0x00),
			Expected: BitstreamUnusedBytes,
		},
		{
			Name:     "bitstream_trailing_bytes/no_trailing_bytes",
			Bytes:    unitProgram(),
			Expected: OK,
		},
		{
			Name:     "bitstream_illegal_padding/illegal_padding",
			Bytes:    paddedUnitProgram(1),
			Expected: BitstreamUnusedBits,
		},
		{
			Name:     "bitstream_illegal_padding/legal_padding",
			Bytes:    paddedUnitProgram(0),
			Expected: OK,
		},
	}
}

func typeInference() []Vector {
	return []Vector{
		{
			// unit: A -> 1, take unit: 1 x B -> 1; comp fails to unify
			// left target with right source.
			Name: "type_inference_unification/comp_unify_left_target_right_source",
			Bytes: flush(program.Preamble(3).
				Unit().
				Take(1).
				Comp(2, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceUnification,
		},
		{
			// word(0): 1 -> 2, take unit: A x B -> 1; pair fails to
			// unify the sources.
			Name: "type_inference_unification/pair_unify_left_source_right_source",
			Bytes: flush(program.Preamble(4).
				Word(1, program.U1(0)).
				Unit().
				Take(1).
				Pair(3, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceUnification,
		},
		{
			// take word(0): A x 1 -> 2^1 against take word(00):
			// A x 1 -> 2^2; case fails to unify the targets.
			Name: "type_inference_unification/case_unify_left_target_right_target",
			Bytes: flush(program.Preamble(5).
				Word(1, program.U1(0)).
				Take(1).
				Word(2, program.U2(0)).
				Take(1).
				Case(3, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceUnification,
		},
		{
			// case's left child must take a product; word(0): 1 -> 2
			// does not.
			Name: "type_inference_unification/case_bind_left_target",
			Bytes: flush(program.Preamble(4).
				Word(1, program.U1(0)).
				Unit().
				Take(1).
				Case(3, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceUnification,
		},
		{
			Name: "type_inference_unification/case_bind_right_target",
			Bytes: flush(program.Preamble(4).
				Unit().
				Take(1).
				Word(1, program.U1(0)).
				Case(2, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceUnification,
		},
		{
			// disconnect's left child must take 2^256 x A; word(0)
			// does not.
			Name: "type_inference_unification/disconnect_bind_left_source",
			Bytes: flush(program.Preamble(3).
				Word(1, program.U1(0)).
				Iden().
				Disconnect(2, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceUnification,
		},
		{
			// disconnect's left child must produce a product; unit
			// does not.
			Name: "type_inference_unification/disconnect_bind_left_target",
			Bytes: flush(program.Preamble(3).
				Unit().
				Iden().
				Disconnect(2, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceUnification,
		},
		{
			// case (drop iden) iden forces A = A x B: the occurs
			// check rejects the infinite type.
			Name: "type_inference_occurs_check/occurs_check",
			Bytes: flush(program.Preamble(4).
				Iden().
				Drop(1).
				Iden().
				Case(2, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceOccursCheck,
		},
		{
			// Root typed A x B -> 1: source is not unit.
			Name: "type_inference_not_program/root_source_type",
			Bytes: flush(program.Preamble(2).
				Unit().
				Take(1).
				WitnessPreamble(0)),
			Expected: TypeInferenceNotProgram,
		},
		{
			// Root typed A -> 1 x 1: target is not unit.
			Name: "type_inference_not_program/root_target_type",
			Bytes: flush(program.Preamble(2).
				Unit().
				Pair(1, 1).
				WitnessPreamble(0)),
			Expected: TypeInferenceNotProgram,
		},
	}
}

func witnessBlocks() []Vector {
	return []Vector{
		{
			// The witness node consumes one bit; the block is empty.
			Name: "witness_eof/next_value",
			Bytes: flush(program.Preamble(5).
				Witness().
				Unit().
				Take(1).
				Case(1, 1).
				Comp(4, 1).
				WitnessPreamble(0)),
			Expected: WitnessEOF,
		},
		{
			// The witness node consumes two bits; the block holds one.
			Name: "witness_eof/next_bit",
			Bytes: flush(program.Preamble(6).
				Witness().
				Unit().
				Take(1).
				Case(1, 1).
				Case(1, 1).
				Comp(5, 1).
				WitnessPreamble(1).
				RawBits(1, 1)),
			Expected: WitnessEOF,
		},
		{
			// One declared witness bit, zero consumed.
			Name: "witness_trailing_bits/trailing_bits",
			Bytes: flush(program.Preamble(1).
				Unit().
				WitnessPreamble(1).
				RawBits(1, 1)),
			Expected: WitnessUnusedBits,
		},
	}
}

func unsharedSubexpression() []Vector {
	// Maximally shared iff the two hidden payloads differ: the case
	// parents of the hidden nodes have distinct structure on the other
	// side, so only equal payloads duplicate an IMR.
	unsharedProgram := func(digest1, digest2 []byte) []byte {
		return flush(program.Preamble(13).
			// scribe ([1], [])
			Unit().     // 1 -> 1
			Injr(1).    // 1 -> 1 + 1
			Pair(1, 2). // 1 -> (1 + 1) x 1
			Hidden(digest1).
			Unit().     // 1 x 1 -> 1
			Case(2, 1). // (1 + 1) x 1 -> 1
			Comp(4, 1). // 1 -> 1
			Hidden(digest2).
			Iden().     // 1 -> 1
			Take(1).    // 1 x 1 -> 1
			Case(3, 1). // (1 + 1) x 1 -> 1
			Comp(9, 1). // 1 -> 1
			Comp(6, 1). // 1 -> 1
			WitnessPreamble(0))
	}

	zeros := make([]byte, 32)
	ones := bytes.Repeat([]byte{0x01}, 32)

	return []Vector{
		{
			// Two unit nodes share an IMR.
			Name: "unshared_subexpression/duplicate_imr",
			Bytes: flush(program.Preamble(3).
				Unit().
				Unit().
				Comp(2, 1).
				WitnessPreamble(0)),
			Expected: UnsharedSubexpression,
		},
		{
			Name:     "unshared_subexpression/duplicate_hidden",
			Bytes:    unsharedProgram(zeros, zeros),
			Expected: UnsharedSubexpression,
		},
		{
			Name:     "unshared_subexpression/no_duplicate_hidden",
			Bytes:    unsharedProgram(zeros, ones),
			Expected: OK,
		},
	}
}

func execMemory() []Vector {
	// comp of a depth-21 word (2^20 value bits, all zero) and unit:
	// a megabyte of value bits framed by four structural bytes.
	// Emitting it through the builder works but is needlessly slow for
	// a buffer that is zero except at the seams.
	n := 1<<20 + 4
	b := make([]byte, n)
	b[0] = 0xb7
	b[1] = 0x08
	b[n-2] = 0x48
	b[n-1] = 0x20

	return []Vector{
		{
			Name:     "exec_memory/memory_usage_exceeds_max_cells",
			Bytes:    b,
			Expected: ExecMemory,
		},
	}
}

package vectors

// ScriptError identifies the decoder/verifier outcome a test asset is
// designed to provoke. The names mirror the script error codes of the
// consensus implementation; this library never interprets them, it only
// tags its outputs.
type ScriptError string

const (
	// OK means the decoder accepts the program.
	OK ScriptError = "OK"

	// BitstreamEOF: the stream ended while the parser still needed bits.
	BitstreamEOF ScriptError = "SIMPLICITY_BITSTREAM_EOF"

	// BitstreamUnusedBytes: whole bytes remained after the program.
	BitstreamUnusedBytes ScriptError = "SIMPLICITY_BITSTREAM_UNUSED_BYTES"

	// BitstreamUnusedBits: non-zero padding bits in the final byte.
	BitstreamUnusedBits ScriptError = "SIMPLICITY_BITSTREAM_UNUSED_BITS"

	// DataOutOfRange: a length, offset, or depth exceeded its bound.
	DataOutOfRange ScriptError = "SIMPLICITY_DATA_OUT_OF_RANGE"

	// DataOutOfOrder: nodes not in canonical topological order.
	DataOutOfOrder ScriptError = "SIMPLICITY_DATA_OUT_OF_ORDER"

	// FailCode: the program contains a fail node.
	FailCode ScriptError = "SIMPLICITY_FAIL_CODE"

	// StopCode: the program contains the stop code.
	StopCode ScriptError = "SIMPLICITY_STOP_CODE"

	// Hidden: a node other than case has a hidden child, or case has
	// two hidden children.
	Hidden ScriptError = "SIMPLICITY_HIDDEN"

	// HiddenRoot: the program root is a hidden node.
	HiddenRoot ScriptError = "SIMPLICITY_HIDDEN_ROOT"

	// WitnessEOF: the witness block ran out while reading a value.
	WitnessEOF ScriptError = "SIMPLICITY_WITNESS_EOF"

	// WitnessUnusedBits: the witness block declared more bits than the
	// program consumes.
	WitnessUnusedBits ScriptError = "SIMPLICITY_WITNESS_UNUSED_BITS"

	// TypeInferenceUnification: two types failed to unify.
	TypeInferenceUnification ScriptError = "SIMPLICITY_TYPE_INFERENCE_UNIFICATION"

	// TypeInferenceOccursCheck: an infinite type was inferred.
	TypeInferenceOccursCheck ScriptError = "SIMPLICITY_TYPE_INFERENCE_OCCURS_CHECK"

	// TypeInferenceNotProgram: the root is not typed 1 -> 1.
	TypeInferenceNotProgram ScriptError = "SIMPLICITY_TYPE_INFERENCE_NOT_PROGRAM"

	// UnsharedSubexpression: two structurally identical subexpressions
	// were serialized separately.
	UnsharedSubexpression ScriptError = "SIMPLICITY_UNSHARED_SUBEXPRESSION"

	// ExecMemory: evaluation would exceed the static memory cell bound.
	ExecMemory ScriptError = "SIMPLICITY_EXEC_MEMORY"
)

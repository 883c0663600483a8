package counter

import (
	"github.com/go-ripple/ripple/pkg/logging"
	"github.com/go-ripple/ripple/pkg/structhash"
)

// CoverAllInput is the coverage aggregate: one instance of every value
// shape that crosses the foreign boundary, nested arbitrarily. Callers
// construct it explicitly; no field is validated beyond its static shape.
type CoverAllInput struct {
	// ShouldThrow requests deliberate failure. When set, CoverAll fails
	// with *HashStateError regardless of every other field.
	ShouldThrow bool

	I8         int8
	OptionalI8 *int8
	U8         uint8
	I16        int16
	U16        uint16
	I32        int32
	U32        uint32
	I64        int64
	U64        uint64
	F32        float32
	F64        float64
	S          string
	Str        string
	Bytes      []byte
	Vec        []uint16
	HashMap    map[string]uint16

	CustomRecord              ManualOnlyState
	OptionalOtherCustomRecord *State

	// DeepMap nests records as mapping keys with optional sequences of
	// optional states as values. A nil middle slice is an absent value;
	// a non-nil empty slice is present but empty. Nil elements are
	// absent states.
	DeepMap map[ManualOnlyState][][]*State
}

// HashOutcome is the result of a successful CoverAll call.
type HashOutcome struct {
	// Hash is the fingerprint as a fixed-width lowercase hex string.
	Hash string
}

// HashStateError is the only failure this core can produce. It is raised
// exclusively by CoverAll when the caller explicitly requests failure and
// carries no payload beyond that fact.
type HashStateError struct{}

func (e *HashStateError) Error() string {
	return "unknown error"
}

// CoverAll folds every field of in, in declared order, into a single
// deterministic fingerprint. Identical inputs always yield the identical
// hash string, independent of process, platform, mapping iteration order,
// or unrelated operations. If in.ShouldThrow is set the call fails with
// *HashStateError and no hash is produced.
//
// CoverAll has no shared mutable state: it may run concurrently with any
// other operation, including mutations of this counter.
func (m *ManualOnlyCounter) CoverAll(in CoverAllInput) (HashOutcome, error) {
	if in.ShouldThrow {
		return HashOutcome{}, &HashStateError{}
	}
	outcome := HashOutcome{Hash: structhash.HexHash(coverageTree(in))}
	logging.Debugf("counter", "coverage fingerprint: %s", outcome.Hash)
	return outcome, nil
}

// coverageTree shapes the aggregate into the closed variant tree the
// structural hasher folds. Field order here is the declared order and is
// part of the fingerprint contract.
func coverageTree(in CoverAllInput) structhash.Value {
	hashMap := make(structhash.Map, 0, len(in.HashMap))
	for k, v := range in.HashMap {
		hashMap = append(hashMap, structhash.Entry{
			Key: structhash.String(k),
			Val: structhash.Uint16(v),
		})
	}

	vec := make(structhash.Seq, 0, len(in.Vec))
	for _, v := range in.Vec {
		vec = append(vec, structhash.Uint16(v))
	}

	deepMap := make(structhash.Map, 0, len(in.DeepMap))
	for k, v := range in.DeepMap {
		deepMap = append(deepMap, structhash.Entry{
			Key: manualStateValue(k),
			Val: deepMapValue(v),
		})
	}

	return structhash.NewRecord("CoverAll",
		structhash.Int8(in.I8),
		optionalInt8Value(in.OptionalI8),
		structhash.Uint8(in.U8),
		structhash.Int16(in.I16),
		structhash.Uint16(in.U16),
		structhash.Int32(in.I32),
		structhash.Uint32(in.U32),
		structhash.Int64(in.I64),
		structhash.Uint64(in.U64),
		structhash.Float32(in.F32),
		structhash.Float64(in.F64),
		structhash.String(in.S),
		structhash.String(in.Str),
		structhash.Bytes(in.Bytes),
		vec,
		hashMap,
		manualStateValue(in.CustomRecord),
		optionalStateValue(in.OptionalOtherCustomRecord),
		deepMap,
	)
}

func optionalInt8Value(v *int8) structhash.Value {
	if v == nil {
		return structhash.None
	}
	return structhash.Some(structhash.Int8(*v))
}

func manualStateValue(s ManualOnlyState) structhash.Value {
	return structhash.NewRecord("ManualOnlyCounterState",
		structhash.Int64(s.Count),
	)
}

func stateValue(s State) structhash.Value {
	return structhash.NewRecord("CounterState",
		structhash.Int64(s.Count),
		structhash.Bool(s.AutoIncrementing),
		structhash.NewRecord("Interval", structhash.Uint64(s.AutoIncrementInterval.Ms())),
	)
}

func optionalStateValue(s *State) structhash.Value {
	if s == nil {
		return structhash.None
	}
	return structhash.Some(stateValue(*s))
}

func deepMapValue(outer [][]*State) structhash.Value {
	seq := make(structhash.Seq, 0, len(outer))
	for _, mid := range outer {
		if mid == nil {
			seq = append(seq, structhash.None)
			continue
		}
		inner := make(structhash.Seq, 0, len(mid))
		for _, s := range mid {
			inner = append(inner, optionalStateValue(s))
		}
		seq = append(seq, structhash.Some(inner))
	}
	return seq
}

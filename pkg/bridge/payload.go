package bridge

import "github.com/go-ripple/ripple/pkg/counter"

// StatePayload is the wire form of counter.State. Field names are part of
// the boundary contract and match the canonical text rendering.
type StatePayload struct {
	Count                   int64  `json:"count"`
	IsAutoIncrementing      bool   `json:"is_auto_incrementing"`
	AutoIncrementIntervalMs uint64 `json:"auto_increment_interval_ms"`
}

func statePayload(s counter.State) StatePayload {
	return StatePayload{
		Count:                   s.Count,
		IsAutoIncrementing:      s.AutoIncrementing,
		AutoIncrementIntervalMs: s.AutoIncrementInterval.Ms(),
	}
}

func (p StatePayload) state() counter.State {
	return counter.State{
		Count:                 p.Count,
		AutoIncrementing:      p.IsAutoIncrementing,
		AutoIncrementInterval: counter.NewInterval(p.AutoIncrementIntervalMs),
	}
}

// ManualStatePayload is the wire form of counter.ManualOnlyState.
type ManualStatePayload struct {
	Count int64 `json:"count"`
}

func manualStatePayload(s counter.ManualOnlyState) ManualStatePayload {
	return ManualStatePayload{Count: s.Count}
}

func (p ManualStatePayload) state() counter.ManualOnlyState {
	return counter.ManualOnlyState{Count: p.Count}
}

// DeepMapEntryPayload is one entry of the coverage aggregate's deep map.
// JSON objects only take string keys, so the record-keyed mapping crosses
// the boundary as an entry list.
type DeepMapEntryPayload struct {
	Key ManualStatePayload `json:"key"`
	// Value nests optionality structurally: a null middle element is an
	// absent list, an empty array is present but empty, and null leaf
	// elements are absent states.
	Value [][]*StatePayload `json:"value"`
}

// CoverAllPayload is the wire form of counter.CoverAllInput.
type CoverAllPayload struct {
	ShouldThrow bool              `json:"should_throw"`
	I8          int8              `json:"i8"`
	OptionalI8  *int8             `json:"optional_i8"`
	U8          uint8             `json:"u8"`
	I16         int16             `json:"i16"`
	U16         uint16            `json:"u16"`
	I32         int32             `json:"i32"`
	U32         uint32            `json:"u32"`
	I64         int64             `json:"i64"`
	U64         uint64            `json:"u64"`
	F32         float32           `json:"f32"`
	F64         float64           `json:"f64"`
	S           string            `json:"s"`
	Str         string            `json:"string"`
	Bytes       []byte            `json:"bytes"`
	Vec         []uint16          `json:"vec"`
	HashMap     map[string]uint16 `json:"hash_map"`

	CustomRecord              ManualStatePayload    `json:"custom_record"`
	OptionalOtherCustomRecord *StatePayload         `json:"optional_other_custom_record"`
	DeepMap                   []DeepMapEntryPayload `json:"deep_map"`
}

func (p CoverAllPayload) input() counter.CoverAllInput {
	in := counter.CoverAllInput{
		ShouldThrow:  p.ShouldThrow,
		I8:           p.I8,
		OptionalI8:   p.OptionalI8,
		U8:           p.U8,
		I16:          p.I16,
		U16:          p.U16,
		I32:          p.I32,
		U32:          p.U32,
		I64:          p.I64,
		U64:          p.U64,
		F32:          p.F32,
		F64:          p.F64,
		S:            p.S,
		Str:          p.Str,
		Bytes:        p.Bytes,
		Vec:          p.Vec,
		HashMap:      p.HashMap,
		CustomRecord: p.CustomRecord.state(),
	}
	if p.OptionalOtherCustomRecord != nil {
		s := p.OptionalOtherCustomRecord.state()
		in.OptionalOtherCustomRecord = &s
	}
	if p.DeepMap != nil {
		in.DeepMap = make(map[counter.ManualOnlyState][][]*counter.State, len(p.DeepMap))
		for _, entry := range p.DeepMap {
			in.DeepMap[entry.Key.state()] = deepMapValue(entry.Value)
		}
	}
	return in
}

func deepMapValue(outer [][]*StatePayload) [][]*counter.State {
	if outer == nil {
		return nil
	}
	out := make([][]*counter.State, 0, len(outer))
	for _, mid := range outer {
		if mid == nil {
			out = append(out, nil)
			continue
		}
		inner := make([]*counter.State, 0, len(mid))
		for _, leaf := range mid {
			if leaf == nil {
				inner = append(inner, nil)
				continue
			}
			s := leaf.state()
			inner = append(inner, &s)
		}
		out = append(out, inner)
	}
	return out
}

// HashOutcomePayload is the wire form of a successful coverAll result.
type HashOutcomePayload struct {
	Hash string `json:"hash"`
}

// sampleArgs are the arguments of the "sample" method.
type sampleArgs struct {
	N int `json:"n"`
}

// samplePayload is the result of the "sample" method.
type samplePayload struct {
	States []StatePayload `json:"states"`
}

// renderArgs are the arguments of the "renderDescription" method.
type renderArgs struct {
	State StatePayload `json:"state"`
}

// renderPayload is the result of the "renderDescription" method.
type renderPayload struct {
	Description string `json:"description"`
}

// fullNameArgs are the arguments of the "tellFullName" method.
type fullNameArgs struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// fullNamePayload is the result of the "tellFullName" method.
type fullNamePayload struct {
	FullName string `json:"full_name"`
}

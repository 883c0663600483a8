package counter

import (
	stderrors "errors"
	"regexp"
	"sync"
	"testing"
)

var hexHashPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

// fullInput exercises every field of the coverage aggregate.
func fullInput() CoverAllInput {
	optI8 := int8(-7)
	other := State{
		Count:                 11,
		AutoIncrementing:      true,
		AutoIncrementInterval: NewInterval(250),
	}
	leaf := DefaultState()

	return CoverAllInput{
		I8:           -8,
		OptionalI8:   &optI8,
		U8:           8,
		I16:          -16,
		U16:          16,
		I32:          -32,
		U32:          32,
		I64:          -64,
		U64:          64,
		F32:          1.5,
		F64:          -2.25,
		S:            "s",
		Str:          "string",
		Bytes:        []byte{0xca, 0xfe},
		Vec:          []uint16{3, 1, 2},
		HashMap:      map[string]uint16{"a": 1, "b": 2, "c": 3},
		CustomRecord: ManualOnlyState{Count: 5},

		OptionalOtherCustomRecord: &other,
		DeepMap: map[ManualOnlyState][][]*State{
			{Count: 1}: {nil, {&leaf, nil}},
			{Count: 2}: {{}},
		},
	}
}

func TestCoverAllDeterministic(t *testing.T) {
	m := NewManualOnly(ManualOnlyState{}, nil)
	defer m.Dispose()

	first, err := m.CoverAll(fullInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hexHashPattern.MatchString(first.Hash) {
		t.Fatalf("expected 16 lowercase hex digits, got %q", first.Hash)
	}

	for i := 0; i < 10; i++ {
		got, err := m.CoverAll(fullInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hash != first.Hash {
			t.Fatalf("run %d produced %q, first run produced %q", i, got.Hash, first.Hash)
		}
	}
}

func TestCoverAllIgnoresCounterState(t *testing.T) {
	m := NewManualOnly(ManualOnlyState{}, nil)
	defer m.Dispose()

	before, err := m.CoverAll(fullInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.Increment()
	m.Increment()

	after, err := m.CoverAll(fullInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Hash != before.Hash {
		t.Errorf("hash changed with counter state: %q vs %q", before.Hash, after.Hash)
	}
}

func TestCoverAllShouldThrow(t *testing.T) {
	m := NewManualOnly(ManualOnlyState{}, nil)
	defer m.Dispose()

	in := fullInput()
	in.ShouldThrow = true

	_, err := m.CoverAll(in)
	if err == nil {
		t.Fatal("expected an error when failure is requested")
	}

	var hashErr *HashStateError
	if !stderrors.As(err, &hashErr) {
		t.Fatalf("expected *HashStateError, got %T", err)
	}
	if got := hashErr.Error(); got != "unknown error" {
		t.Errorf("Error() = %q, want %q", got, "unknown error")
	}
}

func TestCoverAllFieldSensitivity(t *testing.T) {
	m := NewManualOnly(ManualOnlyState{}, nil)
	defer m.Dispose()

	base, err := m.CoverAll(fullInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*CoverAllInput)
	}{
		{"i8", func(in *CoverAllInput) { in.I8++ }},
		{"optional_i8 absent", func(in *CoverAllInput) { in.OptionalI8 = nil }},
		{"u64", func(in *CoverAllInput) { in.U64++ }},
		{"f64 sign", func(in *CoverAllInput) { in.F64 = -in.F64 }},
		{"s", func(in *CoverAllInput) { in.S = "S" }},
		{"swap s and string", func(in *CoverAllInput) { in.S, in.Str = in.Str, in.S }},
		{"bytes", func(in *CoverAllInput) { in.Bytes = []byte{0xfe, 0xca} }},
		{"vec order", func(in *CoverAllInput) { in.Vec = []uint16{1, 2, 3} }},
		{"hash_map value", func(in *CoverAllInput) { in.HashMap["a"] = 9 }},
		{"custom_record", func(in *CoverAllInput) { in.CustomRecord.Count++ }},
		{"optional record absent", func(in *CoverAllInput) { in.OptionalOtherCustomRecord = nil }},
		{"deep_map key", func(in *CoverAllInput) {
			v := in.DeepMap[ManualOnlyState{Count: 1}]
			delete(in.DeepMap, ManualOnlyState{Count: 1})
			in.DeepMap[ManualOnlyState{Count: 3}] = v
		}},
		{"deep_map nil vs empty middle", func(in *CoverAllInput) {
			leaf := DefaultState()
			in.DeepMap[ManualOnlyState{Count: 1}] = [][]*State{{}, {&leaf, nil}}
		}},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			in := fullInput()
			tt.mutate(&in)
			got, err := m.CoverAll(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Hash == base.Hash {
				t.Errorf("mutating %s did not change the hash %q", tt.name, base.Hash)
			}
		})
	}
}

func TestCoverAllStructurallyEqualKeys(t *testing.T) {
	m := NewManualOnly(ManualOnlyState{}, nil)
	defer m.Dispose()

	// Rebuilding the deep map with freshly constructed but structurally
	// equal keys and values yields the same fingerprint.
	a := fullInput()
	b := fullInput()
	b.DeepMap = make(map[ManualOnlyState][][]*State, len(a.DeepMap))
	for k, v := range a.DeepMap {
		b.DeepMap[ManualOnlyState{Count: k.Count}] = v
	}

	ha, err := m.CoverAll(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hb, err := m.CoverAll(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ha.Hash != hb.Hash {
		t.Errorf("structurally equal inputs hashed differently: %q vs %q", ha.Hash, hb.Hash)
	}
}

func TestCoverAllZeroInput(t *testing.T) {
	m := NewManualOnly(ManualOnlyState{}, nil)
	defer m.Dispose()

	a, err := m.CoverAll(CoverAllInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := m.CoverAll(CoverAllInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Hash != b.Hash {
		t.Errorf("zero input hashed differently across runs: %q vs %q", a.Hash, b.Hash)
	}
	if !hexHashPattern.MatchString(a.Hash) {
		t.Errorf("expected 16 lowercase hex digits, got %q", a.Hash)
	}
}

func TestCoverAllConcurrent(t *testing.T) {
	m := NewManualOnly(ManualOnlyState{}, nil)
	defer m.Dispose()

	want, err := m.CoverAll(fullInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Increment()
			got, err := m.CoverAll(fullInput())
			if err != nil {
				return
			}
			results[i] = got.Hash
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want.Hash {
			t.Errorf("goroutine %d produced %q, want %q", i, got, want.Hash)
		}
	}
}

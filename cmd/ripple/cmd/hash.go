package cmd

import (
	"fmt"

	"github.com/go-ripple/ripple/pkg/counter"
)

func init() {
	RegisterCommand(&Command{
		Name:  "hash",
		Short: "Print the coverage fingerprint of a fixed aggregate",
		Long: `Hash folds a fixed coverage aggregate, touching every boundary type,
into a 16-digit hexadecimal fingerprint and prints it. The output is
stable across runs and platforms.

Flags:
  --fail   Request the failure path instead of a fingerprint`,
		Usage: "ripple hash [--fail]",
		Run:   runHash,
	})
}

func runHash(args []string) error {
	fail := false
	for _, arg := range args {
		switch arg {
		case "--fail":
			fail = true
		default:
			return fmt.Errorf("unknown argument: %s", arg)
		}
	}

	m := counter.NewManualOnly(counter.ManualOnlyState{}, nil)
	defer m.Dispose()

	outcome, err := m.CoverAll(coverageAggregate(fail))
	if err != nil {
		return err
	}
	fmt.Println(outcome.Hash)
	return nil
}

// coverageAggregate builds the fixed input hashed by the hash command.
func coverageAggregate(fail bool) counter.CoverAllInput {
	optI8 := int8(42)
	other := counter.State{
		Count:                 7,
		AutoIncrementing:      true,
		AutoIncrementInterval: counter.NewInterval(500),
	}
	leaf := counter.DefaultState()

	return counter.CoverAllInput{
		ShouldThrow: fail,
		I8:          -8,
		OptionalI8:  &optI8,
		U8:          8,
		I16:         -16,
		U16:         16,
		I32:         -32,
		U32:         32,
		I64:         -64,
		U64:         64,
		F32:         0.5,
		F64:         0.25,
		S:           "hello",
		Str:         "world",
		Bytes:       []byte{0x01, 0x02, 0x03},
		Vec:         []uint16{1, 2, 3},
		HashMap:     map[string]uint16{"one": 1, "two": 2},
		CustomRecord: counter.ManualOnlyState{
			Count: 3,
		},
		OptionalOtherCustomRecord: &other,
		DeepMap: map[counter.ManualOnlyState][][]*counter.State{
			{Count: 1}: {nil, {&leaf, nil}},
			{Count: 2}: {{}},
		},
	}
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-ripple/ripple/pkg/counter"
)

func init() {
	RegisterCommand(&Command{
		Name:  "sample",
		Short: "Print deterministic sample states",
		Long: `Sample prints the canonical renderings of n deterministic sample
states. The same n always yields the same states, in the same order.`,
		Usage: "ripple sample [n]",
		Run:   runSample,
	})
}

func runSample(args []string) error {
	n := 10
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid sample count %q: %w", args[0], err)
		}
		n = parsed
	}
	if n < 0 {
		return fmt.Errorf("sample count must be non-negative, got %d", n)
	}

	for _, s := range counter.SampleStates(n) {
		fmt.Println(counter.RenderDescription(s))
	}
	return nil
}

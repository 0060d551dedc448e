package main

import (
	"sort"
	"strings"

	"github.com/posener/complete"

	"github.com/d2verb/mcpi/internal/minecraft"
)

// decodeModes are the reply interpretations accepted by 'send --as'.
var decodeModes = []string{"raw", "bool", "list", "int", "float", "vec3", "ivec3"}

// newCommandPredictor returns a predictor for protocol command names.
func newCommandPredictor() complete.Predictor {
	cmds := minecraft.Commands()
	sort.Strings(cmds)
	return &prefixPredictor{candidates: cmds}
}

// newDecodePredictor returns a predictor for 'send --as'.
func newDecodePredictor() complete.Predictor {
	return &prefixPredictor{candidates: decodeModes}
}

// prefixPredictor completes from a fixed candidate list.
type prefixPredictor struct {
	candidates []string
}

// Predict implements complete.Predictor interface.
func (p *prefixPredictor) Predict(args complete.Args) []string {
	return completePrefix(p.candidates, args.Last)
}

func completePrefix(candidates []string, partial string) []string {
	results := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c, partial) {
			results = append(results, c)
		}
	}
	return results
}

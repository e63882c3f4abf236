package main

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

func parseDistribution(name string) (distributionKind, error) {
	switch strings.ToLower(name) {
	case "uniform":
		return distUniform, nil
	case "ascending":
		return distAscending, nil
	case "zipf", "zipfian":
		return distZipf, nil
	}
	return 0, errors.Errorf("unknown distribution %q (want uniform, ascending or zipf)", name)
}

func (d distributionKind) String() string {
	switch d {
	case distAscending:
		return "ascending"
	case distZipf:
		return "zipf"
	default:
		return "uniform"
	}
}

// generateKeys returns n keys drawn from [0, keyRange) with the given
// distribution. Duplicates are kept; the set drops them.
func generateKeys(kind distributionKind, n, keyRange int, seed int64) []int {
	if keyRange < 1 {
		keyRange = 1
	}
	r := rand.New(rand.NewSource(seed))

	var zipf *rand.Zipf
	if kind == distZipf {
		upper := uint64(keyRange - 1)
		if upper == 0 {
			upper = 1
		}
		zipf = rand.NewZipf(r, 1.2, 1, upper)
	}

	keys := make([]int, n)
	for i := range keys {
		switch kind {
		case distAscending:
			keys[i] = i % keyRange
		case distZipf:
			keys[i] = int(zipf.Uint64())
		default:
			keys[i] = r.Intn(keyRange)
		}
	}
	return keys
}

package swfloat

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"testing"
	"time"
)

// This mirrors the teacher's fuzz harness wiring: a TestMain that parses
// iteration-count and seed flags before any test runs, and a package-level
// RNG every fuzz test pulls from so a single -swfloat.fuzzseed reproduces
// an entire run.
var (
	fuzzIterations = fuzzDefaultIterations
	fuzzSeed       int64

	globalRNG *rand.Rand
)

const fuzzDefaultIterations = 2000

func TestMain(m *testing.M) {
	flag.IntVar(&fuzzIterations, "swfloat.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "swfloat.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	log.Println("rando seed:", fuzzSeed)
	log.Println("iterations:", fuzzIterations)

	os.Exit(m.Run())
}

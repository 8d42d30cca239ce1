package int128

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzSeed       int64

	globalRNG *rand.Rand

	// floatDiffLimit is the largest relative error accepted when converting
	// between Int128 and float64; it is float64's machine epsilon.
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "int128.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "int128.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "int128.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("native mul:", nativeMul64)

	code := m.Run()
	os.Exit(code)
}

var trimFloatPattern = regexp.MustCompile(`(\.0+$|(\.\d+[1-9])\0+$)`)

func cleanFloatStr(str string) string {
	return trimFloatPattern.ReplaceAllString(str, "$2")
}

var i64 = Int128From64

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(s)
	}
	return v
}

// i128s parses s as a signed big.Int literal (any base prefix accepted by
// big.Int, spaces ignored) and panics if it does not fit.
func i128s(s string) Int128 {
	i, acc := Int128FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("int128: inaccurate i128 %s", s))
	}
	return i
}

func accInt128FromBigInt(b *big.Int) Int128 {
	i, acc := Int128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("int128: inaccurate conversion to Int128 in fuzz tester for %s", b))
	}
	return i
}

func randInt128(scratch []byte) Int128 {
	globalRNG.Read(scratch)
	i := Int128{}
	i.lo = binary.LittleEndian.Uint64(scratch)

	if scratch[0]%2 == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		i.hi = int64(binary.LittleEndian.Uint64(scratch[8:]))
	}
	if scratch[1]%2 == 1 {
		i = i.Neg()
	}
	return i
}

// simulateBigInt128Overflow wraps rb into the Int128 range modulo 2^128,
// which is what every Int128 operation does on overflow.
func simulateBigInt128Overflow(rb *big.Int) *big.Int {
	if rb.Cmp(maxBigInt128) > 0 || rb.Cmp(minBigInt128) < 0 {
		r := new(big.Int).Sub(rb, minBigInt128)
		r.Mod(r, wrapBigU128)
		return r.Add(r, minBigInt128)
	}
	return rb
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

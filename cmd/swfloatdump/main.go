// Command swfloatdump is a small diagnostic tool for inspecting how the
// swfloat engine decomposes and repacks bit patterns, grounded on the
// teacher's misc/recip.go "cheap-and-nasty experiment" command.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/swfloat"
)

const usage = `swfloatdump

Usage:
  swfloatdump -format=32 -hex=0x3F800000
  swfloatdump -format=16 -dec=3.5
  swfloatdump -format=64 -random=5 -seed=1

Flags:`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		format int
		hexStr string
		decStr string
		dump   bool
		random int
		seed   int64
	)

	flag.IntVar(&format, "format", 64, "float format width: 16, 32 or 64")
	flag.StringVar(&hexStr, "hex", "", "decode a raw hex bit pattern, e.g. 0x3F800000")
	flag.StringVar(&decStr, "dec", "", "encode a decimal value and decode it back")
	flag.BoolVar(&dump, "dump", false, "also spew.Dump the packed value")
	flag.IntVar(&random, "random", 0, "print N random bit patterns instead of decoding -hex/-dec")
	flag.Int64Var(&seed, "seed", 0, "seed the RNG used by -random (0 == current nanotime)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if random > 0 {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < random; i++ {
			raw := swfloat.RandBitPattern(rng, uint(format))
			if err := dumpRaw(format, raw, dump); err != nil {
				return err
			}
		}
		return nil
	}

	switch {
	case hexStr != "":
		raw, err := strconv.ParseUint(strings.TrimPrefix(hexStr, "0x"), 16, 64)
		if err != nil {
			return fmt.Errorf("swfloatdump: invalid -hex %q: %w", hexStr, err)
		}
		return dumpRaw(format, raw, dump)

	case decStr != "":
		return dumpDecimal(format, decStr, dump)

	default:
		flag.Usage()
		return fmt.Errorf("swfloatdump: one of -hex, -dec or -random is required")
	}
}

func dumpDecimal(format int, s string, dump bool) error {
	switch format {
	case 16:
		v, err := swfloat.Float16FromString(s)
		if err != nil {
			return err
		}
		return printFloat16(v, dump)
	case 32:
		v, err := swfloat.Float32FromString(s)
		if err != nil {
			return err
		}
		return printFloat32(v, dump)
	case 64:
		v, err := swfloat.Float64FromString(s)
		if err != nil {
			return err
		}
		return printFloat64(v, dump)
	default:
		return fmt.Errorf("swfloatdump: unsupported -format %d", format)
	}
}

func dumpRaw(format int, raw uint64, dump bool) error {
	switch format {
	case 16:
		return printFloat16(swfloat.Float16FromBits(uint16(raw)), dump)
	case 32:
		return printFloat32(swfloat.Float32FromBits(uint32(raw)), dump)
	case 64:
		return printFloat64(swfloat.Float64FromBits(raw), dump)
	default:
		return fmt.Errorf("swfloatdump: unsupported -format %d", format)
	}
}

func printFloat16(v swfloat.Float16, dump bool) error {
	fmt.Printf("hex=%s triplet=%s\n", v.ToHexString(), v.ToTripletString())
	if dump {
		spew.Dump(v)
	}
	return nil
}

func printFloat32(v swfloat.Float32, dump bool) error {
	fmt.Printf("hex=%s triplet=%s native=%v\n", v.ToHexString(), v.ToTripletString(), v.AsFloat32())
	if dump {
		spew.Dump(v)
	}
	return nil
}

func printFloat64(v swfloat.Float64, dump bool) error {
	fmt.Printf("hex=%s triplet=%s native=%v\n", v.ToHexString(), v.ToTripletString(), v.AsFloat64())
	if dump {
		spew.Dump(v)
	}
	return nil
}

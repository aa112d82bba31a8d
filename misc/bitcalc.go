package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	bitnum "github.com/serepsy-o/bitnum"
	"github.com/unixpickle/essentials"
)

// Cheap command line calculator for eyeballing how UInt widths move through
// each operation. It started as a scratch harness for checking the
// multiplier's register traces by hand and ended up useful enough to keep.

const usage = `Bit vector calculator

Usage: bitcalc [-dump] <a> <op> <b>
       bitcalc [-dump] not <a>
       bitcalc [-dump] <a> lsh|rsh <n>

Operands parse as '0b...' exact-width bit strings, or as decimal or '0x'
values. Ops: and or xor add sub mul lsh rsh not all.`

var dump = flag.Bool("dump", false, "spew the result after printing it")

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 2 {
		if args[0] != "not" {
			essentials.Die(usage)
		}
		show(bitnum.Not(parse(args[1])))
		return nil
	}

	if len(args) != 3 {
		essentials.Die(usage)
	}

	a, op := parse(args[0]), args[1]

	if op == "lsh" || op == "rsh" {
		by, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return err
		}
		if op == "lsh" {
			show(bitnum.Lsh(a, uint(by)))
		} else {
			show(bitnum.Rsh(a, uint(by)))
		}
		return nil
	}

	b := parse(args[2])

	switch op {
	case "and", "&":
		show(bitnum.And(a, b))
	case "or", "|":
		show(bitnum.Or(a, b))
	case "xor", "^":
		show(bitnum.Xor(a, b))
	case "add", "+":
		show(bitnum.Add(a, b))
	case "sub", "-":
		show(bitnum.Sub(a, b))
	case "mul", "x":
		show(bitnum.Mul(a, b))

	case "all":
		for _, v := range []struct {
			name string
			r    *bitnum.UInt
		}{
			{"a & b", bitnum.And(a, b)},
			{"a | b", bitnum.Or(a, b)},
			{"a ^ b", bitnum.Xor(a, b)},
			{"a + b", bitnum.Add(a, b)},
			{"a - b", bitnum.Sub(a, b)},
			{"a x b", bitnum.Mul(a, b)},
		} {
			fmt.Printf("%s = %s = %d (%d bits)\n", v.name, v.r, v.r, v.r.Len())
		}

	default:
		return fmt.Errorf("op must be one of: and or xor add sub mul lsh rsh not all")
	}

	return nil
}

func parse(s string) *bitnum.UInt {
	u, err := bitnum.UIntFromString(s)
	essentials.Must(err)
	return u
}

func show(u *bitnum.UInt) {
	fmt.Printf("%s\n", u)
	fmt.Printf("%d (%d bits)\n", u, u.Len())
	if *dump {
		spew.Dump(u)
	}
}

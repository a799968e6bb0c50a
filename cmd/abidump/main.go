// Command abidump decodes the leading selector and, for a handful of known
// ERC-20/ERC-721 signatures, the argument list of one or more hex-encoded
// calldata blobs passed as positional arguments, or a single blob piped in
// on stdin.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/evmview/abiview"
	"github.com/google/uuid"
	"github.com/xyproto/env/v2"
)

func main() {
	flag.Parse()

	runID := uuid.New()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("abidump[%s] ", runID.String()[:8]))

	strictUTF8 := env.Bool("ABIVIEW_STRICT_UTF8")

	blobs, e := readCalldataArgs(flag.Args())
	if e != nil {
		log.Fatalf("read calldata: %v", e)
	}

	// One registry, shared across every input's goroutine: this is the
	// concurrent-read workload selectorRegistry's xsync.Map is for.
	registry := newSelectorRegistry()

	var wg sync.WaitGroup
	for i, blob := range blobs {
		wg.Add(1)
		go func(i int, blob []byte) {
			defer wg.Done()
			if e := dump(registry, i, blob, strictUTF8); e != nil {
				log.Printf("input %d: %v", i, e)
			}
		}(i, blob)
	}
	wg.Wait()
}

// readCalldataArgs reads one hex-encoded calldata blob per positional
// argument, or a single blob from stdin if none were given.
func readCalldataArgs(args []string) ([][]byte, error) {
	if len(args) == 0 {
		b, e := io.ReadAll(bufio.NewReader(os.Stdin))
		if e != nil {
			return nil, e
		}
		calldata, e := decodeHexArg(string(b))
		if e != nil {
			return nil, e
		}
		return [][]byte{calldata}, nil
	}
	blobs := make([][]byte, len(args))
	for i, a := range args {
		calldata, e := decodeHexArg(a)
		if e != nil {
			return nil, fmt.Errorf("argument %d: %w", i, e)
		}
		blobs[i] = calldata
	}
	return blobs, nil
}

func decodeHexArg(text string) ([]byte, error) {
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "0x"))
	return hex.DecodeString(text)
}

func dump(registry *selectorRegistry, idx int, calldata []byte, strictUTF8 bool) error {
	sel, rest, e := abiview.ReadSelector(calldata)
	if e != nil {
		return e
	}

	var selArr [4]byte
	copy(selArr[:], sel)

	name, known := registry.Lookup(selArr)
	if !known {
		log.Printf("[%d] selector %x (unknown signature), %d bytes of argument data", idx, sel, len(rest))
		logLeadingStringArg(idx, rest, strictUTF8)
		return nil
	}
	log.Printf("[%d] selector %x => %s", idx, sel, name)

	switch name {
	case "transfer(address,uint256)":
		return dumpTransfer(idx, rest)
	case "balanceOf(address)":
		return dumpBalanceOf(idx, rest)
	case "approve(address,uint256)":
		return dumpApprove(idx, rest)
	default:
		log.Printf("[%d] no decoder registered for %s; %d bytes of raw argument data", idx, name, len(rest))
		return nil
	}
}

// logLeadingStringArg speculatively decodes an unknown call's first
// argument slot as a dynamic string, for calldata that embeds off-chain
// metadata ahead of its typed arguments. ABIVIEW_STRICT_UTF8 controls
// whether invalid UTF-8 there is reported as an error or silently shown
// as raw hex instead.
func logLeadingStringArg(idx int, args []byte, strictUTF8 bool) {
	if len(args) < abiview.WordSize {
		return
	}
	s, e := abiview.ReadString(args, 0, 0)
	if e == nil {
		log.Printf("[%d] leading string argument: %q", idx, s.AsStr())
		return
	}
	if strictUTF8 {
		log.Printf("[%d] leading argument is not a valid UTF-8 string: %v", idx, e)
		return
	}
	if b, be := abiview.ReadBytes(args, 0, 0); be == nil {
		log.Printf("[%d] leading argument (non-UTF-8, shown as hex): %x", idx, b.AsSlice())
	}
}

func dumpTransfer(idx int, args []byte) error {
	to, amount, e := abiview.DecodeTuple2(args, 0, abiview.Static(abiview.ReadAddress), abiview.Static(decodeUint256AsUint64))
	if e != nil {
		return e
	}
	log.Printf("[%d] transfer(to=%x, amount=%d)", idx, to.AsBytes(), amount)
	return nil
}

func dumpApprove(idx int, args []byte) error {
	spender, amount, e := abiview.DecodeTuple2(args, 0, abiview.Static(abiview.ReadAddress), abiview.Static(decodeUint256AsUint64))
	if e != nil {
		return e
	}
	log.Printf("[%d] approve(spender=%x, amount=%d)", idx, spender.AsBytes(), amount)
	return nil
}

func dumpBalanceOf(idx int, args []byte) error {
	owner, e := abiview.ReadAddress(args, 0)
	if e != nil {
		return e
	}
	log.Printf("[%d] balanceOf(owner=%x)", idx, owner.AsBytes())
	return nil
}

func decodeUint256AsUint64(buf []byte, off int) (uint64, error) {
	v, e := abiview.ReadUint256(buf, off)
	if e != nil {
		return 0, e
	}
	return v.ToUint64()
}

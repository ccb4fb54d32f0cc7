package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	uefistrings "github.com/wippyai/uefi-strings"
	"github.com/wippyai/uefi-strings/console"
	"github.com/wippyai/uefi-strings/status"
)

func main() {
	var (
		text        = flag.String("text", "", "String to encode")
		kindName    = flag.String("kind", "ucs2", "Target encoding (ucs2 or latin1)")
		capacity    = flag.Int("cap", 32, "Destination buffer size in code units, terminator included")
		decodeHex   = flag.String("decode", "", "Comma-separated hex code units to validate and decode")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		console.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch {
	case *decodeHex != "":
		if err := runDecode(*kindName, *decodeHex); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *text != "":
		if err := runEncode(*kindName, *text, *capacity); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: uefistr -text <string> [-kind ucs2|latin1] [-cap n]")
		fmt.Fprintln(os.Stderr, "       uefistr -decode 48,69,0 [-kind ucs2|latin1]")
		fmt.Fprintln(os.Stderr, "       uefistr -i  (interactive mode)")
		os.Exit(1)
	}
}

func runEncode(kindName, text string, capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("capacity must be at least 1")
	}

	var (
		units []uint64
		rest  string
		err   error
	)
	switch kindName {
	case "ucs2":
		buf := make([]uint16, capacity)
		var s uefistrings.CStr16
		s, rest, err = uefistrings.Encode(uefistrings.UCS2{}, text, buf)
		if err == nil {
			for _, u := range s.UnitsWithNul() {
				units = append(units, uint64(u))
			}
		}
	case "latin1":
		buf := make([]uint8, capacity)
		var s uefistrings.CStr8
		s, rest, err = uefistrings.Encode(uefistrings.Latin1{}, text, buf)
		if err == nil {
			for _, u := range s.UnitsWithNul() {
				units = append(units, uint64(u))
			}
		}
	default:
		return fmt.Errorf("unknown kind %q", kindName)
	}

	st := status.FromError(err)
	fmt.Printf("Kind:      %s\n", kindName)
	fmt.Printf("Capacity:  %d units\n", capacity)
	fmt.Printf("Status:    %s\n", st)
	if err != nil {
		return err
	}

	fmt.Printf("Units:     %s\n", formatUnits(units))
	if rest != "" {
		fmt.Printf("Remainder: %q\n", rest)
	} else {
		fmt.Println("Remainder: none")
	}
	return nil
}

func runDecode(kindName, hexUnits string) error {
	parts := strings.Split(hexUnits, ",")

	switch kindName {
	case "ucs2":
		units := make([]uint16, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 16, 16)
			if err != nil {
				return fmt.Errorf("bad code unit %q: %w", p, err)
			}
			units = append(units, uint16(v))
		}
		s, err := uefistrings.FromUnitsWithNul(uefistrings.UCS2{}, units)
		if err != nil {
			fmt.Printf("Status: %s\n", status.FromError(err))
			return err
		}
		return printDecoded(s)
	case "latin1":
		units := make([]uint8, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 16, 8)
			if err != nil {
				return fmt.Errorf("bad code unit %q: %w", p, err)
			}
			units = append(units, uint8(v))
		}
		s, err := uefistrings.FromUnitsWithNul(uefistrings.Latin1{}, units)
		if err != nil {
			fmt.Printf("Status: %s\n", status.FromError(err))
			return err
		}
		return printDecoded(s)
	default:
		return fmt.Errorf("unknown kind %q", kindName)
	}
}

func printDecoded[U uefistrings.CodeUnit](s uefistrings.CStr[U]) error {
	buf := make([]byte, 4*s.Len()+4)
	out, rest, err := uefistrings.Decode(s, buf)
	if err != nil {
		return err
	}
	fmt.Printf("Decoded:   %q\n", out)
	if !rest.IsZero() {
		fmt.Printf("Remainder: %q\n", rest.String())
	}
	return nil
}

func formatUnits(units []uint64) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%04X", u)
	}
	return strings.Join(parts, " ")
}

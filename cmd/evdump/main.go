// evdump decodes hex-encoded vendor event frames, one per line, and
// prints the vendor event plus its portable translation. Useful for
// inspecting event traces captured from a live device.
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

	"github.com/ALLTERCO/wifi"
	"github.com/ALLTERCO/wifi/nonos"
)

func main() {
	fileName := flag.String("file", "", "Path to the input file. Reads stdin when empty.")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *fileName != "" {
		file, err := os.Open(*fileName)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		in = file
	}

	sc := bufio.NewScanner(in)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		frame, err := hex.DecodeString(line)
		if err != nil {
			log.Fatalf("line %d: %s", lineno, err)
		}
		vev, err := nonos.DecodeEvent(frame)
		if err != nil {
			log.Fatalf("line %d: %s", lineno, err)
		}
		fmt.Printf("%-22s", vev.Type.String())
		ev, ok := wifi.Translate(vev)
		if !ok {
			fmt.Println(" (no portable translation)")
			continue
		}
		fmt.Printf(" -> %s", ev.Type.String())
		switch ev.Type {
		case wifi.EventSTADisconnected:
			fmt.Printf(" reason=%d", ev.Reason)
		case wifi.EventSTAConnected:
			fmt.Printf(" bssid=%s channel=%d", hex.EncodeToString(ev.BSSID[:]), ev.Channel)
		case wifi.EventAPSTAConnected, wifi.EventAPSTADisconnected:
			fmt.Printf(" mac=%s", hex.EncodeToString(ev.MAC[:]))
		}
		fmt.Println()
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

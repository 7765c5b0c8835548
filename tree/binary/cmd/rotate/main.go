// Command rotate builds a tree from the keys on the first line of stdin,
// then reads "CHILD PARENT" pairs, one per line, and rotates the nodes
// found by those keys, printing the tree after each rotation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.lepak.sg/rotatree/tree/binary"
)

var verbose = flag.Bool("v", false, "log debug output")

func main() {
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	in := bufio.NewReader(os.Stdin)

	fmt.Print("keys: ")
	keys, err := readInts(in)
	if err != nil {
		log.WithError(err).Fatal("could not read keys")
	}

	tr := binary.New[int]()
	for _, k := range keys {
		if err := tr.Insert(k); err != nil {
			log.WithError(err).WithField("key", k).Fatal("insert failed")
		}
	}
	log.WithField("size", tr.Size()).Debug("built tree")

	fmt.Println("tree:")
	fmt.Print(tr.String())

	for {
		fmt.Print("child parent: ")
		pair, err := readInts(in)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			log.WithError(err).Error("bad input")
			continue
		}

		if err := rotate(tr, pair); err != nil {
			log.WithError(err).WithField("pair", pair).Error("rotation failed")
			continue
		}

		fmt.Print(tr.String())

		if err := tr.Check(); err != nil {
			log.WithError(err).Fatal("tree is broken")
		}
	}
}

func rotate(tr *binary.Tree[int], pair []int) error {
	if len(pair) != 2 {
		return errors.Errorf("want 2 keys, got %d", len(pair))
	}

	// Find returns nil for a missing key, which Rotate reports
	return tr.Rotate(tr.Find(pair[0]), tr.Find(pair[1]))
}

func readInts(r *bufio.Reader) ([]int, error) {
	raw, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || raw == "") {
		return nil, err
	}

	raws := strings.Fields(raw)

	out := make([]int, len(raws))

	for i, rawNum := range raws {
		num, err := strconv.Atoi(rawNum)
		if err != nil {
			return nil, errors.Wrapf(err, "key %d", i)
		}

		out[i] = num
	}
	return out, nil
}

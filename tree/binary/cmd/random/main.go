package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"go.lepak.sg/rotatree/tree/binary"
)

var (
	seed      = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num       = flag.Int("n", 10, "number of nodes in the tree")
	balanced  = flag.Bool("b", false, "if true, keep building the tree until it is balanced")
	rotations = flag.Int("r", 0, "number of random rotations to apply after building")
	verbose   = flag.Bool("v", false, "log debug output")
)

func main() {
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	llog := log.WithFields(logrus.Fields{
		"seed": *seed,
		"n":    *num,
	})

	var tr *binary.Tree[int]
	attempts := 0

	if *balanced {
		tr, attempts = binary.BuildRandomBalanced(*num, *seed)
		llog.WithField("attempts", attempts).Debug("built balanced tree")
	} else {
		tr = binary.BuildRandom(*num, *seed)
		llog.Debug("built tree")
	}

	if *rotations > 0 {
		done, err := binary.RotateRandomly(tr, *rotations, *seed)
		if err != nil {
			llog.WithError(err).Fatal("rotation failed")
		}
		llog.WithField("rotations", done).Debug("rotated tree")
	}

	preorder := make([]int, 0, *num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, *num)
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	fmt.Println("preorder:", preorder)
	fmt.Println("inorder:", inorder)

	fmt.Println("tree:")
	fmt.Println(tr.String())

	actual, ideal := tr.Height()
	fmt.Println("height:", actual, "ideal:", ideal)

	if *balanced {
		fmt.Println("attempts:", attempts)
	}

	if err := tr.Check(); err != nil {
		llog.WithError(err).Error("tree is broken")
		os.Exit(1)
	}
}

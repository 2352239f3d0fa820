package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"

	"pkg.jsn.cam/wordfreq/cmd/testdata/generator"
)

/*generates large text inputs for wordfreq*/

var (
	Kind       = flag.String("kind", "prose", "Generator to use ("+strings.Join(generator.List(), ", ")+")")
	Lines      = flag.Int64("lines", 0, "Number of lines to generate (0 = generator default)")
	Seed       = flag.Uint64("seed", 1, "Random seed")
	OutputPath = flag.String("output", "var/testdata.txt", "Output file path (.gz is compressed)")
)

func main() {
	flag.Parse()

	gen, err := generator.Get(*Kind)
	if err != nil {
		log.Fatal(err)
	}

	gen.Init(rand.New(rand.NewPCG(*Seed, *Seed)))

	count := *Lines
	if count <= 0 {
		count = gen.DefaultCount()
	}

	if err := os.MkdirAll(filepath.Dir(*OutputPath), 0755); err != nil {
		log.Fatal(err)
	}
	file, err := os.Create(*OutputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	var w io.Writer = file
	var zw *gzip.Writer
	if strings.HasSuffix(*OutputPath, ".gz") {
		zw = gzip.NewWriter(file)
		w = zw
	}

	bw := bufio.NewWriter(w)
	for i := int64(0); i < count; i++ {
		if err := gen.WriteLine(bw); err != nil {
			log.Fatal(err)
		}
	}

	if err := bw.Flush(); err != nil {
		log.Fatal(err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			log.Fatal(err)
		}
	}

	info, err := file.Stat()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Generated %s lines of %s data (%s) to %s\n",
		humanize.Comma(count), *Kind, humanize.Bytes(uint64(info.Size())), *OutputPath)
}

// Command gen writes the square and piece constants of package shogi.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
)

var kindNames = []string{
	"Pawn", "Lance", "Knight", "Silver", "Gold", "Bishop", "Rook", "King",
	"ProPawn", "ProLance", "ProKnight", "ProSilver", "ProBishop", "ProRook",
}

func main() {
	out := flag.String("o", "consts_gen.go", "output file")
	flag.Parse()

	src, err := format.Source(generate())
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

func generate() []byte {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen; DO NOT EDIT.\n\npackage shogi\n\n")

	buf.WriteString("// Squares, named by file digit and rank letter (a = rank 1).\nconst (\n")
	for file := 1; file <= 9; file++ {
		for rank := 1; rank <= 9; rank++ {
			fmt.Fprintf(&buf, "\tSQ%d%c Square = %d\n", file, 'A'+rank-1, file*9+rank-9)
		}
	}
	buf.WriteString(")\n\n")

	buf.WriteString("// Colored pieces.\nconst (\n")
	for _, color := range []struct {
		name   string
		offset int
	}{{"Black", 0}, {"White", 16}} {
		for i, kind := range kindNames {
			fmt.Fprintf(&buf, "\t%s%s Piece = %d\n", color.name, kind, i+1+color.offset)
		}
	}
	buf.WriteString(")\n")
	return buf.Bytes()
}

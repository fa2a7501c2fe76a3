package main

import (
	"fmt"
	"os"

	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Prints the page count of a pdf and whether it already carries a watermark.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <file.pdf>")
		os.Exit(2)
	}
	pdfFilePath := os.Args[1]

	pageCount, err := api.PageCountFile(pdfFilePath)
	if err != nil {
		panic(err)
	}

	watermarked, err := autowatermark.HasWatermark(pdfFilePath)
	if err != nil {
		panic(err)
	}

	fmt.Printf("PDF Page Count: %d\n", pageCount)
	fmt.Printf("Watermarked: %t\n", watermarked)
}

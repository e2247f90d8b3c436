// Package main is the checksum command.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/borud/checksum/pkg/digest"
)

const programName = "checksum"

type options struct {
	Algorithm string `kong:"short='a',help='digest algorithm',default='${defaultAlgorithm}',enum='${algorithms}',env='CHECKSUM_ALGORITHM'"`
	Encoding  string `kong:"short='e',help='output encoding',default='hex',enum='hex,base64',env='CHECKSUM_ENCODING'"`
	ChunkSize int    `kong:"help='read chunk size in bytes',default='65536',env='CHECKSUM_CHUNK_SIZE'"`
	Expect    string `kong:"help='expected digest in hex or base64, exit with an error on mismatch'"`
	Verbose   bool   `kong:"short='v',help='debug logging'"`
	Filename  string `kong:"arg,help='file to checksum',required"`
}

var errMismatch = errors.New("digest mismatch")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run the command with args and return the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opt options

	parser, err := kong.New(&opt,
		kong.Name(programName),
		kong.Description("Compute the checksum of a file."),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"algorithms":       strings.Join(digest.Names(), ","),
			"defaultAlgorithm": digest.DefaultAlgorithm,
		},
	)
	if err != nil {
		// only happens if the options struct is malformed
		panic(err)
	}

	_, err = parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		fmt.Fprintf(stderr, "usage: %s [flags] <filename>\n", programName)
		fmt.Fprintf(stderr, "run '%s --help' for more information\n", programName)
		return exitUsage
	}

	level := slog.LevelInfo
	if opt.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	err = checksum(opt, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
	}
	return exitCode(err)
}

func checksum(opt options, stdout io.Writer) error {
	alg, err := digest.Lookup(opt.Algorithm)
	if err != nil {
		return err
	}

	encoding, err := digest.ParseEncoding(opt.Encoding)
	if err != nil {
		return err
	}

	hasher := digest.NewHasher(digest.Config{
		Algorithm: alg,
		ChunkSize: opt.ChunkSize,
	})

	d, err := hasher.File(opt.Filename)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, d.Encode(encoding))
	if err != nil {
		return fmt.Errorf("error writing digest: %w", err)
	}

	if opt.Expect != "" && !d.Matches(opt.Expect) {
		return fmt.Errorf("%w for [%s]: expected %s, got %s", errMismatch, opt.Filename, opt.Expect, d.Encode(encoding))
	}

	return nil
}

// Command succinct builds rank indexes over bit strings and inspects snapshots.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	cli "github.com/urfave/cli/v2"

	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/codec"
	"github.com/hupe1980/succinct/internal/mmap"
)

var (
	bitsFlag = &cli.StringFlag{
		Name:     "bits",
		Usage:    "bit string such as 0100110, underscores are ignored",
		Required: true,
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log index construction at debug level",
	}
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:   "succinct",
		Usage:  "rank and select over succinct bit vectors",
		Writer: w,
		Flags:  []cli.Flag{verboseFlag},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "build a small vector, read two bits, set bit 0 and read it again",
				Action: runDemo,
			},
			{
				Name:      "rank",
				Usage:     "count ones and zeros in [0, index]",
				ArgsUsage: "--bits <bits> --index <i>",
				Flags: []cli.Flag{
					bitsFlag,
					&cli.IntFlag{Name: "index", Usage: "inclusive end position", Required: true},
				},
				Action: runRank,
			},
			{
				Name:      "select",
				Usage:     "find the position of the k-th one (or zero)",
				ArgsUsage: "--bits <bits> --k <k> [--zero]",
				Flags: []cli.Flag{
					bitsFlag,
					&cli.IntFlag{Name: "k", Usage: "occurrence to find, counting from 1", Required: true},
					&cli.BoolFlag{Name: "zero", Usage: "select zeros instead of ones"},
				},
				Action: runSelect,
			},
			{
				Name:      "stats",
				Usage:     "print index geometry and snapshot size",
				ArgsUsage: "--bits <bits> [--compression none|lz4|zstd]",
				Flags: []cli.Flag{
					bitsFlag,
					&cli.StringFlag{Name: "compression", Usage: "snapshot compression: none, lz4 or zstd", Value: "none"},
				},
				Action: runStats,
			},
			{
				Name:      "encode",
				Usage:     "index a bit string and write the snapshot to a file",
				ArgsUsage: "--bits <bits> --out <file> [--compression none|lz4|zstd] [--checksum crc32c|xxh3]",
				Flags: []cli.Flag{
					bitsFlag,
					&cli.StringFlag{Name: "out", Usage: "snapshot file to write", Required: true},
					&cli.StringFlag{Name: "compression", Usage: "snapshot compression: none, lz4 or zstd", Value: "none"},
					&cli.StringFlag{Name: "checksum", Usage: "payload checksum: crc32c or xxh3", Value: "crc32c"},
				},
				Action: runEncode,
			},
			{
				Name:      "inspect",
				Usage:     "print the header of a snapshot file and verify its payload",
				ArgsUsage: "<file>",
				Action:    runInspect,
			},
			{
				Name:      "bench",
				Usage:     "time rank and select queries on a random vector",
				ArgsUsage: "[--n <bits>] [--density <d>] [--queries <q>] [--seed <s>] [--quiet]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "n", Usage: "vector length in bits", Value: 1 << 20},
					&cli.Float64Flag{Name: "density", Usage: "probability of a one", Value: 0.5},
					&cli.IntFlag{Name: "queries", Usage: "queries per operation", Value: 1_000_000},
					&cli.Uint64Flag{Name: "seed", Usage: "random seed", Value: 42},
					&cli.BoolFlag{Name: "quiet", Usage: "hide the progress bar"},
				},
				Action: runBench,
			},
		},
	}
}

func options(ctx *cli.Context) []succinct.Option {
	if ctx.Bool(verboseFlag.Name) {
		return []succinct.Option{succinct.WithLogLevel(slog.LevelDebug)}
	}
	return nil
}

func runDemo(ctx *cli.Context) error {
	w := ctx.App.Writer

	bv := bitvector.Build([]int{0, 1, 0, 0, 1, 1, 0})
	for _, i := range []int{0, 1} {
		b, err := bv.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "bit %d: %s\n", i, b)
	}

	if err := bv.Set(0, bitvector.One); err != nil {
		return err
	}
	b, err := bv.Get(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bit 0 after set: %s\n", b)
	fmt.Fprintf(w, "bits: %s\n", bv)
	return nil
}

func runRank(ctx *cli.Context) error {
	idx, err := succinct.ParseRank(ctx.String(bitsFlag.Name), options(ctx)...)
	if err != nil {
		return err
	}
	i := ctx.Int("index")
	ones, err := idx.Rank1(i)
	if err != nil {
		return fmt.Errorf("%w: %w", succinct.ErrOutOfRange, err)
	}
	zeros, err := idx.Rank0(i)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "rank1(%d) = %d\nrank0(%d) = %d\n", i, ones, i, zeros)
	return nil
}

func runSelect(ctx *cli.Context) error {
	idx, err := succinct.ParseRank(ctx.String(bitsFlag.Name), options(ctx)...)
	if err != nil {
		return err
	}
	k := ctx.Int("k")
	kind, sel := bitvector.One, idx.Select1
	if ctx.Bool("zero") {
		kind, sel = bitvector.Zero, idx.Select0
	}
	pos, err := sel(k)
	if err != nil {
		return fmt.Errorf("%w: %w", succinct.ErrOutOfRange, err)
	}
	fmt.Fprintf(ctx.App.Writer, "select%s(%d) = %d\n", kind, k, pos)
	return nil
}

func runStats(ctx *cli.Context) error {
	compression, err := codec.ParseCompression(ctx.String("compression"))
	if err != nil {
		return err
	}
	opts := options(ctx)
	idx, err := succinct.ParseRank(ctx.String(bitsFlag.Name), opts...)
	if err != nil {
		return err
	}
	data, err := succinct.Encode(idx, append(opts, succinct.WithCompression(compression))...)
	if err != nil {
		return err
	}
	h, err := codec.ReadHeader(data)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintln(w, idx.Stats())
	fmt.Fprintf(w, "snapshot: %d bytes, payload %d bytes stored as %d (%s)\n",
		len(data), h.RawSize, h.StoredSize, h.Compression)
	return nil
}

func runEncode(ctx *cli.Context) error {
	compression, err := codec.ParseCompression(ctx.String("compression"))
	if err != nil {
		return err
	}
	checksum, err := codec.ParseChecksum(ctx.String("checksum"))
	if err != nil {
		return err
	}
	opts := options(ctx)
	idx, err := succinct.ParseRank(ctx.String(bitsFlag.Name), opts...)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	opts = append(opts, succinct.WithCompression(compression), succinct.WithChecksum(checksum))
	if err := succinct.WriteFile(out, idx, opts...); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "wrote %s (%d bits)\n", out, idx.Len())
	return nil
}

func runInspect(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%w: expected one snapshot file", succinct.ErrInvalidArgument)
	}
	m, err := mmap.Open(ctx.Args().First())
	if err != nil {
		return err
	}
	defer m.Close()

	data := m.Bytes()
	h, err := codec.ReadHeader(data)
	if err != nil {
		if errors.Is(err, codec.ErrUnsupported) {
			return fmt.Errorf("%w: %w", succinct.ErrUnsupported, err)
		}
		return fmt.Errorf("%w: %w", succinct.ErrCorrupt, err)
	}

	rows := [][]string{
		{"kind", h.Kind.String()},
		{"version", fmt.Sprint(h.Version)},
		{"compression", h.Compression.String()},
		{"checksum", fmt.Sprintf("%s %016x", h.Checksum, h.Sum)},
		{"payload", fmt.Sprintf("%d bytes stored as %d", h.RawSize, h.StoredSize)},
	}

	v, err := succinct.Decode(data, options(ctx)...)
	if err != nil {
		return err
	}
	if l, ok := v.(interface{ Len() int }); ok {
		rows = append(rows, []string{"length", fmt.Sprint(l.Len())})
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendBulk(rows)
	table.Render()
	fmt.Fprintln(ctx.App.Writer, "payload: ok")
	return nil
}

const benchBatch = 1024

func runBench(ctx *cli.Context) error {
	n, queries, density := ctx.Int("n"), ctx.Int("queries"), ctx.Float64("density")
	if n <= 0 || queries <= 0 || density < 0 || density > 1 {
		return fmt.Errorf("%w: n and queries must be positive and density in [0, 1]", succinct.ErrInvalidArgument)
	}

	rng := rand.New(rand.NewPCG(ctx.Uint64("seed"), 0))
	bits := make([]uint8, n)
	for i := range bits {
		if rng.Float64() < density {
			bits[i] = 1
		}
	}

	w := ctx.App.Writer
	start := time.Now()
	idx := succinct.BuildRank(bits, options(ctx)...)
	fmt.Fprintf(w, "build: %d bits in %s\n", n, time.Since(start).Round(time.Microsecond))

	progress := ctx.App.ErrWriter
	if ctx.Bool("quiet") || progress == nil {
		progress = io.Discard
	}

	rank := func() error {
		_, err := idx.Rank1(rng.IntN(n))
		return err
	}
	if err := timeQueries(w, progress, "rank1", queries, rank); err != nil {
		return err
	}

	ones := idx.Count(bitvector.One)
	if ones == 0 {
		fmt.Fprintln(w, "select1: skipped, no ones")
		return nil
	}
	sel := func() error {
		_, err := idx.Select1(1 + rng.IntN(int(ones)))
		return err
	}
	return timeQueries(w, progress, "select1", queries, sel)
}

func timeQueries(w, progress io.Writer, name string, queries int, query func() error) error {
	bar := progressbar.NewOptions(queries,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription(name),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	var elapsed time.Duration
	for done := 0; done < queries; {
		batch := min(benchBatch, queries-done)
		start := time.Now()
		for range batch {
			if err := query(); err != nil {
				return err
			}
		}
		elapsed += time.Since(start)
		done += batch
		_ = bar.Add(batch)
	}
	_ = bar.Finish()

	fmt.Fprintf(w, "%s: %d queries, %s/op\n", name, queries, elapsed/time.Duration(queries))
	return nil
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/unicode/norm"

	"github.com/aglyzov/go-tst/tst"
)

// Usage:
//
//	go run ./tst/example [-normalize] [-fold] [-markdown] [-dump]
func main() {
	var (
		normalize = flag.Bool("normalize", false, "apply Unicode NFC normalization to keys")
		fold      = flag.Bool("fold", false, "make keys case-insensitive")
		markdown  = flag.Bool("markdown", false, "render tables as markdown")
		dump      = flag.Bool("dump", false, "dump the trie structure after the inserts")
	)

	flag.Parse()

	var opts []tst.Option

	if *normalize {
		opts = append(opts, tst.Normalize(norm.NFC))
	}
	if *fold {
		opts = append(opts, tst.FoldCase())
	}

	trie := tst.New[int](opts...)

	for _, kv := range []struct {
		key string
		val int
	}{
		{"bag", 10},
		{"bat", 20},
		{"cab", 70},
		{"bagel", 30},
		{"beet", 40},
		{"abc", 60},
	} {
		if err := trie.Add(kv.key, kv.val); err != nil {
			slog.Error("Failed to insert", "key", kv.key, "error", err)
			os.Exit(1)
		}
	}

	if *dump {
		if err := trie.Dump(os.Stdout); err != nil {
			slog.Error("Failed to dump the trie", "error", err)
			os.Exit(1)
		}
	}

	render(trie, *markdown)
	slog.Info("Inserted", "size", trie.Size(), "stats", fmt.Sprintf("%+v", trie.Stats()))

	for _, key := range []string{"abc", "beet", "a"} {
		val, ok := trie.Value(key)
		slog.Info("Value", "key", key, "value", val, "present", ok)
	}

	for _, key := range []string{"baet", "beet", "abc"} {
		slog.Info("Contains", "key", key, "result", trie.Contains(key))
	}

	slog.Info("Remove", "key", "beet", "result", trie.Remove("beet"))
	slog.Info("Contains", "key", "beet", "result", trie.Contains("beet"))

	render(trie, *markdown)
	slog.Info("Pruned", "nodes", trie.Prune(), "size", trie.Size())
}

// render prints the trie entries in key order as a table.
func render(trie *tst.Trie[int], markdown bool) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"Key", "Value"})

	for key, val := range trie.All() {
		tbl.AppendRow(table.Row{key, val})
	}

	tbl.AppendFooter(table.Row{"Total", trie.Size()})

	if markdown {
		tbl.RenderMarkdown()
	} else {
		tbl.Render()
	}
}

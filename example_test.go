package fileverse_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jpl-au/fileverse"
)

func Example() {
	dir, _ := os.MkdirTemp("", "fileverse-example")
	defer os.RemoveAll(dir)

	target := filepath.Join(dir, "notes.txt")
	os.WriteFile(target, []byte("draft one\n"), 0644)

	// Each Open serves one command, like a command-line invocation.
	run := func(fn func(*fileverse.Store) error) {
		store, err := fileverse.Open(target, fileverse.Config{})
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		if err := fn(store); err != nil {
			log.Fatal(err)
		}
	}

	run(func(s *fileverse.Store) error { return s.Snap("") })
	os.WriteFile(target, []byte("draft two\n"), 0644)
	run(func(s *fileverse.Store) error { return s.Snap("") })

	// Bring back the first draft.
	run(func(s *fileverse.Store) error { return s.PreviewBackward(fileverse.FileIndex) })
	run(func(s *fileverse.Store) error { return s.Commit() })

	data, _ := os.ReadFile(target)
	fmt.Print(string(data))
	// Output: draft one
}

func ExampleParse() {
	chain, err := fileverse.Parse([]string{
		"<######0",
		"5 ~> 7",
		"7 ~> 9",
		"9 ~> 12",
		"######>",
		"You're", "welcome",
		"to", "fileverse.",
		"control", "your", "files",
	})
	if err != nil {
		log.Fatal(err)
	}

	content, _ := chain.Forward()
	fmt.Println(chain.Count(), content)
	// Output: 3 [to fileverse.]
}

func ExampleChain_AddSnapshot() {
	chain := fileverse.NewChain()
	chain.AddSnapshot([]string{"new", "snapshot"}, "sloan")

	for _, l := range chain.Lines() {
		fmt.Println(l)
	}
	// Output:
	// <######0
	// sloan>3 ~> 5
	// ######>
	// new
	// snapshot
}

func ExampleParsePreview() {
	p, _ := fileverse.ParsePreview("real content\n")
	p.Content = []string{"staged"}
	fmt.Print(p.Text())
	// Output:
	// =============SNAPSHOT============
	//
	// staged
	//
	// ==================================
	// real content
}

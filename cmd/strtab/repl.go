package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"strtab/intern"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive session over one in-memory table",
	Run: func(cmd *cobra.Command, _ []string) {
		s := &session{tbl: intern.New(), out: cmd.OutOrStdout()}
		fmt.Fprintln(s.out, `strtab session — type "help" for commands`)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(s.out, "> ")
			if !scanner.Scan() {
				break
			}
			if !s.eval(scanner.Text()) {
				break
			}
		}
	},
}

// session holds the REPL state: the current table and the output sink.
// clone swaps the current table for its copy, so commands always go
// through the session rather than a captured *Table.
type session struct {
	tbl *intern.Table
	out io.Writer
}

// eval executes one command line. It returns false when the session
// should end.
func (s *session) eval(line string) bool {
	cmd, arg := splitCommand(line)

	switch cmd {
	case "":
		// blank line

	case "add":
		if arg == "" {
			fmt.Fprintln(s.out, "usage: add <text>")
			break
		}
		fmt.Fprintln(s.out, statusString(s.tbl.Add(arg)))

	case "remove":
		if arg == "" {
			fmt.Fprintln(s.out, "usage: remove <text>")
			break
		}
		fmt.Fprintln(s.out, statusString(s.tbl.Remove(arg)))

	case "find":
		if arg == "" {
			fmt.Fprintln(s.out, "usage: find <text>")
			break
		}
		s.printRecord(s.tbl.FindByText(arg))

	case "id":
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			fmt.Fprintln(s.out, "usage: id <number>")
			break
		}
		s.printRecord(s.tbl.FindByID(uint32(n)))

	case "list":
		key := intern.KeyText
		switch arg {
		case "", "text":
		case "id":
			key = intern.KeyID
		default:
			fmt.Fprintln(s.out, "usage: list [text|id]")
			return true
		}
		s.printList(key)

	case "renumber":
		s.tbl.Renumber()
		fmt.Fprintf(s.out, "renumbered %d entries\n", s.tbl.Len())

	case "clone":
		s.tbl = s.tbl.Clone()
		fmt.Fprintf(s.out, "session now uses a copy with %d entries\n", s.tbl.Len())

	case "stats":
		s.printStats()

	case "help":
		s.printHelp()

	case "quit", "exit":
		return false

	default:
		fmt.Fprintf(s.out, "unknown command %q — type \"help\"\n", cmd)
	}
	return true
}

// splitCommand separates the command word from its argument, keeping the
// argument verbatim so interned text may contain spaces.
func splitCommand(line string) (cmd, arg string) {
	line = strings.TrimSpace(line)
	cmd, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func (s *session) printRecord(rec *intern.Record) {
	if rec == nil {
		fmt.Fprintln(s.out, statusString(intern.StatusNotFound))
		return
	}
	fmt.Fprintf(s.out, "%s id=%d refs=%d text=%q\n",
		statusString(intern.StatusFound), rec.ID, rec.RefCount, rec.Text)
}

func (s *session) printList(key intern.Key) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(s.out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"ID", "REFS", "TEXT"})
	s.tbl.Walk(key, func(rec *intern.Record) {
		tbl.AppendRow(table.Row{rec.ID, rec.RefCount, rec.Text})
	})
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d entries by %s", s.tbl.Len(), key)})
	tbl.Render()
}

func (s *session) printStats() {
	fmt.Fprintf(s.out, "entries: %s\n", humanize.Comma(int64(s.tbl.Len())))
	fmt.Fprintf(s.out, "next id: %d\n", s.tbl.NextID())
	fmt.Fprintf(s.out, "memory:  %s\n", humanize.IBytes(uint64(s.tbl.MemoryUsage())))
}

func (s *session) printHelp() {
	fmt.Fprint(s.out, `commands:
  add <text>       intern text (bumps the ref count on a duplicate)
  remove <text>    delete an entry outright
  find <text>      look up by text
  id <number>      look up by id
  list [text|id]   walk entries in key order
  renumber         reassign dense ids in text order
  clone            replace the session table with a deep copy
  stats            entry count, next id, memory usage
  quit             end the session
`)
}

// statusString renders an operation status with the conventional colors:
// green for found, yellow for a miss, red for failure.
func statusString(st intern.Status) string {
	switch st {
	case intern.StatusFound:
		return color.GreenString(st.String())
	case intern.StatusNotFound:
		return color.YellowString(st.String())
	default:
		return color.RedString(st.String())
	}
}

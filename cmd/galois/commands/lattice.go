package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/galois/config"
	"github.com/teranos/galois/display"
	"github.com/teranos/galois/lattice"
	"github.com/teranos/galois/render"
)

var (
	latticeFormat  string
	latticeOmitTop bool
	latticeMaxAttr int
)

// LatticeCmd builds the concept lattice of a relation file and renders
// it as a table, a JSON graph, or a Graphviz cover graph.
var LatticeCmd = &cobra.Command{
	Use:   "lattice <relation.yaml>",
	Short: "Build the concept lattice of a relation file",
	Long: `Enumerate the formal concepts of an entity/attribute relation and
reduce the concept order to its cover graph.

The relation file maps each entity to its attributes:

  description: fruit tasting notes
  relation:
    apple:  [red, sweet, crunchy]
    banana: [yellow, sweet, curved]

Formats:
  table  Concept table plus cover edges (default)
  json   Node/link graph for the renderer
  dot    Graphviz digraph of the cover graph`,
	Args: cobra.ExactArgs(1),
	RunE: runLattice,
}

func init() {
	LatticeCmd.Flags().StringVarP(&latticeFormat, "format", "f", "", "Output format: table, json, dot (default from config)")
	LatticeCmd.Flags().BoolVar(&latticeOmitTop, "omit-top", false, "Drop the empty-extension top concept from graph output")
	LatticeCmd.Flags().IntVar(&latticeMaxAttr, "max-attributes", 0, "Override the attribute universe bound")
}

func runLattice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if latticeFormat != "" {
		format = latticeFormat
	}
	if display.ShouldOutputJSON(cmd) && latticeFormat == "" {
		format = config.FormatJSON
	}
	omitTop := cfg.Output.OmitTop
	if cmd.Flags().Changed("omit-top") {
		omitTop = latticeOmitTop
	}
	maxAttr := cfg.Lattice.MaxAttributes
	if latticeMaxAttr > 0 {
		maxAttr = latticeMaxAttr
	}

	cf, err := LoadContextFile(args[0])
	if err != nil {
		return err
	}

	ctx, err := lattice.New(cf.Relation, lattice.WithMaxAttributes(maxAttr))
	if err != nil {
		return err
	}
	lat := lattice.Build(ctx)

	switch format {
	case config.FormatJSON:
		opts := []render.Option{}
		if omitTop {
			opts = append(opts, render.WithOmitTop())
		}
		graph := render.NewBuilder(opts...).BuildGraph(lat.Concepts, lat.Edges, cf.Description)
		return display.OutputJSON(graph)

	case config.FormatDOT:
		opts := []render.Option{}
		if omitTop {
			opts = append(opts, render.WithOmitTop())
		}
		fmt.Println(render.NewBuilder(opts...).BuildDOT(lat.Concepts, lat.Edges, cf.Description))
		return nil

	case config.FormatTable:
		printLatticeTable(lat)
		return nil

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printLatticeTable(lat *lattice.Lattice) {
	data := pterm.TableData{{"ID", "Intension", "Extension"}}
	for _, c := range lat.Concepts {
		data = append(data, []string{
			strconv.Itoa(c.ID),
			joinSorted(c.Intension),
			joinSorted(c.Extension),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	pterm.Println()
	pterm.Info.Printf("%d concepts, %d cover edges\n", len(lat.Concepts), len(lat.Edges))
	for _, e := range lat.Edges {
		pterm.Printf("  c%d -> c%d\n", e.Parent, e.Child)
	}
}

func joinSorted(s lattice.Set) string {
	if len(s) == 0 {
		return "{}"
	}
	return strings.Join(s.Sorted(), ", ")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

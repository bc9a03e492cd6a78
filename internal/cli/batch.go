package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/brepml/brepgraph/pkg/pipeline"
)

// batchCommand creates the batch command for converting many documents.
func (c *CLI) batchCommand() *cobra.Command {
	var (
		formatsStr string
		outDir     string
		noCache    bool
		plain      bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "batch [documents...]",
		Short: "Convert multiple shape documents",
		Long: `Convert multiple shape documents.

The batch command runs the conversion pipeline over every document given on
the command line and writes one set of artifacts per document. Progress is
shown interactively; use --plain for log-style output in scripts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runBatch(cmd.Context(), args, opts, outDir, noCache, plain)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "directory for output files (default: next to each input)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), dot, svg (comma-separated)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label diagram nodes with entity kinds")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&plain, "plain", false, "plain output without interactive progress")

	return cmd
}

// runBatch converts each input document in turn.
func (c *CLI) runBatch(ctx context.Context, inputs []string, opts pipeline.Options, outDir string, noCache, plain bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	ctx = withLogger(ctx, c.Logger)

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	m := batchModel{
		ctx:    ctx,
		runner: runner,
		opts:   opts,
		outDir: outDir,
		inputs: inputs,
	}

	var final batchModel
	if plain {
		final = m.runPlain()
	} else {
		out, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}
		final = out.(batchModel)
	}

	printBatchSummary(final.done)
	if final.failed > 0 {
		return fmt.Errorf("%d of %d documents failed", final.failed, len(inputs))
	}
	return nil
}

// =============================================================================
// batchModel - Conversion Progress
// =============================================================================

// batchItem records the outcome of converting one document.
type batchItem struct {
	path   string
	stats  pipeline.Stats
	cached bool
	err    error
}

type batchResultMsg batchItem

type batchTickMsg struct{}

// batchModel is the bubbletea model driving sequential batch conversion.
type batchModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options
	outDir string
	inputs []string

	next   int
	done   []batchItem
	failed int
	frame  int
}

func (m batchModel) Init() tea.Cmd {
	return tea.Batch(m.convertNext(), batchTick())
}

func (m batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case batchTickMsg:
		m.frame++
		return m, batchTick()
	case batchResultMsg:
		item := batchItem(msg)
		m.done = append(m.done, item)
		if item.err != nil {
			m.failed++
		}
		m.next++
		if m.next >= len(m.inputs) {
			return m, tea.Quit
		}
		return m, m.convertNext()
	}
	return m, nil
}

func (m batchModel) View() string {
	var b strings.Builder
	for _, item := range m.done {
		if item.err != nil {
			b.WriteString(styleIconError.Render(iconError) + " " + item.path + " " + StyleDim.Render(item.err.Error()) + "\n")
		} else {
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + item.path + "\n")
		}
	}
	if m.next < len(m.inputs) {
		b.WriteString(styleIconSpinner.Render(spinnerFrames[m.frame%len(spinnerFrames)]))
		b.WriteString(" " + m.inputs[m.next] + "\n")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", len(m.done), len(m.inputs))))
	b.WriteString("\n")
	return b.String()
}

// convertNext returns a command that converts the next pending document.
func (m batchModel) convertNext() tea.Cmd {
	input := m.inputs[m.next]
	return func() tea.Msg {
		item := m.convertOne(input)
		return batchResultMsg(item)
	}
}

// runPlain converts all documents without the interactive view.
func (m batchModel) runPlain() batchModel {
	prog := newProgress(loggerFromContext(m.ctx))
	for _, input := range m.inputs {
		item := m.convertOne(input)
		m.done = append(m.done, item)
		if item.err != nil {
			m.failed++
			printError("%s: %v", input, item.err)
		} else {
			printSuccess("%s", input)
		}
	}
	prog.done(fmt.Sprintf("Converted %d documents", len(m.done)-m.failed))
	return m
}

// convertOne runs the pipeline for a single document and writes its artifacts.
func (m batchModel) convertOne(input string) batchItem {
	opts := m.opts
	opts.Input = input

	result, err := m.runner.Execute(m.ctx, opts)
	if err != nil {
		return batchItem{path: input, err: err}
	}

	base := batchBasePath(m.outDir, input)
	for _, format := range opts.Formats {
		data := result.Artifacts[format]
		if data == nil {
			return batchItem{path: input, err: fmt.Errorf("no artifact produced for format %s", format)}
		}
		if err := os.WriteFile(base+"."+format, data, 0o644); err != nil {
			return batchItem{path: input, err: err}
		}
	}

	return batchItem{
		path:   input,
		stats:  result.Stats,
		cached: result.CacheInfo.ConvertHit,
	}
}

// batchBasePath places outputs next to the input, or in outDir when set.
func batchBasePath(outDir, input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if outDir == "" {
		return base
	}
	return filepath.Join(outDir, filepath.Base(base))
}

func batchTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return batchTickMsg{}
	})
}

// =============================================================================
// Summary Table
// =============================================================================

// printBatchSummary prints a per-document result table after the run.
func printBatchSummary(items []batchItem) {
	if len(items) == 0 {
		return
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, item := range items {
		if item.err != nil {
			rows = append(rows, []string{item.path, "", "", "", "", "failed"})
			continue
		}
		status := iconFresh
		if item.cached {
			status = iconCached
		}
		rows = append(rows, []string{
			item.path,
			fmt.Sprintf("%d", item.stats.VertexCount),
			fmt.Sprintf("%d", item.stats.EdgeCount),
			fmt.Sprintf("%d", item.stats.FaceCount),
			fmt.Sprintf("%d", item.stats.ControlPointCount),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Document", "Vertices", "Edges", "Faces", "Ctrl Pts", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleValue
			}
			return StyleDim
		})

	fmt.Println(t.Render())
}

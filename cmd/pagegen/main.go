// Command pagegen renders the site's generated layouts outside the server:
// particle fields as JSON and the CV timelines as SVG.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Zachkp/personal-page/internal/content"
	"github.com/Zachkp/personal-page/internal/particles"
	"github.com/Zachkp/personal-page/internal/timeline"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	count      int
	seed       int
	css        bool
	plot       bool
	dataDir    string
	configFile string
	outputFile string
	asJSON     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "pagegen",
		Short:         "render portfolio page layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	particlesCmd := &cobra.Command{
		Use:   "particles",
		Short: "print the background particle layout",
		Args:  cobra.NoArgs,
		RunE:  runParticles,
	}
	particlesCmd.Flags().IntVar(&count, "count", particles.DefaultCount, "number of particles")
	particlesCmd.Flags().IntVar(&seed, "seed", particles.DefaultSeed, "base seed")
	particlesCmd.Flags().BoolVar(&css, "css", false, "print inline style maps instead of numbers")
	particlesCmd.Flags().BoolVar(&plot, "plot", false, "plot particle sizes instead of printing JSON")

	timelineCmd := &cobra.Command{
		Use:       "timeline [experience|technologies]",
		Short:     "render a CV timeline",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"experience", "technologies"},
		RunE:      runTimeline,
	}
	timelineCmd.Flags().StringVar(&dataDir, "data", "./data", "content directory")
	timelineCmd.Flags().StringVar(&configFile, "config", "", "timeline config file (yaml)")
	timelineCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default <kind>.svg, - for stdout)")
	timelineCmd.Flags().BoolVar(&asJSON, "json", false, "print positions as JSON instead of SVG")

	rootCmd.AddCommand(particlesCmd, timelineCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runParticles(cmd *cobra.Command, args []string) error {
	field := particles.NewField(count, seed)
	out := cmd.OutOrStdout()

	if plot {
		if field.Count == 0 {
			return fmt.Errorf("nothing to plot for count %d", count)
		}
		sizes := make([]float64, field.Count)
		for i, s := range field.Styles {
			sizes[i] = s.Width
		}
		graph := asciigraph.Plot(sizes,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("particle size (px), seed %#x", seed)))
		fmt.Fprintln(out, graph)
		return nil
	}

	if css {
		return writeJSON(out, field.CSS())
	}
	return writeJSON(out, field)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	kind := args[0]

	cfg, err := timeline.LoadConfig(configFile)
	if err != nil {
		return err
	}
	tl, err := timeline.New(cfg)
	if err != nil {
		return err
	}
	loader := content.NewLoader(dataDir)

	var positions any
	var markers []timeline.Marker
	switch kind {
	case "experience":
		cv, err := loader.CV()
		if err != nil {
			return err
		}
		items := timeline.PositionExperience(tl, cv.Experience)
		positions = items
		markers = timeline.ExperienceMarkers(items,
			func(e content.Experience) string { return e.Company },
			func(e content.Experience) string { return e.Period() })
	case "technologies":
		techs, err := loader.Technologies()
		if err != nil {
			return err
		}
		valid, skipped := timeline.Placeable(techs)
		for _, t := range skipped {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %q: unreadable start %q\n", t.Name, t.Start)
		}
		groups := timeline.GroupTechnologies(tl, valid)
		positions = groups
		markers = timeline.GroupMarkers(groups, func(t content.Technology) string { return t.Name })
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), positions)
	}

	svg := timeline.Render(tl, markers, timeline.DefaultStyle())
	path := outputFile
	if path == "" {
		path = kind + ".svg"
	}
	if path == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("error writing SVG file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Timeline SVG generated successfully: %s (%d markers)\n", path, len(markers))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

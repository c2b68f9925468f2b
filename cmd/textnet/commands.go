package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/katalvlaran/textnet"
	"github.com/katalvlaran/textnet/core"
	"github.com/katalvlaran/textnet/internal/config"
	"github.com/katalvlaran/textnet/internal/logging"
	"github.com/katalvlaran/textnet/internal/tidyio"
)

type flags struct {
	configPath string
	input      string
	attrs      string
	logLevel   string
	color      bool
	quiet      bool
}

// session is what every subcommand receives after the persistent setup.
type session struct {
	out    io.Writer
	logw   io.Writer
	color  bool
	logger *logging.Logger
	net    *textnet.Textnet
}

// newRootCmd writes results to out and log lines to logw. Errors are
// returned, not printed; main reports them.
func newRootCmd(out, logw io.Writer) *cobra.Command {
	f := &flags{}
	s := &session{out: out, logw: logw}

	root := &cobra.Command{
		Use:           "textnet",
		Short:         "Document–term networks from tidy term counts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open(cmd.Context(), f)
		},
	}
	root.SetOut(out)
	root.SetErr(logw)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&f.input, "input", "i", "", "count table (.csv, .tsv or .xlsx)")
	pf.StringVar(&f.attrs, "attrs", "", "YAML document attributes")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info or error (overrides config)")
	pf.BoolVar(&f.color, "color", false, "colorize JSON output")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "discard all log output")
	_ = root.MarkPersistentFlagRequired("input")

	root.AddCommand(
		weightsCmd(s),
		graphCmd(s),
		projectCmd(s),
		clustersCmd(s),
		contextCmd(s),
	)

	return root
}

func (s *session) open(ctx context.Context, f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if f.quiet {
		s.logger = logging.NewDiscard()
	} else {
		s.logger = logging.NewTo(s.logw, cfg.LogLevel)
	}
	s.color = f.color

	counts, err := tidyio.ReadCounts(f.input)
	if err != nil {
		s.logger.Error("reading %s: %v", f.input, err)
		return err
	}
	s.logger.Info("read %d count rows from %s", len(counts), f.input)
	s.logger.Debug("log level %s, resolution %g", s.logger.Level(), cfg.Clustering.Resolution)

	opts := cfg.Options()
	if f.attrs != "" {
		attrs, err := tidyio.ReadDocAttrs(f.attrs)
		if err != nil {
			s.logger.Error("reading %s: %v", f.attrs, err)
			return err
		}
		opts = append(opts, textnet.WithDocAttrs(attrs))
	}

	s.net, err = textnet.New(counts, opts...)
	if err != nil {
		s.logger.Error("building network: %v", err)
		return err
	}
	d, t := s.net.Weights().Dims()
	s.logger.Debug("weight matrix %d×%d, %d edges", d, t, s.net.Graph().EdgeCount())
	if comps, err := s.net.Components(ctx); err == nil {
		s.logger.Debug("%d connected components", len(comps))
	}

	return nil
}

func (s *session) emit(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	raw = pretty.Pretty(raw)
	if s.color {
		raw = pretty.Color(raw, nil)
	}
	_, err = s.out.Write(raw)

	return err
}

func weightsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "weights",
		Short: "Print the retained TF-IDF rows",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return s.emit(s.net.Rows())
		},
	}
}

func graphCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the bipartite graph with cluster labels",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			network, err := s.net.Export()
			if err != nil {
				return err
			}
			return s.emit(network)
		},
	}
}

func projectCmd(s *session) *cobra.Command {
	var nodeType string
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the one-mode projection onto documents or terms",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			nt, err := core.ParseNodeType(nodeType)
			if err != nil {
				return err
			}
			g, err := s.net.Project(nt)
			if err != nil {
				return err
			}
			s.logger.Info("%s projection: %d nodes, %d edges", nt, g.VertexCount(), g.EdgeCount())
			return s.emit(textnet.ExportGraph(g, nil))
		},
	}
	cmd.Flags().StringVar(&nodeType, "type", "doc", "doc or term")

	return cmd
}

type clusterReport struct {
	Quality     float64    `json:"quality"`
	Clusters    int        `json:"clusters"`
	Communities [][]string `json:"communities"`
}

func clustersCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clusters",
		Short: "Partition documents and terms jointly",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p, err := s.net.Clusters()
			if err != nil {
				return err
			}
			s.logger.Info("found %d clusters, quality %.4f", p.NumClusters(), p.Quality)
			return s.emit(clusterReport{
				Quality:     p.Quality,
				Clusters:    p.NumClusters(),
				Communities: p.Communities(),
			})
		},
	}
}

func contextCmd(s *session) *cobra.Command {
	var cxt bool
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the formal context (alpha-cut of the weight matrix)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			c, err := s.net.Context()
			if err != nil {
				return err
			}
			if cxt {
				return c.WriteCXT(s.out)
			}
			return s.emit(c)
		},
	}
	cmd.Flags().BoolVar(&cxt, "cxt", false, "write Burmeister .cxt instead of JSON")

	return cmd
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gorustyt/regionnav/common"
	"github.com/gorustyt/regionnav/common/logger"
	"github.com/gorustyt/regionnav/config"
	"github.com/gorustyt/regionnav/halfedge"
	"github.com/gorustyt/regionnav/meshdata"
	"github.com/gorustyt/regionnav/navmesh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// app carries what every subcommand needs once the root pre-run finished.
type app struct {
	configPath string
	logLevel   string
	noMerge    bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "navtool",
		Short:         "Build navigation meshes and query paths on them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "override the configured log level")
	flags.BoolVar(&a.noMerge, "no-merge", false, "keep every input polygon as its own region")

	root.AddCommand(a.buildCmd(), a.pathCmd(), a.clampCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.noMerge {
		cfg.NavMesh.MergeConvexRegions = false
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// load reads the soup at path and builds a navmesh from it.
func (a *app) load(path string) (*navmesh.NavMesh, error) {
	data, err := meshdata.Load(path)
	if err != nil {
		return nil, err
	}
	mesh, err := data.ToMesh()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Info("mesh loaded", zap.String("path", path),
		zap.Int("vertices", len(data.Vertices)), zap.Int("polygons", len(data.Polygons)))
	return navmesh.New(a.cfg.NavMesh, a.log).Build(mesh), nil
}

func (a *app) buildCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "build <mesh>",
		Short: "Merge a polygon soup into convex regions and report the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "polygons: %d\n", len(n.Mesh.Polygons))
			fmt.Fprintf(out, "regions: %d\n", len(n.Regions))
			fmt.Fprintf(out, "nodes: %d\n", n.Graph.NodeCount())
			fmt.Fprintf(out, "edges: %d\n", n.Graph.EdgeCount())
			fmt.Fprintf(out, "build time: %s\n", time.Since(start))
			if output == "" {
				return nil
			}
			if err := meshdata.FromRegions(n.Mesh, n.Regions).Save(output); err != nil {
				return err
			}
			a.log.Info("regions written", zap.String("path", output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the regions to a .yaml, .bin or .pb file")
	return cmd
}

type queryFile struct {
	From []float32 `yaml:"from"`
	To   []float32 `yaml:"to"`
}

func (a *app) pathCmd() *cobra.Command {
	var from, to []float32
	var queries string
	var workers int
	cmd := &cobra.Command{
		Use:   "path <mesh>",
		Short: "Find a path between two points, or for every query of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var batch []navmesh.PathQuery
			if queries != "" {
				var err error
				if batch, err = loadQueries(queries); err != nil {
					return err
				}
			} else {
				f, err := vec3(from)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				t, err := vec3(to)
				if err != nil {
					return fmt.Errorf("--to: %w", err)
				}
				batch = []navmesh.PathQuery{{From: f, To: t}}
			}

			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			paths, err := n.FindPaths(cmd.Context(), batch, workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, path := range paths {
				if len(path) == 0 {
					fmt.Fprintf(out, "%d: no path\n", i)
					continue
				}
				fmt.Fprintf(out, "%d:", i)
				for _, p := range path {
					fmt.Fprintf(out, " (%g %g %g)", p[0], p[1], p[2])
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float32SliceVar(&from, "from", nil, "start point x,y,z")
	flags.Float32SliceVar(&to, "to", nil, "end point x,y,z")
	flags.StringVarP(&queries, "queries", "q", "", "YAML list of {from, to} queries")
	flags.IntVarP(&workers, "workers", "w", 0, "concurrent queries, 0 for no limit")
	return cmd
}

func (a *app) clampCmd() *cobra.Command {
	var start, end []float32
	var region int32
	cmd := &cobra.Command{
		Use:   "clamp <mesh>",
		Short: "Keep a movement on the mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := vec3(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			e, err := vec3(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			n, err := a.load(args[0])
			if err != nil {
				return err
			}

			current := halfedge.PolygonID(region)
			if current == halfedge.NoPolygon {
				current = n.RegionForPoint(s, a.cfg.NavMesh.EpsilonContainsTest)
			}
			if current == halfedge.NoPolygon && n.RegionForPoint(e, a.cfg.NavMesh.EpsilonContainsTest) == halfedge.NoPolygon {
				return fmt.Errorf("start (%g %g %g) is not on the mesh, pass --region", s[0], s[1], s[2])
			}
			current, p := n.ClampMovement(current, s, e)
			fmt.Fprintf(cmd.OutOrStdout(), "region %d: (%g %g %g)\n", current, p[0], p[1], p[2])
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float32SliceVar(&start, "start", nil, "current position x,y,z")
	flags.Float32SliceVar(&end, "end", nil, "desired position x,y,z")
	flags.Int32Var(&region, "region", -1, "current region, looked up from --start when -1")
	return cmd
}

func vec3(v []float32) (common.Vec3, error) {
	if len(v) != 3 {
		return common.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return common.Vec3{v[0], v[1], v[2]}, nil
}

func loadQueries(path string) ([]navmesh.PathQuery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file []queryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res := make([]navmesh.PathQuery, 0, len(file))
	for i, q := range file {
		from, err := vec3(q.From)
		if err != nil {
			return nil, fmt.Errorf("%s: query %d from: %w", path, i, err)
		}
		to, err := vec3(q.To)
		if err != nil {
			return nil, fmt.Errorf("%s: query %d to: %w", path, i, err)
		}
		res = append(res, navmesh.PathQuery{From: from, To: to})
	}
	return res, nil
}

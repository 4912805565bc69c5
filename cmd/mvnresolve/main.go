// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mvnresolve reads a small text description of a package
// universe, collects the raw dependency tree for one root artifact, runs
// it through the conflict resolver, and prints the resolved tree.
package main

import (
	"fmt"
	"os"

	"deps.dev/util/mvnresolve/collector"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/manage"
	"deps.dev/util/mvnresolve/resolve"
	"deps.dev/util/mvnresolve/scope"
	"deps.dev/util/mvnresolve/selector"
	"deps.dev/util/mvnresolve/version"
	"deps.dev/util/mvnresolve/visit"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "mvnresolve",
		Usage: "resolve a Maven-style dependency universe described in a text file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "strategy", Value: "nearest", Usage: "version selection strategy: nearest or highest"},
			&cli.StringFlag{Name: "priority", Value: "application", Usage: "scope priority strategy: application or test-first"},
			&cli.StringFlag{Name: "verbosity", Value: "none", Usage: "loser retention: none, standard, or full"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "groupId:artifactId pairs to exclude at the root (either half may be *)"},
			&cli.BoolFlag{Name: "always-ban-snapshots", Usage: "reject snapshot versions even if the root artifact is itself a snapshot"},
			&cli.BoolFlag{Name: "verbose-log", Usage: "emit debug-level resolver logging"},
			&cli.StringFlag{Name: "dot", Usage: "write a Graphviz dot rendering of the resolved graph to this path"},
		},
		ArgsUsage: "<universe-file>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mvnresolve:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("missing universe file argument", 2)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, root, err := Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	logger := log.New()
	if c.Bool("verbose-log") {
		logger.SetLevel(log.DebugLevel)
	}

	scheme := version.NewScheme(0)
	sel := selector.AndSelectors(
		selector.Legacy(nil, nil),
		selector.NewOptionalDependencySelector(1),
		newRootExclusionSelector(excludeOf(c.StringSlice("exclude"))),
	)
	mgr := manage.New(1, 1)

	g, err := collector.Collect(src, scheme, root, sel, mgr)
	if err != nil {
		return fmt.Errorf("collecting %s: %w", root, err)
	}

	cfg := resolve.DefaultConfig()
	cfg.Log = log.NewEntry(logger)
	cfg.SnapshotFilter = c.Bool("always-ban-snapshots")
	if v, err := parseStrategy(c.String("strategy")); err != nil {
		return err
	} else {
		cfg.VersionSelector = v
	}
	if p, err := parsePriority(c.String("priority")); err != nil {
		return err
	} else {
		cfg.ScopePriority = p
	}
	if v, err := parseVerbosity(c.String("verbosity")); err != nil {
		return err
	} else {
		cfg.Verbosity = v
	}

	if err := resolve.Resolve(g, cfg); err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}

	printTree(g)

	if dotPath := c.String("dot"); dotPath != "" {
		out, err := os.Create(dotPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := graph.Dot(out, g, g.Root); err != nil {
			return err
		}
	}
	return nil
}

// rootExclusionSelector rejects only direct (depth 0) dependencies
// matching exclusions; Maven's own root exclusion list works the same
// way, since exclusions declared below the root are management-table
// entries, not selector state.
type rootExclusionSelector struct {
	exclusions map[graph.Exclusion]bool
	atRoot     bool
}

func newRootExclusionSelector(exclusions map[graph.Exclusion]bool) selector.Selector {
	return rootExclusionSelector{exclusions: exclusions, atRoot: true}
}

func (s rootExclusionSelector) Select(dep *graph.Dependency) bool {
	if !s.atRoot || dep == nil {
		return true
	}
	return selector.ExclusionFilter(s.exclusions).Accept(dep)
}

func (s rootExclusionSelector) DeriveChild(selector.Context) selector.Selector {
	return rootExclusionSelector{exclusions: s.exclusions, atRoot: false}
}

func parseStrategy(s string) (resolve.Strategy, error) {
	switch s {
	case "nearest":
		return resolve.Nearest, nil
	case "highest":
		return resolve.Highest, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}

func parsePriority(s string) (scope.PriorityStrategy, error) {
	switch s {
	case "application":
		return scope.Application, nil
	case "test-first":
		return scope.TestFirst, nil
	default:
		return "", fmt.Errorf("unknown scope priority %q", s)
	}
}

func parseVerbosity(s string) (resolve.Verbosity, error) {
	switch s {
	case "none":
		return resolve.None, nil
	case "standard":
		return resolve.Standard, nil
	case "full":
		return resolve.Full, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q", s)
	}
}

func printTree(g *graph.Graph) {
	depth := map[graph.NodeID]int{g.Root: 0}
	visit.Each(g, g.Root, func(id graph.NodeID) bool {
		n := g.Node(id)
		indent := ""
		for i := 0; i < depth[id]; i++ {
			indent += "  "
		}
		marker := ""
		if n.ManagedBits.Has(graph.Winner) {
			marker = " *"
		}
		fmt.Printf("%s%s%s\n", indent, n.Artifact.String(), marker)
		for _, c := range n.Children {
			if _, ok := depth[c]; !ok {
				depth[c] = depth[id] + 1
			}
		}
		return true
	})
}

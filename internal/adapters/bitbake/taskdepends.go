package bitbake

import (
	"bufio"
	"io"
	"strings"

	"github.com/samber/lo"
)

// taskNode is a recipe of a task-depends.dot graph with its direct
// dependencies in first-seen order.
type taskNode struct {
	version  string
	release  string
	children []string
}

// taskGraph is the recipe-level view of a bitbake task graph.
type taskGraph map[string]*taskNode

// children returns the direct dependencies of target, ok is false when target
// is not part of the graph.
func (g taskGraph) children(target string) ([]string, bool) {
	n, ok := g[target]
	if !ok {
		return nil, false
	}
	return n.children, true
}

// parseTaskDepends reads a bitbake task-depends.dot file. Node lines look like
//
//	"busybox.do_compile" [label="busybox do_compile\n:1.36.1-r0\n/path/busybox_1.36.1.bb"]
//
// and edge lines like
//
//	"busybox.do_compile" -> "zlib.do_populate_sysroot"
//
// Tasks are collapsed to recipes; self edges are dropped.
func parseTaskDepends(r io.Reader) (taskGraph, error) {
	g := make(taskGraph)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, `"`) {
			continue
		}
		parts := strings.Split(line, `"`)
		if len(parts) < 4 {
			continue
		}
		recipe := taskRecipe(parts[1])

		if strings.HasSuffix(line, "]") {
			if _, ok := g[recipe]; ok {
				continue
			}
			ver, rel := labelVersion(parts[3])
			g[recipe] = &taskNode{version: ver, release: rel}
			continue
		}

		dep := taskRecipe(parts[3])
		n, ok := g[recipe]
		if !ok || dep == recipe {
			continue
		}
		if !lo.Contains(n.children, dep) {
			n.children = append(n.children, dep)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// taskRecipe strips the task suffix from a "<recipe>.<task>" node id.
func taskRecipe(id string) string {
	if i := strings.LastIndex(id, "."); i >= 0 {
		return id[:i]
	}
	return id
}

// labelVersion extracts version and release from the second label line,
// ":<version>-<release>". The label separates lines with a literal "\n".
func labelVersion(label string) (version, release string) {
	lines := strings.Split(label, `\n`)
	if len(lines) < 2 {
		return "", ""
	}
	verRel := strings.TrimPrefix(lines[1], ":")
	i := strings.LastIndex(verRel, "-")
	if i < 0 {
		return verRel, ""
	}
	return verRel[:i], verRel[i+1:]
}

// Command tetrahedra-neighbours computes tet-to-tet adjacency and the
// domain boundary for a tetrahedral mesh, in parallel, using the lplib-go
// scheduler.
//
// Usage:
//
//	tetrahedra-neighbours -in mesh -out mesh.out -nproc 8
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/clayne/lplib-go/meshio"
	"github.com/clayne/lplib-go/neighbours"
	"github.com/clayne/lplib-go/scheduler"
)

var (
	inPath  = flag.String("in", "", "input mesh path (required)")
	outPath = flag.String("out", "", "output mesh path (required)")
	nproc   = flag.Int("nproc", runtime.NumCPU(), "worker count, clamped to [1,128]")
)

func main() {
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		if len(os.Args) == 1 {
			flag.Usage()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: -in and -out are both required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*inPath, *outPath, *nproc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, nproc int) error {
	sched := scheduler.New(nproc)
	defer sched.Shutdown()

	readStart := scheduler.WallClock()
	in, err := meshio.Open(meshio.SuffixedPath(inPath))
	if err != nil {
		return fmt.Errorf("opening mesh: %w", err)
	}
	defer in.Close()

	vertices, err := in.ReadVertices()
	if err != nil {
		return fmt.Errorf("reading vertices: %w", err)
	}
	tets, err := in.ReadTets()
	if err != nil {
		return fmt.Errorf("reading tets: %w", err)
	}
	readTime := scheduler.WallClock() - readStart

	neighbourTets := make([]neighbours.Tet, len(tets))
	for i, t := range tets {
		neighbourTets[i] = neighbours.Tet{Idx: t.Idx, Ref: t.Ref}
	}

	ngbStart := scheduler.WallClock()
	_, tris, err := neighbours.Compute(sched, neighbourTets)
	if err != nil {
		return fmt.Errorf("computing neighbours: %w", err)
	}
	ngbTime := scheduler.WallClock() - ngbStart

	meshTris := make([]meshio.Triangle, len(tris))
	for i, tr := range tris {
		meshTris[i] = meshio.Triangle{V: tr.V, Ref: tr.Ref}
	}

	writeStart := scheduler.WallClock()
	out, err := meshio.Create(meshio.SuffixedPath(outPath), in.Dim(), len(vertices), len(tets), len(meshTris))
	if err != nil {
		return fmt.Errorf("creating output mesh: %w", err)
	}
	defer out.Close()
	if err := out.WriteVertices(vertices); err != nil {
		return fmt.Errorf("writing vertices: %w", err)
	}
	if err := out.WriteTets(tets); err != nil {
		return fmt.Errorf("writing tets: %w", err)
	}
	if err := out.WriteTriangles(meshTris); err != nil {
		return fmt.Errorf("writing triangles: %w", err)
	}
	writeTime := scheduler.WallClock() - writeStart

	fmt.Printf("reading:    %.6fs\n", readTime)
	fmt.Printf("neighbours: %.6fs\n", ngbTime)
	fmt.Printf("writing:    %.6fs\n", writeTime)
	fmt.Printf("triangles:  %d\n", len(meshTris))
	return nil
}

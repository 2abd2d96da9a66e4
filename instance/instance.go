package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/polymax/polymax/geom"
)

// ReadFile parses a .instance file at path: one non-comment line per point,
// "identifier x y" whitespace-separated. It returns the points in file order
// and the (x,y) -> identifier mapping WriteFile later needs to translate a
// polygon back into identifiers.
func ReadFile(path string) ([]geom.Point, map[geom.Point]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return readPoints(f)
}

func readPoints(r io.Reader) ([]geom.Point, map[geom.Point]int, error) {
	var points []geom.Point
	idOf := make(map[geom.Point]int)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, ErrMalformedLine
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, ErrMalformedLine
		}
		x, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, nil, ErrMalformedLine
		}
		y, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, nil, ErrMalformedLine
		}

		p := geom.Point{X: x, Y: y}
		points = append(points, p)
		idOf[p] = id
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return points, idOf, nil
}

// WriteFile writes poly (in polygon order, one identifier per line) to
// "<basename>.<ext>.solution", where ext is ExtensionFor(header). It returns
// the path written to. idOf must map every vertex of poly to its input
// identifier (the mapping ReadFile returned for the same instance).
func WriteFile(basename string, poly []geom.Point, idOf map[geom.Point]int, header Header) (string, error) {
	path := basename + "." + ExtensionFor(header) + ".solution"

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeSolution(f, poly, idOf, header); err != nil {
		return "", err
	}

	return path, nil
}

func writeSolution(w io.Writer, poly []geom.Point, idOf map[geom.Point]int, header Header) error {
	fmt.Fprintln(w, "# Score:", header.Score)
	fmt.Fprintln(w, "# Time:", header.Elapsed.Seconds())
	fmt.Fprintln(w, "# Parameters:", strings.Join(header.Args, " "))
	if header.Opt {
		fmt.Fprintln(w, "# Time before opt:", header.PreOptElapsed.Seconds())
		fmt.Fprintln(w, "# Score before opt:", header.PreOptScore)
	}

	for _, p := range poly {
		id, ok := idOf[p]
		if !ok {
			return ErrUnknownPoint
		}
		fmt.Fprintln(w, id)
	}

	return nil
}

// ExtensionFor derives the output file extension from header's parameters,
// porting the source's save() rule exactly: "max"/"min", then "pen<N>" if
// pen != 90, "sigma<N>" if sigma != 0 (N = floor(100*sigma)), "hood<N>" if
// hood is finite, "opt" (plus the hop count, if > 1) if local search ran.
func ExtensionFor(header Header) string {
	var b strings.Builder

	if header.Maximize {
		b.WriteString("max")
	} else {
		b.WriteString("min")
	}

	if header.Pen != 90 {
		fmt.Fprintf(&b, "pen%v", header.Pen)
	}
	if header.Sigma != 0 {
		fmt.Fprintf(&b, "sigma%d", int(math.Floor(100*header.Sigma)))
	}
	if header.Hood != InfiniteHood {
		fmt.Fprintf(&b, "hood%d", header.Hood)
	}
	if header.Opt {
		b.WriteString("opt")
		if header.Hops > 1 {
			fmt.Fprintf(&b, "%d", header.Hops)
		}
	}

	return b.String()
}

package coords

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"triangle-viewer/internal/logger"
)

// Count is the number of vertices a coordinates file describes.
const Count = 3

// utf8BOM is written at the start of files by some Windows editors.
const utf8BOM = "\ufeff"

// Points holds the triangle corners in file order. Entries that were not loaded stay at the origin.
type Points [Count]mgl32.Vec3

// searchDirs are tried in order so the coordinates file is found whether run from the repo root or cmd/viewer.
var searchDirs = []string{
	".",
	"../..",
}

// Resolve returns the first existing candidate for name. Absolute names are returned unchanged;
// when nothing exists the name is returned as given so the open error names the configured file.
func Resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	for _, dir := range searchDirs {
		p := filepath.Clean(filepath.Join(dir, name))
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return name
}

// Load reads up to Count "x,y,z" lines from path. Failures are logged, not returned: the points parsed
// before the failure come back together with how many there are. Callers decide whether n < Count is fatal.
func Load(path string, log *logger.Logger) (Points, int) {
	f, err := os.Open(path)
	if err != nil {
		log.Logf("error reading coordinates file: %v", err)
		return Points{}, 0
	}
	defer f.Close()

	pts, n, err := Parse(f)
	if err != nil {
		log.Logf("error reading coordinates file %s: %v", path, err)
	}
	return pts, n
}

// Parse reads up to Count lines from r and stops at the first line that cannot be read or parsed.
// A UTF-8 byte order mark before the first line is skipped.
// End of input before Count lines is not an error; n tells how many points were filled.
func Parse(r io.Reader) (pts Points, n int, err error) {
	scanner := bufio.NewScanner(r)
	for n < Count {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return pts, n, err
			}
			return pts, n, nil
		}
		line := scanner.Text()
		if n == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		p, err := ParseLine(line)
		if err != nil {
			return pts, n, fmt.Errorf("line %d: %w", n+1, err)
		}
		pts[n] = p
		n++
	}
	return pts, n, nil
}

// ParseLine parses one "x,y,z" line. Decimal points are always '.', independent of locale.
func ParseLine(line string) (mgl32.Vec3, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 comma-separated values, got %d", len(fields))
	}
	var v mgl32.Vec3
	for i, s := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("value %d: %w", i+1, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

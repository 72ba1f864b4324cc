package lidar

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/banshee-data/sirta/internal/fsutil"
	"github.com/banshee-data/sirta/internal/monitoring"
)

// maxLineBytes bounds a single export line.
const maxLineBytes = 1 << 20

// File holds the records of one lidar export in file order.
type File struct {
	Path    string
	Records []Record
}

// Read parses every record from r. Blank lines are skipped, and a first line
// whose year field is not numeric is treated as a column header.
func Read(r io.Reader) (*File, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	f := &File{}
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(f.Records) == 0 && isHeader(line) {
			monitoring.Debugf("lidar: skipping header on line %d", n)
			continue
		}
		rec, err := ParseLine(line, n)
		if err != nil {
			return nil, err
		}
		f.Records = append(f.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lidar file: %w", err)
	}
	return f, nil
}

// ReadFile opens path on fsys and parses it.
func ReadFile(fsys fsutil.FileSystem, path string) (*File, error) {
	in, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lidar file: %w", err)
	}
	defer in.Close()

	f, err := Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	monitoring.Debugf("lidar: read %d records from %s", len(f.Records), path)
	return f, nil
}

func isHeader(line string) bool {
	first, _, _ := strings.Cut(strings.TrimSpace(line), ",")
	_, err := strconv.Atoi(strings.TrimSpace(first))
	return err != nil
}

// Len returns the number of records.
func (f *File) Len() int {
	return len(f.Records)
}

// Span returns the times of the first and last records.
func (f *File) Span() (first, last time.Time, ok bool) {
	if len(f.Records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return f.Records[0].Time, f.Records[len(f.Records)-1].Time, true
}

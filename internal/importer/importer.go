package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/wealth-dev/wealth/internal/model"
)

// Parser converts one bank's CSV export into canonical Transactions.
type Parser interface {
	Parse(r io.Reader, account string) ([]model.Transaction, error)
	Format() string
}

// TrackFile is the tracking-expenses file. It lives next to the bank
// exports but is not one.
const TrackFile = "track.csv"

// Registry holds parsers in registration order. The first parser whose
// format tag matches a filename wins.
type Registry struct {
	entries []entry
}

type entry struct {
	parser  Parser
	pattern *regexp.Regexp
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if r.Get(key) != nil {
		panic("duplicate parser format: " + key)
	}
	// <digits>-<account>-<format>[-anything]
	pattern := regexp.MustCompile(`(?i)^\d+-(.+?)-` + regexp.QuoteMeta(key) + `(?:-.*)?$`)
	r.entries = append(r.entries, entry{parser: p, pattern: pattern})
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	for _, e := range r.entries {
		if strings.EqualFold(e.parser.Format(), format) {
			return e.parser
		}
	}
	return nil
}

// Formats lists the registered format tags in order.
func (r *Registry) Formats() []string {
	formats := make([]string, len(r.entries))
	for i, e := range r.entries {
		formats[i] = e.parser.Format()
	}
	return formats
}

// Match resolves a filename to its parser and account name. ok is false
// when the name does not follow the naming convention or names an unknown
// format.
func (r *Registry) Match(fileName string) (p Parser, account string, ok bool) {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	for _, e := range r.entries {
		if m := e.pattern.FindStringSubmatch(stem); m != nil {
			return e.parser, m[1], true
		}
	}
	return nil, "", false
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&DKBGiroParser{})
	r.Register(&DKBVisaParser{})
	r.Register(&N26Parser{})
	r.Register(&SparkasseParser{})
	r.Register(&ChaseParser{})
	return r
}

// Scan returns the CSV files in dir sorted by name, excluding the
// tracking-expenses file. A missing directory yields no files.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".csv") || strings.EqualFold(name, TrackFile) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		files = append(files, FileInfo{
			Name: name,
			Path: filepath.Join(dir, name),
			Size: info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// ParseFile opens path and runs p over it.
func ParseFile(p Parser, path, account string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := p.Parse(f, account)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as %s: %w", filepath.Base(path), p.Format(), err)
	}
	return txns, nil
}

package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	dataExt = ".data"
	runsDir = "runs"

	// Header is written once at the top of every new data file.
	Header = "structure\tmedian_ns\tinput_size"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(filepath.Join(s.baseDir, runsDir), 0755)
}

func (s *Store) Dir() string { return s.baseDir }

// Record is one median measurement of one operation on one input line.
type Record struct {
	Label     string        `json:"label"`
	Median    time.Duration `json:"median_ns"`
	InputSize int           `json:"input_size"`
}

func (r Record) line() string {
	return fmt.Sprintf("%s\t%d\t%d", r.Label, r.Median.Nanoseconds(), r.InputSize)
}

func (s *Store) dataPath(op string) string {
	return filepath.Join(s.baseDir, op+dataExt)
}

// Append adds rec to the operation's data file, writing the header first
// when the file is new or empty.
func (s *Store) Append(op string, rec Record) error {
	path := s.dataPath(op)

	isNew := true
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		isNew = false
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if isNew {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, rec.line()); err != nil {
		return err
	}
	return w.Flush()
}

// Records parses the operation's data file. A missing file yields no records.
func (s *Store) Records(op string) ([]Record, error) {
	f, err := os.Open(s.dataPath(op))
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return ParseRecords(f)
}

// ParseRecords reads whitespace-separated "<label> <median_ns> <input_size>"
// lines. The first line is skipped when it does not parse as a record.
func ParseRecords(r io.Reader) ([]Record, error) {
	records := make([]Record, 0)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rec, err := parseRecord(fields)
		if err != nil {
			if lineNo == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	return records, sc.Err()
}

func parseRecord(fields []string) (Record, error) {
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	ns, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Record{}, err
	}
	size, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, err
	}
	return Record{Label: fields[0], Median: time.Duration(ns), InputSize: size}, nil
}

// Operations lists the operations that have a data file, sorted by name.
func (s *Store) Operations() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	ops := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != dataExt {
			continue
		}
		ops = append(ops, strings.TrimSuffix(entry.Name(), dataExt))
	}
	sort.Strings(ops)
	return ops, nil
}

type RunMetadata struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Structure   string        `json:"structure"`
	Timestamp   time.Time     `json:"timestamp"`
	Repetitions int           `json:"repetitions"`
	Capacity    int           `json:"initial_capacity"`
	Operations  []string      `json:"operations"`
	Inputs      []string      `json:"inputs"`
	Lines       int           `json:"lines"`
	Failed      int           `json:"failed"`
	Records     int           `json:"records"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// SaveRun writes meta under runs/ and returns its id. An empty ID is
// generated from the structure and the timestamp.
func (s *Store) SaveRun(meta RunMetadata) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Structure, meta.Timestamp.UnixNano())
	}

	dir := filepath.Join(s.baseDir, runsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, meta.ID+".json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func (s *Store) LoadRun(id string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runsDir, id+".json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Runs returns every readable run, oldest first.
func (s *Store) Runs() ([]RunMetadata, error) {
	entries, err := os.ReadDir(filepath.Join(s.baseDir, runsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		meta, err := s.LoadRun(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

var ErrNoRecords = errors.New("storage: no records")

type ExportData struct {
	Dir        string              `json:"dir"`
	Operations map[string][]Record `json:"operations"`
}

// ExportJSON writes every record of ops (all recorded operations when ops is
// empty) to w as one indented JSON document.
func (s *Store) ExportJSON(w io.Writer, ops ...string) error {
	if len(ops) == 0 {
		var err error
		if ops, err = s.Operations(); err != nil {
			return err
		}
	}
	if len(ops) == 0 {
		return ErrNoRecords
	}

	data := ExportData{
		Dir:        s.baseDir,
		Operations: make(map[string][]Record, len(ops)),
	}
	for _, op := range ops {
		records, err := s.Records(op)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		data.Operations[op] = records
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

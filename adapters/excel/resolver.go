package excel

import (
	"strings"
	"sync"

	"hypokit/internal/errors"
)

// SampleResolver turns sample references into values. A reference is either
// "path" or "path#column". Each file is read once per resolver.
type SampleResolver struct {
	config ReaderConfig

	mu    sync.Mutex
	cache map[string]*ExcelData
}

func NewSampleResolver(config ReaderConfig) *SampleResolver {
	if config.Logger == nil {
		config.Logger = DefaultReaderConfig().Logger
	}
	return &SampleResolver{config: config, cache: make(map[string]*ExcelData)}
}

// SplitReference separates "path#column" into its parts
func SplitReference(ref string) (path, column string) {
	if i := strings.LastIndex(ref, "#"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// Resolve loads the values named by ref
func (s *SampleResolver) Resolve(ref string) ([]float64, error) {
	path, column := SplitReference(strings.TrimSpace(ref))
	if path == "" {
		return nil, errors.InvalidInput("sample reference has no file: " + ref)
	}
	data, err := s.load(path)
	if err != nil {
		return nil, err
	}
	values, err := ColumnValues(data, column)
	if err != nil {
		return nil, errors.Wrapf(err, "sample %s", ref)
	}
	s.config.Logger.Debug("[SampleResolver] %s resolved to %d values", ref, len(values))
	return values, nil
}

// ResolvePair resolves two references, as the comparers need
func (s *SampleResolver) ResolvePair(ref1, ref2 string) ([]float64, []float64, error) {
	sample1, err := s.Resolve(ref1)
	if err != nil {
		return nil, nil, err
	}
	sample2, err := s.Resolve(ref2)
	if err != nil {
		return nil, nil, err
	}
	return sample1, sample2, nil
}

func (s *SampleResolver) load(path string) (*ExcelData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data, ok := s.cache[path]; ok {
		return data, nil
	}
	data, err := NewDataReader(path, s.config).ReadData()
	if err != nil {
		return nil, err
	}
	s.cache[path] = data
	return data, nil
}

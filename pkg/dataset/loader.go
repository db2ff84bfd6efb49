package dataset

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// Loader reads the external geospatial datasets (GeoJSON feature
// collections, optionally bzip2-compressed) and turns them into typed graph
// nodes. A missing or malformed source file yields an empty contribution,
// never an error: the graph degrades gracefully to whatever sources are
// present.
type Loader struct {
	log *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	return &Loader{log: log}
}

// readFeatureCollection loads and decodes one dataset file. The ok result is
// false when the file is absent or undecodable; both cases are reported only
// through the log.
func (l *Loader) readFeatureCollection(path string) (*geojson.FeatureCollection, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.log.Warn("dataset file missing, skipping", zap.String("path", path))
		} else {
			l.log.Warn("dataset file unreadable, skipping", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}

	if strings.HasSuffix(path, ".bz2") {
		raw, err = decompressBzip2(raw)
		if err != nil {
			l.log.Warn("dataset file not valid bzip2, skipping", zap.String("path", path), zap.Error(err))
			return nil, false
		}
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		l.log.Warn("dataset file not valid GeoJSON, skipping", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	return fc, true
}

func decompressBzip2(raw []byte) ([]byte, error) {
	zr, err := bzip2.NewReader(bytes.NewReader(raw), nil)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// stringProperty fetches a feature property as a trimmed string, tolerating
// absent and non-string values.
func stringProperty(props geojson.Properties, key string) (string, bool) {
	v, ok := props[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// resolveProperty probes a priority-ordered list of property-name aliases
// and returns the first non-empty, non-sentinel value.
func resolveProperty(props geojson.Properties, aliases []string, sentinels map[string]struct{}) (string, bool) {
	for _, alias := range aliases {
		s, ok := stringProperty(props, alias)
		if !ok {
			continue
		}
		if _, isSentinel := sentinels[strings.ToUpper(s)]; isSentinel {
			continue
		}
		return s, true
	}
	return "", false
}

package loader

import (
	"encoding/json"
	"io"

	"github.com/bethropolis/filecov/internal/coverage"
	"github.com/pkg/errors"
)

// ParseIstanbul decodes a coverage-final.json object.
// Files are returned in the order their keys appear; each key becomes the file's path.
func ParseIstanbul(r io.Reader) ([]*coverage.FileCoverage, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Errorf("expected a JSON object, found %v", tok)
	}

	var files []*coverage.FileCoverage
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("expected a file key, found %v", tok)
		}
		fc := coverage.NewFileCoverage(key)
		if err := dec.Decode(fc); err != nil {
			return nil, errors.Wrapf(err, "file %q", key)
		}
		fc.Path = key
		files = append(files, fc)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return files, nil
}

package intake

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a submission file. The format is chosen by
// extension: .json, .yaml or .yml.
func Load(path string) (*Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "intake: read submission file")
	}

	var sub Submission
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &sub); err != nil {
			return nil, eris.Wrap(err, "intake: parse json submission")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sub); err != nil {
			return nil, eris.Wrap(err, "intake: parse yaml submission")
		}
	default:
		return nil, eris.Errorf("intake: unsupported submission format %q", ext)
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}
	return &sub, nil
}

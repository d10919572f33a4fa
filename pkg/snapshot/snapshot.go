package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Validate compares obj's JSON form against testdata/<name>.json.
// A missing snapshot file is created from obj and the test passes; commit the
// file and the next run asserts against it.
func Validate(t *testing.T, name string, obj interface{}) {
	t.Helper()

	filename := filepath.Join("testdata", name+".json")

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		panic(err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(filename, objJSON)
			return
		}

		panic(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), string(objJSON)) {
		t.Logf("snapshot %s", filename)
	}
}

func create(filename string, objJSON []byte) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	if err := os.WriteFile(filename, objJSON, 0644); err != nil {
		panic(err)
	}

	logrus.WithField("snapshot", filename).Warn("created snapshot")
}

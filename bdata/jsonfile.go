package bdata

import (
	"encoding/json"
	"os"

	"git.thinkinpower.net/bingen/mod"
	"github.com/pkg/errors"
)

func read(filepath string) ([]mod.BinRecord, error) {
	var (
		content  []byte
		binsData mod.BinsData
		err      error
	)
	if content, err = os.ReadFile(filepath); err != nil {
		return nil, errors.Wrapf(err, "read %s", filepath)
	}
	if err = json.Unmarshal(content, &binsData); err != nil {
		return nil, errors.Wrapf(err, "parse %s", filepath)
	}
	return binsData.Bins, nil
}

package solver

import (
	"os"

	"github.com/boolforge/cnfkit/clause"
)

func writeTempDIMACS(cs *clause.Set) (string, error) {
	f, err := os.CreateTemp("", "cnfkit-*.dimacs")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := cs.WriteDIMACS(f, true); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func removeTemp(path string) {
	_ = os.Remove(path)
}

// Package fs provides filesystem adapters.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verifier implements ports.Verifier.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs checks if all outputs exist in the given root directory.
// Files and directories both count as present.
func (v *Verifier) VerifyOutputs(root string, outputs []string) (bool, error) {
	for _, out := range outputs {
		path := filepath.Join(root, out)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(domain.ErrGuardCheckFailed, err.Error()), "path", path)
		}
	}
	return true, nil
}

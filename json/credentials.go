package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/study"
)

type credentialsDTO struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SaveCredentials writes the session credentials to path with owner-only
// permissions.
func SaveCredentials(path string, c study.Credentials) error {
	data, err := json.MarshalIndent(credentialsDTO(c), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return writeFile(path, data)
}

// LoadCredentials reads session credentials from path. A missing file or an
// empty token returns study.ErrNotAuthenticated.
func LoadCredentials(path string) (study.Credentials, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return study.Credentials{}, study.ErrNotAuthenticated
	}
	if err != nil {
		return study.Credentials{}, fmt.Errorf("read file: %w", err)
	}
	var dto credentialsDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return study.Credentials{}, fmt.Errorf("unmarshal credentials: %w", err)
	}
	if dto.AccessToken == "" {
		return study.Credentials{}, study.ErrNotAuthenticated
	}
	return study.Credentials(dto), nil
}

// DeleteCredentials removes the credentials file. A missing file is not an
// error.
func DeleteCredentials(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// writeFile writes data atomically via a uniquely named temp file in the
// target directory and a rename. The temp file is removed on failure.
func writeFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Package repository contém as implementações dos repositórios de arquivos JSON
package repository

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// readJSON decodifica o arquivo em out; devolve os.ErrNotExist embrulhado se o arquivo não existir
func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decoding %s", path)
	}

	return nil
}

// writeJSON grava em arquivo temporário e renomeia, para que leitores nunca vejam um arquivo pela metade
func writeJSON(path string, in any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}

	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmp.Name())
	}

	return errors.Wrapf(os.Rename(tmp.Name(), path), "replacing %s", path)
}

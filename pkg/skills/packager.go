package skills

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Package zips the skill directory into <outputDir>/<name>.skill using
// deflate compression. Every file under the skill directory is stored at
// its path relative to the skill root. A pre-existing archive at the target
// path is overwritten. Returns the absolute path of the archive.
//
// Package does not validate its input; callers are expected to run
// Validate first and refuse to package skills with errors.
func Package(skillDir, outputDir string) (string, error) {
	skillName := filepath.Base(filepath.Clean(skillDir))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}

	archivePath, err := filepath.Abs(filepath.Join(outputDir, skillName+ArchiveExtension))
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve archive path")
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to create archive")
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	err = filepath.Walk(skillDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(skillDir, path)
		if err != nil {
			return err
		}

		hdr, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		hdr.Method = zip.Deflate

		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		zw.Close()
		return "", errors.Wrap(err, "failed to add files to archive")
	}

	if err := zw.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize archive")
	}

	return archivePath, nil
}

package archive

import (
	"archive/tar"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	magicCRX   = []byte("Cr24")
	magicZip   = []byte("PK\x03\x04")
	magicEmpty = []byte("PK\x05\x06")
	magicGzip  = []byte{0x1f, 0x8b}
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// unpack extracts data into dir. Zip archives and Chrome CRX packages are handled
// directly; gzip and zstd streams are expected to wrap a tar archive.
func unpack(data []byte, dir string) error {
	if bytes.HasPrefix(data, magicCRX) {
		payload, err := stripCRXHeader(data)
		if err != nil {
			return err
		}
		data = payload
	}

	var err error
	switch {
	case bytes.HasPrefix(data, magicZip), bytes.HasPrefix(data, magicEmpty):
		err = unzip(data, dir)
	case bytes.HasPrefix(data, magicGzip):
		err = ungzip(data, dir)
	case bytes.HasPrefix(data, magicZstd):
		err = unzstd(data, dir)
	default:
		return domain.ErrUnsupportedArchive
	}

	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	return nil
}

// stripCRXHeader returns the zip payload of a CRX2 or CRX3 package.
func stripCRXHeader(data []byte) ([]byte, error) {
	if len(data) < 12 {
		return nil, zerr.Wrap(io.ErrUnexpectedEOF, domain.ErrExtractFailed.Error())
	}

	var offset uint64
	switch version := binary.LittleEndian.Uint32(data[4:8]); version {
	case 2:
		if len(data) < 16 {
			return nil, zerr.Wrap(io.ErrUnexpectedEOF, domain.ErrExtractFailed.Error())
		}
		keyLen := uint64(binary.LittleEndian.Uint32(data[8:12]))
		sigLen := uint64(binary.LittleEndian.Uint32(data[12:16]))
		offset = 16 + keyLen + sigLen
	case 3:
		offset = 12 + uint64(binary.LittleEndian.Uint32(data[8:12]))
	default:
		return nil, zerr.With(domain.ErrUnsupportedArchive, "crx_version", version)
	}

	if offset > uint64(len(data)) {
		return nil, zerr.Wrap(io.ErrUnexpectedEOF, domain.ErrExtractFailed.Error())
	}
	return data[offset:], nil
}

func unzip(data []byte, dir string) error {
	// Insecure names come back alongside a usable reader; safeJoin rejects them per entry.
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if zr == nil {
		return err
	}

	for _, f := range zr.File {
		target, err := safeJoin(dir, f.Name)
		if err != nil {
			return err
		}

		mode := f.Mode()
		switch {
		case mode.IsDir():
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return err
			}
		case mode.IsRegular():
			rc, err := f.Open()
			if err != nil {
				return err
			}
			err = writeFile(target, rc)
			_ = rc.Close()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func ungzip(data []byte, dir string) error {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer func() {
		_ = zr.Close()
	}()

	return untar(zr, dir)
}

func unzstd(data []byte, dir string) error {
	dec, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer dec.Close()

	return untar(dec, dir)
}

func untar(r io.Reader, dir string) error {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(dir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr); err != nil {
				return err
			}
		}
	}
}

// safeJoin resolves an archive entry name inside dir, rejecting entries that escape it.
func safeJoin(dir, name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", zerr.With(domain.ErrUnsafeArchivePath, "entry", name)
	}

	target := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrUnsafeArchivePath, "entry", name)
	}

	return target, nil
}

func writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}

	// #nosec G304 -- path is validated by safeJoin
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return err
	}

	//nolint:gosec // artifacts are user-chosen extension builds
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

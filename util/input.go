package util

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/git-l10n/pocat/flag"
	"github.com/git-l10n/pocat/po"
	"github.com/qiniu/iconv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultEncoding = "UTF-8"
	iconvBufSize    = 4096
)

func sameEncoding(enc1, enc2 string) bool {
	enc1 = strings.Replace(strings.ToLower(enc1), "-", "", -1)
	enc2 = strings.Replace(strings.ToLower(enc2), "-", "", -1)
	return enc1 == enc2
}

// inputFile closes the converter together with the file.
type inputFile struct {
	io.Reader
	file *os.File
	cd   *iconv.Iconv
}

func (f *inputFile) Close() error {
	if f.cd != nil {
		f.cd.Close()
	}
	return f.file.Close()
}

// OpenInput opens name for reading. Unless fromCode is empty or UTF-8 the
// content is converted from fromCode to UTF-8 while it is read.
func OpenInput(name, fromCode string) (io.ReadCloser, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if fromCode == "" || sameEncoding(defaultEncoding, fromCode) {
		return fp, nil
	}

	cd, err := iconv.Open(defaultEncoding, fromCode)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("iconv.Open failed: %w", err)
	}
	log.Debugf("converting %s from %s to %s", name, fromCode, defaultEncoding)
	return &inputFile{
		Reader: iconv.NewReader(cd, fp, iconvBufSize),
		file:   fp,
		cd:     &cd,
	}, nil
}

// ReadPoFile loads a PO file, or a gettext JSON file when the content starts
// with '{'. PO input is converted from flag.FromCode() if set.
func ReadPoFile(name string) (*po.File, error) {
	r, err := OpenInput(name, flag.FromCode())
	if err != nil {
		return nil, fmt.Errorf("fail to open %s: %w", name, err)
	}
	defer r.Close()

	br := bufio.NewReader(r)
	peek, err := br.Peek(512)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("fail to read %s: %w", name, err)
	}
	if trimmed := bytes.TrimLeft(peek, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
		data, err := io.ReadAll(br)
		if err != nil {
			return nil, fmt.Errorf("fail to read %s: %w", name, err)
		}
		return ReadGettextJSON(data)
	}

	f, err := po.Parse(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for _, e := range f.Discarded() {
		log.Debugf("%s: discarded block:\n%s", name, e)
	}
	return f, nil
}

// WriteOutput calls write with stdout when output is "" or "-", otherwise
// with the created file.
func WriteOutput(output string, stdout io.Writer, write func(io.Writer) error) error {
	if output == "" || output == "-" {
		return write(stdout)
	}
	fp, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", output, err)
	}
	if err := write(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// OutputPath resolves where a command editing poFile writes its result:
// output if given, poFile itself when inPlace is set and ConfirmOverwrite
// agrees, otherwise "" for stdout.
func OutputPath(poFile, output string, inPlace bool) (string, error) {
	if output != "" || !inPlace {
		return output, nil
	}
	if !ConfirmOverwrite(poFile) {
		return "", fmt.Errorf("not overwriting %s", poFile)
	}
	return poFile, nil
}

// SavePoFile writes f to the file chosen by OutputPath, or to stdout.
func SavePoFile(f *po.File, poFile, output string, stdout io.Writer, inPlace, withObsolete bool) error {
	output, err := OutputPath(poFile, output, inPlace)
	if err != nil {
		return err
	}
	return WriteOutput(output, stdout, func(w io.Writer) error {
		_, err := io.WriteString(w, f.Serialize(withObsolete))
		return err
	})
}

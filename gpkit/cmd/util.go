package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/klauspost/pgzip"
)

const writerBufferSize = 1 << 20

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}

// defaultOutputPath names the FASTA after the input: everything before the
// first dot of the base name, plus ".fas", in the working directory.
func defaultOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base + ".fas"
}

// countEntries counts "//" terminator lines, used to size the progress bar.
func countEntries(path string) (int, error) {
	in, err := openInput(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = in.Close()
	}()

	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)
	var count int
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == entryEnd {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}

type readCloser struct {
	reader io.Reader
	close  func() error
}

func (r readCloser) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r readCloser) Close() error {
	return r.close()
}

func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return readCloser{
			reader: gz,
			close: func() error {
				_ = gz.Close()
				return f.Close()
			},
		}, nil
	}
	return f, nil
}

// outputFile is a buffered, optionally gzip-compressed output. Close
// flushes every layer and reports the first failure.
type outputFile struct {
	file *os.File
	buf  *bufio.Writer
	gz   io.Closer
}

func createOutput(path string) (*outputFile, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return &outputFile{file: f, buf: bufio.NewWriterSize(f, writerBufferSize)}, nil
	}

	pw, err := pgzip.NewWriterLevel(f, pgzip.DefaultCompression)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create gzip writer: %w", err)
	}
	if err := pw.SetConcurrency(1<<20, runtime.GOMAXPROCS(0)); err != nil {
		_ = pw.Close()
		_ = f.Close()
		return nil, fmt.Errorf("set gzip concurrency: %w", err)
	}
	return &outputFile{file: f, buf: bufio.NewWriterSize(pw, writerBufferSize), gz: pw}, nil
}

func (o *outputFile) Write(p []byte) (int, error) {
	return o.buf.Write(p)
}

func (o *outputFile) Close() error {
	err := o.buf.Flush()
	if o.gz != nil {
		if cerr := o.gz.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := o.file.Close(); err == nil {
		err = cerr
	}
	return err
}

func fatalf(format string, args ...any) {
	logger.Errorf(format, args...)
	os.Exit(1)
}

package learning

import "io"
import "os"

import "github.com/pkg/errors"

// Stdout is the output setting value that names standard output explicitly
const Stdout = "stdout"

// Sink is where the training log lines are written
type Sink struct {
	io.Writer
	file *os.File
}

// OpenSink returns a sink writing to std when path is empty or "stdout",
// otherwise it creates (truncating) the file at path
func OpenSink(path string, std io.Writer) (*Sink, error) {
	if path == "" || path == Stdout {
		return &Sink{Writer: std}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening output file")
	}
	return &Sink{Writer: file, file: file}, nil
}

// IsFile reports whether the sink was opened as a file
func (s *Sink) IsFile() bool {
	return s.file != nil
}

// Close closes the file behind the sink. The standard stream is never closed.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.Writer = io.Discard
	return err
}

package learning

import "bufio"
import "fmt"
import "io"
import "log"
import "math"
import "os"
import "strconv"

import "github.com/pkg/errors"

// MaxValueLen is the longest accepted value, including output paths
const MaxValueLen = 100

// SettingError is a settings value that cannot be used
type SettingError struct {
	Key   string
	Value string
	Msg   string
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("setting %s %q: %s", e.Key, e.Value, e.Msg)
}

func parseFloat(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &SettingError{Key: key, Value: value, Msg: "not a number"}
	}
	return f, nil
}

// MaxInt is the largest accepted integer setting
const MaxInt = math.MaxInt32

// parseInt accepts plain integers and integral floats such as 1e5
func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0, &SettingError{Key: key, Value: value, Msg: "not an integer"}
		}
		if math.Abs(f) > MaxInt {
			return 0, &SettingError{Key: key, Value: value, Msg: "out of range"}
		}
		n = int(f)
	}
	if n > MaxInt || n < -MaxInt {
		return 0, &SettingError{Key: key, Value: value, Msg: "out of range"}
	}
	return n, nil
}

// ParseSettings overlays the key value tokens read from r onto base.
// Unknown keys are reported to warn and skipped.
func ParseSettings(r io.Reader, base HyperParameters, warn *log.Logger) (HyperParameters, error) {
	var h = base
	var err error

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 4096), 1<<20)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		key := s.Text()
		if !s.Scan() {
			// a key without a value is dropped
			break
		}
		value := s.Text()
		switch key {
		case "w":
			h.W, err = parseFloat(key, value)
		case "b":
			h.B, err = parseFloat(key, value)
		case "alpha":
			h.Alpha, err = parseFloat(key, value)
		case "iterations":
			h.Iterations, err = parseInt(key, value)
		case "log-every":
			h.LogEvery, err = parseInt(key, value)
		case "threads":
			h.Threads, err = parseInt(key, value)
		case "output":
			if len(value) > MaxValueLen {
				return base, &SettingError{Key: key, Value: value[:MaxValueLen] + "...", Msg: "value too long"}
			}
			h.Output = value
		default:
			if warn != nil {
				warn.Printf("Unknown key: %s", key)
			}
		}
		if err != nil {
			return base, err
		}
	}
	if err := s.Err(); err != nil {
		return base, errors.Wrap(err, "reading settings")
	}
	return h, nil
}

// LoadSettings reads the settings file at path on top of Defaults
func LoadSettings(path string, warn *log.Logger) (HyperParameters, error) {
	file, err := os.Open(path)
	if err != nil {
		return Defaults(), errors.Wrap(err, "opening settings file")
	}
	defer file.Close()

	h, err := ParseSettings(file, Defaults(), warn)
	if err != nil {
		return h, errors.Wrapf(err, "parsing %s", path)
	}
	return h, nil
}

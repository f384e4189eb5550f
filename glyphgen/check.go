package glyphgen

import (
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"

	"github.com/teranos/smufl/errors"
)

// Marker lines delimiting the generated region of the catalogue file.
// Everything between them is owned by the generator.
const (
	BeginMarker = "// BEGIN GENERATED SMUFL GLYPHS; DO NOT EDIT."
	EndMarker   = "// END GENERATED SMUFL GLYPHS"
)

// Region is a source file split around its generated region.
// Prefix ends with the begin marker line, Suffix starts with the end marker.
type Region struct {
	Prefix string
	Body   string
	Suffix string
}

// SplitRegion locates the marker lines in src. Each marker must occur
// exactly once as a whole line, begin before end. Marker text inside a
// longer line, such as a glyph description, does not count.
func SplitRegion(src string) (Region, error) {
	begin, err := markerLine(src, BeginMarker, "begin")
	if err != nil {
		return Region{}, err
	}
	end, err := markerLine(src, EndMarker, "end")
	if err != nil {
		return Region{}, err
	}

	bodyStart := begin + len(BeginMarker) + 1
	if end < bodyStart {
		return Region{}, errors.Wrap(errors.ErrMarkersNotFound, "end marker must follow the begin marker")
	}

	return Region{
		Prefix: src[:bodyStart],
		Body:   src[bodyStart:end],
		Suffix: src[end:],
	}, nil
}

// markerLine returns the offset of the only line of src equal to marker.
func markerLine(src, marker, which string) (int, error) {
	offset, found, n := 0, 0, 0
	for line := range strings.Lines(src) {
		if strings.TrimSuffix(line, "\n") == marker {
			found = offset
			n++
		}
		offset += len(line)
	}
	if n != 1 {
		return 0, errors.Wrapf(errors.ErrMarkersNotFound, "%s marker found %d times", which, n)
	}
	return found, nil
}

// Replace returns the file text with body in place of the generated region.
func (r Region) Replace(body string) string {
	return r.Prefix + body + r.Suffix
}

// CheckResult holds the result of comparing one generated file.
type CheckResult struct {
	Path     string
	UpToDate bool
	// Written is true when drift was corrected on disk
	Written bool
	// Diff is a unified diff from committed to generated text, empty when up to date
	Diff string
}

// Err returns an ErrDrift error when the file was out of date, nil otherwise.
func (r *CheckResult) Err() error {
	if r.UpToDate {
		return nil
	}
	err := errors.Wrapf(errors.ErrDrift, "%s", r.Path)
	if r.Written {
		return errors.WithHint(err, "the file has been regenerated; review and commit it")
	}
	return errors.WithHint(err, "run glyphgen to regenerate it")
}

// Update is a comparison whose generated text has not been written yet.
type Update struct {
	*CheckResult
	content string
}

// Write stores the generated text if the file was out of date, keeping
// the file mode. It does nothing for an up to date or already written file.
func (u *Update) Write(fs afero.Fs) error {
	if u.UpToDate || u.Written {
		return nil
	}
	if err := writePreservingMode(fs, u.Path, u.content); err != nil {
		return err
	}
	u.Written = true
	return nil
}

// CompareRegion compares generated with the marker-delimited region of the
// file at path. Writing the update replaces only the region. A missing file
// or missing markers is an error, not drift.
func CompareRegion(fs afero.Fs, path, generated string) (*Update, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	region, err := SplitRegion(string(data))
	if err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "%s", path),
			"restore the marker lines:\n"+BeginMarker+"\n"+EndMarker)
	}

	update := &Update{
		CheckResult: &CheckResult{Path: path, UpToDate: region.Body == generated},
		content:     region.Replace(generated),
	}
	if !update.UpToDate {
		update.Diff = unifiedDiff(path, region.Body, generated)
	}
	return update, nil
}

// CompareFile compares generated with the whole file at path. A missing
// file is drift; writing the update creates it.
func CompareFile(fs afero.Fs, path, generated string) (*Update, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	update := &Update{
		CheckResult: &CheckResult{Path: path, UpToDate: err == nil && string(data) == generated},
		content:     generated,
	}
	if !update.UpToDate {
		update.Diff = unifiedDiff(path, string(data), generated)
	}
	return update, nil
}

// VerifyRegion runs CompareRegion and, if write is set, writes the update.
func VerifyRegion(fs afero.Fs, path, generated string, write bool) (*CheckResult, error) {
	update, err := CompareRegion(fs, path, generated)
	if err != nil {
		return nil, err
	}
	return apply(fs, update, write)
}

// VerifyFile runs CompareFile and, if write is set, writes the update.
func VerifyFile(fs afero.Fs, path, generated string, write bool) (*CheckResult, error) {
	update, err := CompareFile(fs, path, generated)
	if err != nil {
		return nil, err
	}
	return apply(fs, update, write)
}

func apply(fs afero.Fs, update *Update, write bool) (*CheckResult, error) {
	if write {
		if err := update.Write(fs); err != nil {
			return nil, err
		}
	}
	return update.CheckResult, nil
}

func writePreservingMode(fs afero.Fs, path, content string) error {
	mode := os.FileMode(0644)
	if info, err := fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := afero.WriteFile(fs, path, []byte(content), mode); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func unifiedDiff(path, committed, generated string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(committed),
		B:        difflib.SplitLines(generated),
		FromFile: path + " (committed)",
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		// Diff is informational only
		return ""
	}
	return diff
}

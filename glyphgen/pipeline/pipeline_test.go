package pipeline

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/smufl/config"
	"github.com/teranos/smufl/errors"
	"github.com/teranos/smufl/glyphgen"
	"github.com/teranos/smufl/logger"
)

const metadata = `{
	"gClef": {"codepoint": "U+E050", "alternateCodepoint": "U+1D11E", "description": "G clef"},
	"note128thUp": {"codepoint": "U+E1DF", "alternateCodepoint": "U+1D164", "description": "128th note (semihemidemisemiquaver) stem up"},
	"4stringTabClef": {"codepoint": "U+E06E", "description": "4-string tab clef"},
	"segno": {"codepoint": "U+E047", "description": "Segno"}
}`

// Same glyphs, different key order
const shuffledMetadata = `{
	"segno": {"description": "Segno", "codepoint": "U+E047"},
	"4stringTabClef": {"codepoint": "U+E06E", "description": "4-string tab clef"},
	"note128thUp": {"alternateCodepoint": "U+1D164", "codepoint": "U+E1DF", "description": "128th note (semihemidemisemiquaver) stem up"},
	"gClef": {"description": "G clef", "codepoint": "U+E050", "alternateCodepoint": "U+1D11E"}
}`

const (
	head = "package smufl\n\nfunc (g Glyph) invalid() error { return nil }\n\n" + glyphgen.BeginMarker + "\n"
	tail = glyphgen.EndMarker + "\n"
)

func options(write bool) Options {
	return Options{
		GlyphgenConfig: config.GlyphgenConfig{
			Metadata:    "/repo/smufl/glyphnames.json",
			Target:      "/repo/smufl/glyph.go",
			Docs:        "/repo/smufl/GLYPHS.md",
			TypeName:    "Glyph",
			ConstPrefix: "Glyph",
		},
		Write: write,
	}
}

func newFs(t *testing.T, meta, body string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/smufl/glyphnames.json", []byte(meta), 0644))
	require.NoError(t, afero.WriteFile(fs, "/repo/smufl/glyph.go", []byte(head+body+tail), 0644))
	return fs
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestRunRegeneratesStaleCatalogue(t *testing.T) {
	fs := newFs(t, metadata, "\n// stale\n")

	report, err := Run(fs, options(true))
	require.NoError(t, err)
	assert.Equal(t, 4, report.Glyphs)
	require.Len(t, report.Results, 2)
	assert.False(t, report.UpToDate())
	for _, res := range report.Results {
		assert.True(t, res.Written, res.Path)
	}

	err = report.Err()
	require.Error(t, err)
	assert.True(t, errors.IsDrift(err))
	assert.Contains(t, err.Error(), "glyph.go")

	target := readFile(t, fs, "/repo/smufl/glyph.go")
	assert.True(t, strings.HasPrefix(target, head))
	assert.True(t, strings.HasSuffix(target, tail))
	assert.Contains(t, target, "\tGlyphGClef Glyph = iota + 1\n")
	assert.Contains(t, target, "\tGlyph_4StringTabClef\n")
	assert.Contains(t, target, "\t\treturn \"note128thUp\"\n")

	docs := readFile(t, fs, "/repo/smufl/GLYPHS.md")
	assert.Contains(t, docs, "from `glyphnames.json`")
	assert.Contains(t, docs, "| `note128thUp` | `GlyphNote128thUp` | U+E1DF | U+1D164 |")

	// Idempotent: the rewritten tree is up to date
	report, err = Run(fs, options(true))
	require.NoError(t, err)
	assert.True(t, report.UpToDate())
	assert.NoError(t, report.Err())
	assert.Equal(t, target, readFile(t, fs, "/repo/smufl/glyph.go"))
}

func TestRunCheckOnlyLeavesFiles(t *testing.T) {
	fs := newFs(t, metadata, "\n// stale\n")

	report, err := Run(fs, options(false))
	require.NoError(t, err)
	assert.False(t, report.UpToDate())
	assert.NotEmpty(t, report.Results[0].Diff)
	assert.Equal(t, head+"\n// stale\n"+tail, readFile(t, fs, "/repo/smufl/glyph.go"))

	exists, err := afero.Exists(fs, "/repo/smufl/GLYPHS.md")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunDetectsSingleCodepointChange(t *testing.T) {
	fs := newFs(t, metadata, "")
	_, err := Run(fs, options(true))
	require.NoError(t, err)
	before := readFile(t, fs, "/repo/smufl/glyph.go")

	changed := strings.Replace(metadata, "U+E047", "U+E048", 1)
	require.NoError(t, afero.WriteFile(fs, "/repo/smufl/glyphnames.json", []byte(changed), 0644))

	report, err := Run(fs, options(true))
	require.NoError(t, err)
	assert.False(t, report.UpToDate())
	assert.Contains(t, report.Results[0].Diff, "-\t\treturn 0xE047")
	assert.Contains(t, report.Results[0].Diff, "+\t\treturn 0xE048")

	after := readFile(t, fs, "/repo/smufl/glyph.go")
	assert.Equal(t, strings.Replace(before, "return 0xE047", "return 0xE048", 1), after)
}

func TestRunIsIndependentOfInputOrder(t *testing.T) {
	a := newFs(t, metadata, "")
	b := newFs(t, shuffledMetadata, "")

	_, err := Run(a, options(true))
	require.NoError(t, err)
	_, err = Run(b, options(true))
	require.NoError(t, err)

	assert.Equal(t, readFile(t, a, "/repo/smufl/glyph.go"), readFile(t, b, "/repo/smufl/glyph.go"))
	assert.Equal(t, readFile(t, a, "/repo/smufl/GLYPHS.md"), readFile(t, b, "/repo/smufl/GLYPHS.md"))
}

func TestRunWithoutDocs(t *testing.T) {
	fs := newFs(t, metadata, "")
	opts := options(true)
	opts.Docs = ""

	report, err := Run(fs, opts)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "/repo/smufl/glyph.go", report.Results[0].Path)
}

func TestRunMalformedMetadataWritesNothing(t *testing.T) {
	tests := []struct {
		name     string
		meta     string
		sentinel error
	}{
		{"bad codepoint", `{"segno": {"codepoint": "E047", "description": "Segno"}}`, errors.ErrMalformedCodepoint},
		{"missing description", `{"segno": {"codepoint": "U+E047"}}`, errors.ErrMalformedInput},
		{"empty", `{}`, errors.ErrMalformedInput},
		{"collision", `{"fooBar": {"codepoint": "U+E000", "description": ""}, "FooBar": {"codepoint": "U+E001", "description": ""}}`, errors.ErrIdentifierCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFs(t, tt.meta, "\n// stale\n")

			_, err := Run(fs, options(true))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.False(t, errors.IsDrift(err))
			assert.Contains(t, err.Error(), "glyphnames.json")

			assert.Equal(t, head+"\n// stale\n"+tail, readFile(t, fs, "/repo/smufl/glyph.go"))
		})
	}
}

func TestRunMissingMetadata(t *testing.T) {
	_, err := Run(afero.NewMemMapFs(), options(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open glyph metadata")
}

func TestRunMissingMarkers(t *testing.T) {
	fs := newFs(t, metadata, "")
	require.NoError(t, afero.WriteFile(fs, "/repo/smufl/glyph.go", []byte("package smufl\n"), 0644))

	_, err := Run(fs, options(true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMarkersNotFound))
	assert.Equal(t, "package smufl\n", readFile(t, fs, "/repo/smufl/glyph.go"))
}

// failingFs refuses to open one path for reading and one for writing.
type failingFs struct {
	afero.Fs
	readPath  string
	writePath string
}

func (f failingFs) Open(name string) (afero.File, error) {
	if name == f.readPath {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

func (f failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if name == f.writePath && flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	if name == f.readPath && flag&(os.O_WRONLY|os.O_RDWR) == 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestRunUnreadableDocsWritesNothing(t *testing.T) {
	stale := head + "\n// stale\n" + tail
	fs := failingFs{Fs: newFs(t, metadata, "\n// stale\n"), readPath: "/repo/smufl/GLYPHS.md"}

	report, err := Run(fs, options(true))
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to verify markdown output")
	assert.False(t, errors.IsDrift(err))

	assert.Equal(t, stale, readFile(t, fs.Fs, "/repo/smufl/glyph.go"))
}

func TestRunDocsWriteFailureKeepsReport(t *testing.T) {
	fs := failingFs{Fs: newFs(t, metadata, "\n// stale\n"), writePath: "/repo/smufl/GLYPHS.md"}

	report, err := Run(fs, options(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write markdown output")

	require.NotNil(t, report)
	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Written)
	assert.False(t, report.Results[1].Written)
	assert.NotEmpty(t, report.Results[1].Diff)
	assert.True(t, errors.IsDrift(report.Err()))

	assert.Contains(t, readFile(t, fs.Fs, "/repo/smufl/glyph.go"), "GlyphSegno")
}

func TestRunDescriptionContainingMarker(t *testing.T) {
	meta := `{
	"segno": {"codepoint": "U+E047", "description": "Segno ` + glyphgen.EndMarker + `"},
	"coda": {"codepoint": "U+E048", "description": "` + glyphgen.BeginMarker + `"}
}`
	fs := newFs(t, meta, "")

	report, err := Run(fs, options(true))
	require.NoError(t, err)
	assert.False(t, report.UpToDate())

	target := readFile(t, fs, "/repo/smufl/glyph.go")
	assert.Contains(t, target, "\t// GlyphSegno: Segno "+glyphgen.EndMarker+"\n")
	assert.True(t, strings.HasSuffix(target, "\n"+tail))

	report, err = Run(fs, options(true))
	require.NoError(t, err)
	assert.True(t, report.UpToDate())
	assert.Equal(t, target, readFile(t, fs, "/repo/smufl/glyph.go"))
}

func TestRunLogsPerFile(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Logger
	logger.Logger = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Logger = prev })

	_, err := Run(newFs(t, metadata, ""), options(true))
	require.NoError(t, err)

	verified := logs.FilterMessage("Verified generated file").All()
	require.Len(t, verified, 2)
	assert.Equal(t, "glyphgen", verified[0].LoggerName)
	assert.Equal(t, "go", verified[0].ContextMap()[logger.FieldLanguage])
	assert.Equal(t, "regenerated", verified[0].ContextMap()[logger.FieldStatus])
	assert.Equal(t, "markdown", verified[1].ContextMap()[logger.FieldLanguage])
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{Glyphgen: config.GlyphgenConfig{Metadata: "m.json", Target: "t.go", TypeName: "Glyph"}}

	opts := OptionsFromConfig(cfg, true)
	assert.Equal(t, "m.json", opts.Metadata)
	assert.Equal(t, "t.go", opts.Target)
	assert.True(t, opts.Write)
}

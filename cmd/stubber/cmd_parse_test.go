package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/stubber/project"
)

const linkLog = `/tmp/ccA.o: In function ` + "`Main::main(JArray<java::lang::String*>*)'" + `:
Main.java:(.text+0x10): undefined reference to ` + "`java::awt::Frame::class$'" + `
Main.java:(.text+0x2c): undefined reference to ` + "`java::awt::Frame::Frame(java::lang::String*)'" + `
Main.java:(.text+0x40): undefined reference to ` + "`void java::awt::Frame::pack()'" + `
Main.java:(.text+0x48): undefined reference to ` + "`java::awt::Color::black'" + `
Main.java:(.text+0x50): undefined reference to ` + "`java::awt::Frame::Frame()'" + `
collect2: ld returned 1 exit status
`

func runCmd(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	return runCmdIn(t, t.TempDir(), args, stdin)
}

func runCmdIn(t *testing.T, dir string, args []string, stdin string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { commonlog.Configure(0, nil) })

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(append([]string{"-C", dir}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCmd_Stdin(t *testing.T) {
	stdout, stderr, err := runCmd(t, []string{"parse", "--exclude", "java.awt.Color"}, linkLog)
	require.NoError(t, err)

	want := `class java.awt.Color
  field black
class java.awt.Frame (class symbol)
  Frame(java.lang.String)
  pack()
`
	assert.Equal(t, want, stdout)
	assert.Contains(t, stderr, "2 classes (0 inner), 1 constructors, 1 methods, 1 fields; 0 references unrecognized")
}

func TestParseCmd_FileAndJSON(t *testing.T) {
	input := filepath.Join(t.TempDir(), "link.log")
	require.NoError(t, os.WriteFile(input, []byte(linkLog), 0o644))

	stdout, stderr, err := runCmd(t, []string{"parse", input, "--format", "json", "--runtime-archive", "/opt/libgcj.jar", "-j", "3"}, "")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name": "java.awt.Frame"`)
	assert.Contains(t, stdout, `"archive": "/opt/libgcj.jar"`)
	assert.NotContains(t, stdout, "java.awt.Color")
	assert.Contains(t, stderr, "1 references unrecognized")
}

func TestParseCmd_Errors(t *testing.T) {
	_, _, err := runCmd(t, []string{"parse", filepath.Join(t.TempDir(), "missing.log")}, "")
	assert.Error(t, err)

	_, _, err = runCmd(t, []string{"parse", "--format", "xml"}, linkLog)
	assert.Error(t, err)
}

func TestExcludedCmd(t *testing.T) {
	stdout, _, err := runCmd(t, []string{"excluded", "--exclude", "java/awt/Frame", "--exclude", "java.awt.Color"}, "")
	require.NoError(t, err)
	assert.Equal(t, "java.awt.Color\njava.awt.Frame\n", stdout)
}

func TestDemangleCmd(t *testing.T) {
	stdout, _, err := runCmd(t, []string{"demangle", "--classify", "void java::awt::Frame::pack()", "JArray<JArray<jint>*>*"}, "")
	require.NoError(t, err)
	assert.Equal(t, "void java.awt.Frame.pack()\tmethod\njint[][]\tunrecognized\n", stdout)
}

func TestRootCmd_LogConfig(t *testing.T) {
	t.Run("config file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, project.ConfigDir), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, project.ConfigDir, "config.yaml"),
			[]byte("log:\n  verbosity: 2\n  file: stubber.log\n"), 0o644))

		_, _, err := runCmdIn(t, root, []string{"parse"}, linkLog)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(root, "stubber.log"))
	})

	t.Run("environment", func(t *testing.T) {
		root := t.TempDir()
		logPath := filepath.Join(t.TempDir(), "env.log")
		t.Setenv("STUBBER_LOG_VERBOSITY", "1")
		t.Setenv("STUBBER_LOG_FILE", logPath)

		_, _, err := runCmdIn(t, root, []string{"demangle", "Foo::bar()"}, "")
		require.NoError(t, err)
		assert.FileExists(t, logPath)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Setenv("STUBBER_OUTPUT_FORMAT", "xml")
		_, _, err := runCmd(t, []string{"excluded"}, "")
		assert.Error(t, err)
	})
}

func TestLogSettings(t *testing.T) {
	t.Cleanup(func() { verbosity, logFile = 0, "" })

	proj := project.Default()
	proj.RootDir = "/work"

	verbosity, logFile = 0, ""
	level, path := logSettings(proj)
	assert.Equal(t, 0, level)
	assert.Nil(t, path)

	proj.Log = project.Log{Verbosity: 2, File: "logs/stubber.log"}
	level, path = logSettings(proj)
	assert.Equal(t, 2, level)
	require.NotNil(t, path)
	assert.Equal(t, filepath.Join("/work", "logs/stubber.log"), *path)

	verbosity, logFile = 3, "/tmp/flag.log"
	level, path = logSettings(proj)
	assert.Equal(t, 3, level)
	require.NotNil(t, path)
	assert.Equal(t, "/tmp/flag.log", *path)
}

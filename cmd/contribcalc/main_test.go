package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/contribcalc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with an isolated preferences directory
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"calculate", "project", "limits", "validate", "compare", "interactive", "tui", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "contribcalc")
	assert.Contains(t, out, "calculate")
}

func TestCalculateCommand_Console(t *testing.T) {
	out, err := run(t, "calculate", "--age", "40", "--retirement-age", "42")

	require.NoError(t, err)
	assert.Contains(t, out, "2026 CONTRIBUTION LIMITS")
	assert.Contains(t, out, "PROJECTION TO 2028")
}

func TestCalculateCommand_JSON(t *testing.T) {
	path := writeInput(t, "inputs.yaml", "age: 52\nsalary: 210000\nfiling_status: mfj\n")

	out, err := run(t, "calculate", path, "-f", "json")

	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.EqualValues(t, 2026, doc["taxYear"])
	assert.Contains(t, doc, "projection")
}

func TestCalculateCommand_Query(t *testing.T) {
	out, err := run(t, "calculate", "--query", "$.thisYear.plan401k.baseDeferral")

	require.NoError(t, err)
	assert.Equal(t, "24500\n", out)
}

func TestCalculateCommand_FlagOverridesFile(t *testing.T) {
	path := writeInput(t, "inputs.json", `{"age": 30, "retirement_age": 65}`)

	out, err := run(t, "calculate", path, "--retirement-age", "31", "--query", "$.projection.yearsToRetirement")

	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestCalculateCommand_ProjectionUnavailable(t *testing.T) {
	out, err := run(t, "calculate", "--age", "70", "--retirement-age", "65")

	require.NoError(t, err, "A rejected projection is reported, not returned")
	assert.Contains(t, out, "Projection unavailable")
}

func TestCalculateCommand_UnknownFormat(t *testing.T) {
	_, err := run(t, "calculate", "-f", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestCalculateCommand_InvalidInputs(t *testing.T) {
	_, err := run(t, "calculate", "--filing-status", "widowed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid inputs")
}

func TestProjectCommand(t *testing.T) {
	out, err := run(t, "project", "--age", "60", "--retirement-age", "63", "--real")

	require.NoError(t, err)
	assert.Contains(t, out, "PROJECTION TO 2029 (3 years, today's dollars)")
	assert.Contains(t, out, "Conservative")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "2029"), "Last row is the retirement year")
}

func TestProjectCommand_RejectsHorizon(t *testing.T) {
	_, err := run(t, "project", "--age", "65", "--retirement-age", "60")

	assert.Error(t, err)
}

func TestLimitsCommand(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		out, err := run(t, "limits")
		require.NoError(t, err)
		assert.Contains(t, out, "2026 CONTRIBUTION LIMITS")
		assert.Contains(t, out, "$24,500")
		assert.Contains(t, out, "HDHP minimum deductible")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "limits", "-f", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "year: 2026")
		assert.Contains(t, out, "base_deferral:")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "limits", "-f", "json")
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.EqualValues(t, 2026, doc["year"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := run(t, "limits", "-f", "xml")
		assert.Error(t, err)
	})
}

func TestValidateCommand(t *testing.T) {
	valid := writeInput(t, "ok.yaml", "age: 45\nhsa_coverage: family\n")
	out, err := run(t, "validate", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	invalid := writeInput(t, "bad.yaml", "age: 45\nbonus: 1000\n")
	_, err = run(t, "validate", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input validation failed")

	_, err = run(t, "validate")
	assert.Error(t, err, "Requires a file argument")
}

func TestCompareCommand_CSV(t *testing.T) {
	out, err := run(t, "compare", "--age", "50", "--retirement-age", "60", "--retire-at", "62,65", "-f", "csv")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,Type,Retirement Age"))
	assert.True(t, strings.HasPrefix(lines[1], "retire at 60,base,60"))
	assert.True(t, strings.HasPrefix(lines[2], "retire at 62,alternative,62"))
}

func TestCompareCommand_RequiresAges(t *testing.T) {
	_, err := run(t, "compare")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--retire-at")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "contribcalc dev")
}

func TestOutputFormatFromPreferences(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "contribcalc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contribcalc", "config.toml"),
		[]byte("[output]\nformat = \"json\"\n"), 0o600))
	t.Setenv("XDG_CONFIG_HOME", dir)

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"calculate", "--age", "40", "--retirement-age", "41"})
	require.NoError(t, cmd.Execute())

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(stdout.Bytes(), &doc), "Preferred format applies when -f is not given")
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "md", fileExtension("markdown"))
	assert.Equal(t, "json", fileExtension("json"))
	assert.Equal(t, "txt", fileExtension("pretty"))
}

func TestFormValues_ToInputs(t *testing.T) {
	v := newFormValues(config.DefaultInputs())
	v.Salary = "210,000"
	v.MAGI = ""
	v.AllowsAfterTax = "yes"

	in, err := v.toInputs()

	require.NoError(t, err)
	assert.Equal(t, 35, in.Age)
	assert.Equal(t, 210000.0, in.Salary)
	assert.Zero(t, in.MAGI)
	assert.Equal(t, 2.5, in.InflationPct)
	assert.Equal(t, "yes", in.AllowsAfterTax)
	assert.Equal(t, "single", in.FilingStatus)

	v.Age = "forty"
	_, err = v.toInputs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validNumber(""))
	assert.NoError(t, validNumber("1,500.50"))
	assert.Error(t, validNumber("abc"))
	assert.Error(t, validNumber("-1"))
	assert.NoError(t, validAge("45"))
	assert.Error(t, validAge("0"))
	assert.Error(t, validAge("4.5"))
}

func defaultRequest() config.Request {
	return config.Inputs{}.Normalize()
}

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	ResetSettings()
	args := GetSettings()

	require.Equal(t, "./datafiles", args.DataDir)
	require.Equal(t, "log.txt", args.AuditLogFile)
	require.False(t, args.Debug)
}

func TestApplyConfigFile(t *testing.T) {
	ResetSettings()
	args := GetSettings()

	path := filepath.Join(t.TempDir(), "rollbook.yaml")
	yaml := "dataDir: /srv/records\nauditLog: /srv/records/audit.log\ndebug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	require.NoError(t, args.ApplyConfigFile(path))
	require.Equal(t, "/srv/records", args.DataDir)
	require.Equal(t, "/srv/records/audit.log", args.AuditLogFile)
	require.True(t, args.Debug)
}

func TestApplyConfigFile_PartialFileKeepsOtherValues(t *testing.T) {
	ResetSettings()
	args := GetSettings()

	path := filepath.Join(t.TempDir(), "rollbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataDir: /only/this\n"), 0644))

	require.NoError(t, args.ApplyConfigFile(path))
	require.Equal(t, "/only/this", args.DataDir)
	require.Equal(t, "log.txt", args.AuditLogFile)
}

func TestApplyConfigFile_MissingFile(t *testing.T) {
	ResetSettings()
	args := GetSettings()

	err := args.ApplyConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestApplyEnv_OverridesFileValues(t *testing.T) {
	ResetSettings()
	args := GetSettings()
	args.DataDir = "/from/file"

	t.Setenv("ROLLBOOK_DATA_DIR", "/from/env")
	t.Setenv("ROLLBOOK_DEBUG", "yes")

	args.ApplyEnv()
	require.Equal(t, "/from/env", args.DataDir)
	require.True(t, args.Debug)
}

func TestApplyEnv_BlankValueIgnored(t *testing.T) {
	ResetSettings()
	args := GetSettings()

	t.Setenv("ROLLBOOK_DATA_DIR", "   ")
	args.ApplyEnv()
	require.Equal(t, "./datafiles", args.DataDir)
}

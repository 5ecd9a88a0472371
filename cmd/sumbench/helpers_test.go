package main

import (
	"bytes"
	"os"
	"testing"

	"sumbench/internal/benchmark"
	"sumbench/internal/cmdutils"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(run benchmark.Run) error {
	args := m.Called(run)
	return args.Error(0)
}

func (m *mockStore) LoadLatest() (*benchmark.Run, error) {
	args := m.Called()
	run, _ := args.Get(0).(*benchmark.Run)
	return run, args.Error(1)
}

func (m *mockStore) LoadAll() ([]benchmark.Run, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]benchmark.Run)
	return runs, args.Error(1)
}

func (m *mockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// setupCLI isolates a test from the working directory, global config and git,
// and shrinks the workload to N=5.
func setupCLI(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))

	origDriver := newDriverFunc
	origCommit := cmdutils.GetGitCommit
	origStore := cmdutils.GetHistoryStore

	newDriverFunc = func(opts ...benchmark.Option) *benchmark.Driver {
		d := benchmark.NewDriver(opts...)
		d.Size = 5
		return d
	}
	cmdutils.GetGitCommit = func() (string, error) { return "abc1234", nil }

	viper.Reset()
	t.Cleanup(func() {
		os.Chdir(wd)
		newDriverFunc = origDriver
		cmdutils.GetGitCommit = origCommit
		cmdutils.GetHistoryStore = origStore
		viper.Reset()
	})
}

func useStore(t *testing.T, store benchmark.Store) {
	t.Helper()
	cmdutils.GetHistoryStore = func() (benchmark.Store, error) { return store, nil }
}

// executeCommand runs rootCmd with args and returns stdout and stderr.
func executeCommand(args ...string) (string, string, error) {
	viper.Reset()
	resetFlags(rootCmd)
	rootCmd.SetArgs(append([]string{"--log-file", "sumbench.log"}, args...))

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(bytes.NewBufferString(""))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

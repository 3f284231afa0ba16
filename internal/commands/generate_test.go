package commands_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drillbook-dev/drillbook/internal/model"
)

func TestGenerate_WritesActivity(t *testing.T) {
	dir := t.TempDir()
	_, err := runDrillbook(t, dir, "init")
	require.NoError(t, err)

	out, err := runDrillbook(t, dir, "generate", "--seed", "42")
	require.NoError(t, err, out)

	data, err := os.ReadFile(filepath.Join(dir, "activity.json"))
	require.NoError(t, err)

	var a model.Activity
	require.NoError(t, json.Unmarshal(data, &a))
	assert.Len(t, a.Transactions, 10)
	assert.Equal(t, int64(42), a.Config.Seed)
	for _, tx := range a.Transactions {
		assert.True(t, tx.Balanced(), tx.ID)
	}
}

func TestGenerate_Exports(t *testing.T) {
	dir := t.TempDir()
	_, err := runDrillbook(t, dir, "init")
	require.NoError(t, err)

	_, err = runDrillbook(t, dir, "generate", "--seed", "42", "--export")
	require.NoError(t, err)

	for _, name := range []string{"journal.csv", "trial_balance.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestGenerate_MissingConfig(t *testing.T) {
	out, err := runDrillbook(t, t.TempDir(), "generate")
	require.Error(t, err)
	assert.Contains(t, out, "reading config")
}

func TestGrade_ScoresAnswerFile(t *testing.T) {
	dir := t.TempDir()
	_, err := runDrillbook(t, dir, "init")
	require.NoError(t, err)
	_, err = runDrillbook(t, dir, "generate", "--seed", "42")
	require.NoError(t, err)

	// An empty answer grades to an F but must not error.
	answerPath := filepath.Join(dir, "answer.json")
	require.NoError(t, os.WriteFile(answerPath, []byte(`{"rows":[]}`), 0o644))

	out, err := runDrillbook(t, dir, "grade", "--step", "1", answerPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Step 1:")
	assert.Contains(t, out, "(F)")

	// The attempt log grows with each run.
	data, err := os.ReadFile(filepath.Join(dir, "attempts.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "timestamp,activity_id,step,score,max_score,letter")
}

func TestGrade_RequiresValidStep(t *testing.T) {
	dir := t.TempDir()
	answerPath := filepath.Join(dir, "answer.json")
	require.NoError(t, os.WriteFile(answerPath, []byte(`{}`), 0o644))

	out, err := runDrillbook(t, dir, "grade", "--step", "11", answerPath)
	require.Error(t, err)
	assert.Contains(t, out, "between 1 and 10")
}

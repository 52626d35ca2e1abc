/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/graphcheck/pkg/config"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

const testSchema = `
nodes:
  - kind: Device
    attributes:
      - name: name
        kind: Text
`

const testNewSchema = `
nodes:
  - kind: Device
    attributes:
      - name: name
        kind: Text
        regex: "^[a-z0-9]+$"
        unique: true
`

const testFixture = `
at: 2025-01-01T00:00:00Z
nodes:
  - id: dev1
    kind: Device
    attributes: {name: dev1}
  - id: dev2
    kind: Device
    attributes: {name: Dev-2}
  - id: dev3
    kind: Device
    attributes: {name: dev1}
`

type testFiles struct {
	schema    string
	newSchema string
	fixture   string
}

func writeTestFiles(t *testing.T) testFiles {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}
	return testFiles{
		schema:    write("schema.yaml", testSchema),
		newSchema: write("new_schema.yaml", testNewSchema),
		fixture:   write("fixture.yaml", testFixture),
	}
}

func execTestCmd(t *testing.T, args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := newRootCmd(append([]string{appName}, args...), "0.0.1")
	cmd.SetOut(out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	require := require.New(t)
	files := writeTestFiles(t)

	out, err := execTestCmd(t, "--schema", files.schema, "--fixture", files.fixture,
		"check", "--kind", "Device", "--field", "name", "--property", schema.PropertyRegex, "--new-schema", files.newSchema, "--json")
	require.ErrorIs(err, ErrViolationsFound)

	res := checkResponse{}
	require.NoError(json.Unmarshal([]byte(out), &res))
	require.Equal(validators.AttributeRegexUpdate, res.ConstraintName)
	require.Equal("Device.name.regex", res.SchemaPath)
	require.Len(res.Violations, 1)
	require.Equal(graph.VertexID("dev2"), res.Violations[0].NodeID)

	t.Run("current schema has no violations", func(t *testing.T) {
		out, err := execTestCmd(t, "--schema", files.schema, "--fixture", files.fixture,
			"check", "--kind", "Device", "--field", "name", "--property", schema.PropertyRegex)
		require.NoError(err)
		require.Contains(out, "OK")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := execTestCmd(t, "--schema", files.schema,
			"check", "--kind", "Device", "--field", "unknown", "--property", schema.PropertyRegex)
		require.ErrorIs(err, ErrBadRequest)
	})

	t.Run("invalid time", func(t *testing.T) {
		_, err := execTestCmd(t, "--schema", files.schema,
			"check", "--kind", "Device", "--field", "name", "--property", schema.PropertyRegex, "--at", "yesterday")
		require.Error(err)
	})
}

func TestMigrateCmd(t *testing.T) {
	require := require.New(t)
	files := writeTestFiles(t)

	out, err := execTestCmd(t, "--schema", files.schema, "--fixture", files.fixture, "migrate", files.newSchema, "--json")
	require.ErrorIs(err, ErrViolationsFound)

	res := migrateResponse{}
	require.NoError(json.Unmarshal([]byte(out), &res))
	require.Equal(3, res.Violations)
	byName := map[string]checkResponse{}
	for _, r := range res.Results {
		byName[r.ConstraintName] = r
	}
	require.Len(byName[validators.AttributeRegexUpdate].Violations, 1)
	unique := byName[validators.AttributeUniqueUpdate].Violations
	require.Len(unique, 2)
	require.ElementsMatch([]graph.VertexID{"dev1", "dev3"}, []graph.VertexID{unique[0].NodeID, unique[1].NodeID})

	t.Run("text output", func(t *testing.T) {
		out, err := execTestCmd(t, "--schema", files.schema, "--fixture", files.fixture, "migrate", files.newSchema)
		require.ErrorIs(err, ErrViolationsFound)
		require.Contains(out, "FAIL")
		require.Contains(out, "3 violation(s)")
	})

	t.Run("unchanged schema", func(t *testing.T) {
		out, err := execTestCmd(t, "--schema", files.schema, "--fixture", files.fixture, "migrate", files.schema)
		require.NoError(err)
		require.Contains(out, "0 constraint(s) checked")
	})
}

func TestValidateCmd(t *testing.T) {
	require := require.New(t)
	files := writeTestFiles(t)

	out, err := execTestCmd(t, "--schema", files.newSchema, "--fixture", files.fixture, "validate", "--json")
	require.ErrorIs(err, ErrViolationsFound)
	vv := []*validators.SchemaViolation{}
	require.NoError(json.Unmarshal([]byte(out), &vv))
	require.Len(vv, 3)
}

func TestConstraintsCmd(t *testing.T) {
	require := require.New(t)

	out, err := execTestCmd(t, "constraints")
	require.NoError(err)
	require.Contains(out, validators.AttributeRegexUpdate)
	require.Contains(out, validators.NodeUniquenessConstraintsUpdate)
}

func TestImportCmd(t *testing.T) {
	require := require.New(t)
	files := writeTestFiles(t)
	dbPath := filepath.Join(t.TempDir(), "graph.db")

	out, err := execTestCmd(t, "--storage", config.DriverBbolt, "--storage-path", dbPath, "--schema", files.schema, "import", files.fixture)
	require.NoError(err)
	require.Contains(out, "3 node(s)")

	// imported data survives the process
	out, err = execTestCmd(t, "--storage", config.DriverBbolt, "--storage-path", dbPath, "--schema", files.schema,
		"check", "--kind", "Device", "--field", "name", "--property", schema.PropertyRegex, "--new-schema", files.newSchema)
	require.ErrorIs(err, ErrViolationsFound)
	require.Contains(out, "1 violation(s)")
}

func TestInvalidConfig(t *testing.T) {
	_, err := execTestCmd(t, "--storage", "unknown", "constraints")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func newTestServer(t *testing.T) *httptest.Server {
	files := writeTestFiles(t)
	cfg := config.DefaultConfig()
	cfg.Schema.Files = []string{files.schema}
	cfg.Fixtures = []string{files.fixture}
	app, cleanup, err := wireApp(context.Background(), cfg)
	require.NoError(t, err)
	srv := httptest.NewServer(newRouter(app))
	t.Cleanup(func() {
		srv.Close()
		cleanup()
	})
	return srv
}

func post(t *testing.T, url string, body any) (int, []byte) {
	bb, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, contentTypeJSON, bytes.NewReader(bb))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestServer(t *testing.T) {
	require := require.New(t)
	srv := newTestServer(t)
	schemas, err := schema.LoadFiles(writeTestFiles(t).newSchema)
	require.NoError(err)

	t.Run("check", func(t *testing.T) {
		code, data := post(t, srv.URL+routeCheck, checkRequest{Schema: schemas[0], Field: "name", Property: schema.PropertyUnique})
		require.Equal(http.StatusOK, code, string(data))
		res := checkResponse{}
		require.NoError(json.Unmarshal(data, &res))
		require.Equal(validators.AttributeUniqueUpdate, res.ConstraintName)
		require.Len(res.Violations, 2)
	})

	t.Run("migrate", func(t *testing.T) {
		code, data := post(t, srv.URL+routeMigrate, migrateRequest{Schemas: schemas})
		require.Equal(http.StatusOK, code, string(data))
		res := migrateResponse{}
		require.NoError(json.Unmarshal(data, &res))
		require.Equal(3, res.Violations)
	})

	t.Run("bad requests", func(t *testing.T) {
		code, _ := post(t, srv.URL+routeCheck, checkRequest{Property: schema.PropertyRegex})
		require.Equal(http.StatusBadRequest, code)

		code, _ = post(t, srv.URL+routeCheck, map[string]any{"unknown": true})
		require.Equal(http.StatusBadRequest, code)

		code, _ = post(t, srv.URL+routeCheck, checkRequest{Schema: schemas[0], Field: "name", Property: "color"})
		require.Equal(http.StatusBadRequest, code)
	})

	t.Run("unknown branch", func(t *testing.T) {
		code, _ := post(t, srv.URL+routeMigrate, migrateRequest{Branch: "unknown", Schemas: schemas})
		require.Equal(http.StatusNotFound, code)
	})

	t.Run("constraints", func(t *testing.T) {
		resp, err := http.Get(srv.URL + routeConstraints)
		require.NoError(err)
		defer resp.Body.Close()
		names := []string{}
		require.NoError(json.NewDecoder(resp.Body).Decode(&names))
		require.Contains(names, validators.AttributeRegexUpdate)
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(srv.URL + routeMetrics)
		require.NoError(err)
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		require.NoError(err)
		require.True(strings.Contains(string(data), "graphcheck_label_resolution_failures_total"))
	})
}

package docs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Paths map[string]map[string]struct {
		Parameters []struct {
			Name   string          `json:"name"`
			In     string          `json:"in"`
			Schema json.RawMessage `json:"schema"`
		} `json:"parameters"`
		Responses map[string]struct {
			Schema json.RawMessage `json:"schema"`
		} `json:"responses"`
	} `json:"paths"`
	Definitions map[string]json.RawMessage `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	return doc
}

var routerAnnotation = regexp.MustCompile(`^// @Router (\S+) \[(\w+)\]`)

func TestEveryAnnotatedRouteIsDocumented(t *testing.T) {
	doc := readDoc(t)

	files, err := filepath.Glob(filepath.Join("..", "internal", "handlers", "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	annotated := map[string]bool{}
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		fh, err := os.Open(f)
		require.NoError(t, err)
		sc := bufio.NewScanner(fh)
		for sc.Scan() {
			m := routerAnnotation.FindStringSubmatch(sc.Text())
			if m == nil {
				continue
			}
			annotated[m[1]] = true
			ops, ok := doc.Paths[m[1]]
			if assert.True(t, ok, "path %s missing", m[1]) {
				assert.Contains(t, ops, m[2], "%s %s missing", m[2], m[1])
			}
		}
		fh.Close()
	}
	assert.Len(t, doc.Paths, len(annotated), "documented paths without an annotation")
}

func TestLoginOperation(t *testing.T) {
	doc := readDoc(t)
	op := doc.Paths["/api/login"]["post"]

	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "body", op.Parameters[0].In)
	assert.JSONEq(t, `{"$ref": "#/definitions/handlers.loginRequest"}`, string(op.Parameters[0].Schema))
	assert.JSONEq(t, `{"$ref": "#/definitions/handlers.loginResponse"}`, string(op.Responses["200"].Schema))

	for _, def := range []string{"handlers.loginRequest", "handlers.loginResponse", "helpers.Response", "models.Item", "models.Role"} {
		assert.Contains(t, doc.Definitions, def)
	}
}

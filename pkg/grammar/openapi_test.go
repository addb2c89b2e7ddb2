package grammar_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-widgetdsl/pkg/compiler"
	"github.com/goliatone/go-widgetdsl/pkg/grammar"
)

const contractSource = `
Button { text: "OK"; width: "100"; height: "40"; color: "#ff0000"; }
Table { headers: [Name, Age]; rows: [Alice,30;Bob,25]; }
Navbar { title: "Site"; links: [Home/home, Docs/https://example.com]; }
Pagination { pages: 3; active: 2; }
List { items: [a, b]; ordered: false; }
`

func loadContract(t *testing.T) *openapi3.T {
	t.Helper()
	raw, err := json.Marshal(grammar.OpenAPIDocument(grammar.Builtin(), "1.0.0"))
	if err != nil {
		t.Fatalf("marshal contract: %v", err)
	}
	doc, err := openapi3.NewLoader().LoadFromData(raw)
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("contract is not valid OpenAPI: %v", err)
	}
	return doc
}

func asJSONValue(t *testing.T, v any) any {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestOpenAPIDocument_DescribesEveryKind(t *testing.T) {
	doc := loadContract(t)
	for _, kind := range grammar.Builtin().Kinds() {
		if doc.Components.Schemas[kind] == nil {
			t.Fatalf("missing component schema for %s", kind)
		}
	}
	if doc.Components.Schemas[grammar.DocumentSchemaName] == nil {
		t.Fatalf("missing document envelope schema")
	}
}

func TestOpenAPIDocument_AcceptsCompiledNodes(t *testing.T) {
	doc := loadContract(t)
	compiled := compiler.New().Compile(contractSource)
	if compiled.Len() != 5 {
		t.Fatalf("expected 5 nodes, got %d", compiled.Len())
	}

	for _, node := range compiled.Nodes {
		schema := doc.Components.Schemas[node.Kind].Value
		if err := schema.VisitJSON(asJSONValue(t, node)); err != nil {
			t.Fatalf("%s node rejected: %v", node.Kind, err)
		}
	}

	envelope := doc.Components.Schemas[grammar.DocumentSchemaName].Value
	if err := envelope.VisitJSON(asJSONValue(t, compiled)); err != nil {
		t.Fatalf("document rejected: %v", err)
	}
}

func TestNodeSchema_RejectsMissingLayout(t *testing.T) {
	doc := loadContract(t)
	node := compiler.New().Compile(`Button { text: "OK"; width: "1"; height: "1"; color: "red"; }`).Nodes[0]
	node.Layout = nil

	if err := doc.Components.Schemas[grammar.KindButton].Value.VisitJSON(asJSONValue(t, node)); err == nil {
		t.Fatalf("expected button without layout to be rejected")
	}
}

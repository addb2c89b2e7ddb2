package grammar

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// DocumentSchemaName is the component name of the document envelope schema.
const DocumentSchemaName = "Document"

// OpenAPIDocument describes the compiler output contract for every kind in
// reg as OpenAPI components: one node schema per kind plus a Document
// envelope whose nodes reference them. Renderers written outside Go can use
// it to validate the JSON documents they receive.
func OpenAPIDocument(reg *Registry, version string) *openapi3.T {
	if version == "" {
		version = "0.0.0"
	}
	schemas := make(openapi3.Schemas, reg.Len()+1)
	refs := make(openapi3.SchemaRefs, 0, reg.Len())
	for _, entry := range reg.Entries() {
		schemas[entry.Kind] = openapi3.NewSchemaRef("", NodeSchema(entry))
		refs = append(refs, openapi3.NewSchemaRef("#/components/schemas/"+entry.Kind, nil))
	}

	items := &openapi3.Schema{OneOf: refs}
	envelope := openapi3.NewObjectSchema().WithProperty("nodes", openapi3.NewArraySchema().WithItems(items))
	envelope.Required = []string{"nodes"}
	schemas[DocumentSchemaName] = openapi3.NewSchemaRef("", envelope)

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "widgetdsl document",
			Description: "Compiled widget document contract",
			Version:     version,
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: schemas},
	}
}

// NodeSchema returns the JSON schema of a compiled node of the given kind.
func NodeSchema(entry Entry) *openapi3.Schema {
	attrs := openapi3.NewObjectSchema()
	for _, field := range entry.Fields {
		attrs = attrs.WithProperty(field.Name, fieldSchema(field.Type))
	}
	attrs.Required = entry.FieldNames()

	span := openapi3.NewObjectSchema().
		WithProperty("start", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("end", openapi3.NewIntegerSchema().WithMin(0))
	span.Required = []string{"start", "end"}

	node := openapi3.NewObjectSchema().
		WithProperty("kind", openapi3.NewStringSchema().WithEnum(entry.Kind)).
		WithProperty("identity", openapi3.NewStringSchema()).
		WithProperty("attributes", attrs).
		WithProperty("computed", openapi3.NewObjectSchema()).
		WithProperty("span", span)
	node.Required = []string{"kind", "identity", "attributes", "span"}
	node.Description = entry.Description

	if entry.Resizable {
		node = node.WithProperty("layout", layoutSchema())
		node.Required = append(node.Required, "layout")
	}
	return node
}

func fieldSchema(t FieldType) *openapi3.Schema {
	switch t {
	case FieldBoolean:
		return openapi3.NewBoolSchema()
	case FieldInteger:
		return openapi3.NewIntegerSchema().WithMin(0)
	case FieldStringList:
		return openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	case FieldPairList:
		pair := openapi3.NewObjectSchema().
			WithProperty("label", openapi3.NewStringSchema()).
			WithProperty("target", openapi3.NewStringSchema())
		pair.Required = []string{"label", "target"}
		return openapi3.NewArraySchema().WithItems(pair)
	case FieldRowMatrix:
		row := openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
		return openapi3.NewArraySchema().WithItems(row)
	default:
		return openapi3.NewStringSchema()
	}
}

func sizeSchema() *openapi3.Schema {
	size := openapi3.NewObjectSchema().
		WithProperty("width", openapi3.NewIntegerSchema()).
		WithProperty("height", openapi3.NewIntegerSchema())
	size.Required = []string{"width", "height"}
	return size
}

func layoutSchema() *openapi3.Schema {
	layout := openapi3.NewObjectSchema().
		WithProperty("width", openapi3.NewIntegerSchema()).
		WithProperty("height", openapi3.NewIntegerSchema()).
		WithProperty("minSize", sizeSchema()).
		WithProperty("maxSize", sizeSchema())
	layout.Required = []string{"width", "height", "minSize", "maxSize"}
	return layout
}

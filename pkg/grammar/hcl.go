package grammar

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclDefinitionFile is the HCL shape of a grammar definition file:
//
//	kind "Rating" {
//	  identity { field = "label" }
//	  field "label" { type = "string" }
//	  field "stars" { type = "integer" }
//	}
type hclDefinitionFile struct {
	Kinds []hclKind `hcl:"kind,block"`
}

type hclKind struct {
	Kind        string       `hcl:"kind,label"`
	Resizable   bool         `hcl:"resizable,optional"`
	Description string       `hcl:"description,optional"`
	Identity    *hclIdentity `hcl:"identity,block"`
	Fields      []hclField   `hcl:"field,block"`
}

type hclIdentity struct {
	Field  string `hcl:"field,optional"`
	Prefix string `hcl:"prefix,optional"`
	Raw    bool   `hcl:"raw,optional"`
}

type hclField struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type"`
}

func parseHCL(data []byte, source string) (definitionFile, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, source)
	if diags.HasErrors() {
		return definitionFile{}, fmt.Errorf("grammar: parse %s: %w", source, diags)
	}
	var parsed hclDefinitionFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return definitionFile{}, fmt.Errorf("grammar: decode %s: %w", source, diags)
	}

	doc := definitionFile{Kinds: make([]Entry, 0, len(parsed.Kinds))}
	for _, k := range parsed.Kinds {
		entry := Entry{
			Kind:        k.Kind,
			Resizable:   k.Resizable,
			Description: k.Description,
		}
		if k.Identity != nil {
			entry.Identity = Identity{Field: k.Identity.Field, Prefix: k.Identity.Prefix, Raw: k.Identity.Raw}
		}
		for _, f := range k.Fields {
			entry.Fields = append(entry.Fields, Field{Name: f.Name, Type: FieldType(f.Type)})
		}
		doc.Kinds = append(doc.Kinds, entry)
	}
	return doc, nil
}

package llm

import genai "google.golang.org/genai"

// Field declares one output field of a constrained JSON response.
type Field struct {
	Name        string
	Type        FieldType
	Enum        []string
	Description string
}

// FieldType is the subset of JSON types the service asks models for.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeStringArray FieldType = "string_array"
)

// OutputSchema declares the shape a model response must have: either a
// single object or an array of objects with the given fields.
type OutputSchema struct {
	Array    bool
	Fields   []Field
	Required []string
}

// ToGenAI converts the declared schema into the genai wire schema.
func (s *OutputSchema) ToGenAI() *genai.Schema {
	if s == nil {
		return nil
	}
	props := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		switch f.Type {
		case TypeStringArray:
			props[f.Name] = &genai.Schema{
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: f.Description,
			}
		default:
			props[f.Name] = &genai.Schema{
				Type:        genai.TypeString,
				Enum:        f.Enum,
				Description: f.Description,
			}
		}
	}
	obj := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   s.Required,
	}
	if s.Array {
		return &genai.Schema{Type: genai.TypeArray, Items: obj}
	}
	return obj
}

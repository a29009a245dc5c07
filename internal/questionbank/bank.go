// Package questionbank loads quiz questions from YAML documents.
package questionbank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/prakriti/internal/quiz"
)

//go:embed dosha_skin.yaml
var defaultBankYAML []byte

// Bank is a named, ordered set of questions.
type Bank struct {
	ID        string
	Title     string
	Questions []quiz.Question
}

type document struct {
	ID        string        `yaml:"id"`
	Title     string        `yaml:"title"`
	Questions []questionDoc `yaml:"questions"`
}

type questionDoc struct {
	ID      string      `yaml:"id"`
	Prompt  string      `yaml:"prompt"`
	Options []optionDoc `yaml:"options"`
}

type optionDoc struct {
	Text  string `yaml:"text"`
	Dosha string `yaml:"dosha"`
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
	defaultErr  error
)

// Default returns the built-in dosha skin quiz.
func Default() (*Bank, error) {
	defaultOnce.Do(func() {
		defaultBank, defaultErr = Parse(defaultBankYAML)
	})
	return defaultBank, defaultErr
}

// Load reads and parses the bank at path.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// LoadOrDefault loads path, or the built-in bank when path is empty.
func LoadOrDefault(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse validates a YAML bank document against the bank schema, decodes it
// and checks its structure.
func Parse(data []byte) (*Bank, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	b := &Bank{
		ID:    doc.ID,
		Title: doc.Title,
	}
	for _, qd := range doc.Questions {
		q := quiz.Question{
			ID:     qd.ID,
			Prompt: qd.Prompt,
		}
		for _, od := range qd.Options {
			c, err := quiz.ParseCategory(od.Dosha)
			if err != nil {
				return nil, fmt.Errorf("question %q: %w", qd.ID, err)
			}
			q.Options = append(q.Options, quiz.Option{Text: od.Text, Category: c})
		}
		b.Questions = append(b.Questions, q)
	}
	b.Questions = quiz.Renumber(b.Questions)

	if err := validateBank(b); err != nil {
		return nil, err
	}
	return b, nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go literals.
		def, err := toJSONValue(bankSchema)
		if err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://question-bank.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a decoded YAML value against bankSchema.
func validateDocument(raw any) error {
	parsed, err := toJSONValue(raw)
	if err != nil {
		return fmt.Errorf("invalid question bank document: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile question bank schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("question bank schema validation failed: %w", err)
	}
	return nil
}

// toJSONValue round-trips v through encoding/json so it only holds maps,
// slices, strings, float64s, bools and nil.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

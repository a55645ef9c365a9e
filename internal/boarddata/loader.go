package boarddata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	boardSchemaName = "board.schema.json"
	deckSchemaName  = "deck.schema.json"
)

var (
	boardSchema = mustCompile(boardSchemaName, boardSchemaJSON)
	deckSchema  = mustCompile(deckSchemaName, deckSchemaJSON)
)

func mustCompile(name, source string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(source)); err != nil {
		panic(fmt.Errorf("can't add schema resource %s: %w", name, err))
	}
	return compiler.MustCompile(name)
}

// ParseSpaces validates and decodes an ordered board definition.
func ParseSpaces(data []byte) ([]SpaceRecord, error) {
	if err := validate(boardSchema, data); err != nil {
		return nil, fmt.Errorf("board definition is invalid: %w", err)
	}

	var records []SpaceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("can't decode board definition: %w", err)
	}

	return records, nil
}

// ParseCards validates and decodes an ordered deck definition.
func ParseCards(data []byte) ([]CardRecord, error) {
	if err := validate(deckSchema, data); err != nil {
		return nil, fmt.Errorf("deck definition is invalid: %w", err)
	}

	var records []CardRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("can't decode deck definition: %w", err)
	}

	return records, nil
}

// LoadSpaces reads and parses a board file.
func LoadSpaces(path string) ([]SpaceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read board file: %w", err)
	}

	return ParseSpaces(data)
}

// LoadCards reads and parses a deck file.
func LoadCards(path string) ([]CardRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read deck file: %w", err)
	}

	return ParseCards(data)
}

func validate(schema *jsonschema.Schema, data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}

	return schema.Validate(value)
}

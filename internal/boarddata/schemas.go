package boarddata

const boardSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["type", "name"],
    "properties": {
      "type": {
        "enum": [
          "property", "railroad", "utility", "tax", "go",
          "jail", "go_to_jail", "free_parking", "card_draw"
        ]
      },
      "name": {"type": "string", "minLength": 1},
      "group": {"type": "string"},
      "price": {"type": "integer", "minimum": 0},
      "mortgage": {"type": "integer", "minimum": 0},
      "build_cost": {"type": "integer", "minimum": 0},
      "rent": {"type": "array", "items": {"type": "integer", "minimum": 0}},
      "amount": {"type": "integer", "minimum": 0},
      "deck": {"enum": ["chance", "community_chest"]}
    },
    "allOf": [
      {
        "if": {"properties": {"type": {"const": "property"}}},
        "then": {"required": ["group", "price", "mortgage", "build_cost", "rent"]}
      },
      {
        "if": {"properties": {"type": {"const": "railroad"}}},
        "then": {"required": ["price", "mortgage", "rent"]}
      },
      {
        "if": {"properties": {"type": {"const": "utility"}}},
        "then": {"required": ["price", "mortgage", "rent"]}
      },
      {
        "if": {"properties": {"type": {"const": "tax"}}},
        "then": {"required": ["amount"]}
      },
      {
        "if": {"properties": {"type": {"const": "card_draw"}}},
        "then": {"required": ["deck"]}
      }
    ]
  }
}`

const deckSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["description", "effect"],
    "properties": {
      "description": {"type": "string", "minLength": 1},
      "effect": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"type": "string"},
          "target": {"type": "string"},
          "amount": {"type": "integer"},
          "house_price": {"type": "integer", "minimum": 0},
          "hotel_price": {"type": "integer", "minimum": 0},
          "card_kind": {"type": "string"}
        }
      }
    }
  }
}`

package kafka

const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type StructuredConnectRecord struct {
	Schema  Schema      `json:"schema"`
	Payload LookupEvent `json:"payload"`
}

type LookupEvent struct {
	Timestamp int64  `json:"timestamp"`
	Entity    string `json:"entity"`
	Key       string `json:"key"`
	Outcome   string `json:"outcome"`
}

// MessageKey groups events for the same record on one partition.
func (e LookupEvent) MessageKey() []byte {
	return []byte(e.Entity + ":" + e.Key)
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field string `json:"field"`
	Type  string `json:"type"`
}

var LookupSchema = Schema{
	Type:     "struct",
	Name:     "EntityLookup",
	Optional: false,
	Fields: []Field{
		{Field: "timestamp", Type: "int64"},
		{Field: "entity", Type: "string"},
		{Field: "key", Type: "string"},
		{Field: "outcome", Type: "string"},
	},
}
